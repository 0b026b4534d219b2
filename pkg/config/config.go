// Package config loads commerce-chat configuration from config.yaml with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for commerce-chat. Configuration can come
// from a YAML file (config.yaml) or environment variables; environment
// variables always override YAML values.
type Config struct {
	// Server configuration. The original chatbot backend listened on 5000,
	// kept as the default port.
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"PORT" env-default:"5000"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// DataDir is the directory containing the six CSV source files.
	DataDir string `yaml:"data_dir" env:"DATA_DIR" env-default:"./data"`

	// LogLevel selects the zap level: debug, info, warn or error.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. A missing config.yaml is fine; everything then comes from the
// environment and defaults. The version parameter is injected at build time
// and set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	return nil
}

// ListenAddr returns the host:port the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return c.BindAddr + ":" + c.Port
}
