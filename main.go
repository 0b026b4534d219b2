package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trovi-io/commerce-chat/pkg/config"
	"github.com/trovi-io/commerce-chat/pkg/handlers"
	"github.com/trovi-io/commerce-chat/pkg/metrics"
	"github.com/trovi-io/commerce-chat/pkg/middleware"
	"github.com/trovi-io/commerce-chat/pkg/services"
	"github.com/trovi-io/commerce-chat/pkg/store"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Optional .env for local development; real deployments set env vars.
	_ = godotenv.Load()

	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("addr", cfg.ListenAddr()),
		zap.String("data_dir", cfg.DataDir),
		zap.String("version", cfg.Version))

	metrics.Register()

	// The store serves requests while ingestion is still running; the chat
	// handler answers with a warming-up reply until it is ready.
	dataStore := store.New()
	loader := store.NewLoader(dataStore, logger)
	go loader.LoadAll(cfg.DataDir)

	chatService := services.NewChatService(dataStore, logger)

	mux := http.NewServeMux()
	handlers.NewChatHandler(chatService, dataStore, logger).RegisterRoutes(mux)
	handlers.NewHealthHandler(cfg, dataStore, logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	var handler http.Handler = mux
	handler = middleware.Instrument(handler)
	handler = middleware.RequestLogger(logger)(handler)
	handler = middleware.AllowAllCORS()(handler)

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Starting commerce-chat", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("Server shutdown complete")
}

// buildLogger constructs the process logger: human-readable in local
// development, JSON elsewhere, at the configured level.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.Set(cfg.LogLevel); err != nil {
		return nil, err
	}

	if cfg.Env == "local" {
		zcfg := zap.NewDevelopmentConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
		return zcfg.Build()
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
