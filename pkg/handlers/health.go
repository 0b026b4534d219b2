package handlers

import (
	"net/http"
	"runtime"

	"go.uber.org/zap"

	"github.com/trovi-io/commerce-chat/pkg/config"
	"github.com/trovi-io/commerce-chat/pkg/store"
)

// rootBanner is the constant liveness text served at GET /.
const rootBanner = "🛍️ E-commerce Chatbot Backend is running"

// HealthResponse contains service status, version and data store state.
type HealthResponse struct {
	Status    string         `json:"status"`
	Version   string         `json:"version"`
	Service   string         `json:"service"`
	GoVersion string         `json:"go_version"`
	Ready     bool           `json:"ready"`
	Tables    map[string]int `json:"tables"`
}

// HealthHandler handles the root banner and health check endpoints.
type HealthHandler struct {
	cfg    *config.Config
	store  *store.Store
	logger *zap.Logger
}

// NewHealthHandler creates a new HealthHandler with the given configuration.
func NewHealthHandler(cfg *config.Config, store *store.Store, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{cfg: cfg, store: store, logger: logger}
}

// RegisterRoutes registers the health handler's routes on the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /health", h.Health)
}

// Root handles GET / requests with a constant liveness banner.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(rootBanner))
}

// Health handles GET /health requests. Reports readiness of the data store
// and per-table row counts; status stays "ok" even while warming up since
// the process itself is healthy.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "ok",
		Version:   h.cfg.Version,
		Service:   "commerce-chat",
		GoVersion: runtime.Version(),
		Ready:     h.store.Ready(),
		Tables:    h.store.Counts(),
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode health response", zap.Error(err))
	}
}
