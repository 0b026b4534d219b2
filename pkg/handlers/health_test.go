package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/trovi-io/commerce-chat/pkg/config"
	"github.com/trovi-io/commerce-chat/pkg/store"
)

func TestHealthHandler_Root(t *testing.T) {
	cfg := &config.Config{Version: "test-version", Env: "test"}
	handler := NewHealthHandler(cfg, store.New(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.Root(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != rootBanner {
		t.Errorf("expected banner %q, got %q", rootBanner, rec.Body.String())
	}
}

func TestHealthHandler_Health_NotReady(t *testing.T) {
	cfg := &config.Config{Version: "test-version", Env: "test"}
	handler := NewHealthHandler(cfg, store.New(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("expected status 'ok', got '%s'", response.Status)
	}
	if response.Ready {
		t.Error("expected ready=false before ingestion completes")
	}
	if response.Version != "test-version" {
		t.Errorf("expected version 'test-version', got '%s'", response.Version)
	}
}

func TestHealthHandler_Health_Ready(t *testing.T) {
	cfg := &config.Config{Version: "test-version", Env: "test"}
	s := loadedTestStore(t)
	handler := NewHealthHandler(cfg, s, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.Health(rec, req)

	var response HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !response.Ready {
		t.Error("expected ready=true after ingestion completes")
	}
	if response.Tables["products"] != 2 {
		t.Errorf("expected 2 products, got %d", response.Tables["products"])
	}
}
