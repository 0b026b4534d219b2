package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAllowAllCORS_SetsHeaders(t *testing.T) {
	handler := AllowAllCORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected allow-origin '*', got %q", got)
	}
}

func TestAllowAllCORS_Preflight(t *testing.T) {
	called := false
	handler := AllowAllCORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if called {
		t.Error("expected preflight to short-circuit before the handler")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("expected allow-methods header on preflight response")
	}
}
