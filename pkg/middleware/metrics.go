package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/trovi-io/commerce-chat/pkg/metrics"
)

// Instrument wraps the router with Prometheus request counting and latency
// observation, labeled by request path. The route table is small and fixed,
// so path labels stay low-cardinality.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		metrics.HTTPRequestDuration.WithLabelValues(r.URL.Path, r.Method).Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(r.URL.Path, r.Method, strconv.Itoa(wrapped.statusCode)).Inc()
	})
}
