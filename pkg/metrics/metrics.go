// Package metrics defines the Prometheus collectors for commerce-chat.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)

	ChatRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_requests_total",
			Help: "Total number of chat messages, by classified intent",
		},
		[]string{"intent"},
	)

	RowsLoadedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "csv_rows_loaded_total",
			Help: "Total number of rows ingested from CSV files, by table",
		},
		[]string{"table"},
	)

	LoadFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "csv_load_failures_total",
			Help: "Total number of CSV ingestion failures, by table",
		},
		[]string{"table"},
	)
)

// Register registers all collectors with the default registry. Call once at
// startup.
func Register() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(ChatRequestsTotal)
	prometheus.MustRegister(RowsLoadedTotal)
	prometheus.MustRegister(LoadFailuresTotal)
}
