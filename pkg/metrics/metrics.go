package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of response times",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	TableExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "table_exports_total",
			Help: "Total number of table exports by scene and format",
		},
		[]string{"scene", "format"},
	)

	AssistantRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_requests_total",
			Help: "Total number of assistant calls by outcome",
		},
		[]string{"outcome"},
	)

	SubscriptionsExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "subscriptions_expired_total",
			Help: "Total number of subscribers marked expired by the expiry job",
		},
	)
)

// ObserveRequest records one handled HTTP request. path should be the route template.
func ObserveRequest(method, path string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveExport counts one table export.
func ObserveExport(scene, format string) {
	TableExportsTotal.WithLabelValues(scene, format).Inc()
}

// ObserveAssistant counts one assistant call. outcome is "ok" or "error".
func ObserveAssistant(outcome string) {
	AssistantRequestsTotal.WithLabelValues(outcome).Inc()
}

// ObserveExpired adds n expired subscriptions.
func ObserveExpired(n int) {
	SubscriptionsExpiredTotal.Add(float64(n))
}
