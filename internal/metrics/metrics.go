package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const ServiceName = "newsmonitor"

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code", "service"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "service"},
	)

	// Business metrics
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsmonitor_operations_total",
			Help: "Total number of dispatched operations by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsmonitor_operation_duration_seconds",
			Help:    "Operation duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"action"},
	)

	NLPDegradedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsmonitor_nlp_degraded_total",
			Help: "Article parses that skipped NLP enrichment",
		},
		[]string{"reason"},
	)

	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "application_info",
			Help: "Application information",
		},
		[]string{"service", "version", "environment"},
	)
)

// Init sets the static application info gauge.
func Init(version, environment string) {
	ApplicationInfo.WithLabelValues(ServiceName, version, environment).Set(1)
}
