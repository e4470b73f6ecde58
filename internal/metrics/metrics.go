package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the FlightOps backend
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Document store metrics
	StoreOpsTotal   *prometheus.CounterVec
	StoreOpDuration *prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Business Metrics
	QuotesBookedTotal           prometheus.Counter
	NotificationsGeneratedTotal prometheus.Counter
	GenerationRequestsTotal     *prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all
// metrics registered on reg. Pass prometheus.DefaultRegisterer in the server.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightops_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightops_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "flightops_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method"},
		),

		StoreOpsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightops_store_operations_total",
				Help: "Total document store operations by operation, collection and result",
			},
			[]string{"operation", "collection", "result"},
		),
		StoreOpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightops_store_operation_duration_seconds",
				Help:    "Document store operation time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"operation"},
		),

		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightops_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightops_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		QuotesBookedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "flightops_quotes_booked_total",
				Help: "Total quotes converted into trips",
			},
		),
		NotificationsGeneratedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "flightops_notifications_generated_total",
				Help: "Total notifications generated from due and expiring items",
			},
		),
		GenerationRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightops_generation_requests_total",
				Help: "Language model generation requests by kind and result",
			},
			[]string{"kind", "result"},
		),
	}
}
