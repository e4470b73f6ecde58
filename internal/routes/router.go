package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flightops360/hangar/internal/api"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/middleware"
)

// Options tune the router around the API surface.
type Options struct {
	AllowedOrigins []string
	// RateLimiter is applied to /api/v1 when set.
	RateLimiter *middleware.RateLimiter
	// Gatherer backs /metrics; nil serves the default registry.
	Gatherer prometheus.Gatherer
}

func RegisterRoutes(deps *api.Dependencies, opts Options) http.Handler {
	r := chi.NewRouter()

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"https://*", "http://localhost:3000"}
	}

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	r.Use(middleware.InFlightMiddleware(deps.Metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthCheck", api.HealthCheckHandler(deps))

	metricsHandler := promhttp.Handler()
	if opts.Gatherer != nil {
		metricsHandler = promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})
	}
	r.Handle("/metrics", metricsHandler)

	RegisterAPIRoutes(r, deps, opts.RateLimiter)

	logging.Info("Router initialized", "origins", origins, "rateLimited", opts.RateLimiter != nil)
	return r
}
