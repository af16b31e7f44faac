package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/leadwise-ai/scheduling-platform/internal/http/handlers"
	httpmiddleware "github.com/leadwise-ai/scheduling-platform/internal/http/middleware"
	"github.com/leadwise-ai/scheduling-platform/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger         *logging.Logger
	Scheduling     *handlers.SchedulingHandler
	MetricsHandler http.Handler
}

// New creates a Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.Scheduling.HealthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api/v1/scheduling", func(r chi.Router) {
		r.Post("/availability", cfg.Scheduling.CheckAvailability)
		r.Post("/appointments", cfg.Scheduling.Book)
		r.Post("/appointments/update", cfg.Scheduling.Update)
		r.Get("/appointments", cfg.Scheduling.List)
	})

	return r
}
