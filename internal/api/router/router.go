// Package router wires the dashboard's HTTP routes onto a chi router.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lumenmd/lead-dashboard/internal/http/handlers"
	httpmiddleware "github.com/lumenmd/lead-dashboard/internal/http/middleware"
	"github.com/lumenmd/lead-dashboard/internal/patients"
	"github.com/lumenmd/lead-dashboard/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	PatientsHandler    *patients.Handler
	PlanHandler        *handlers.PlanHandler
	SuggestionsHandler *handlers.SuggestionsHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Requests per second per client IP for /api routes. Zero disables
	// rate limiting.
	RateLimit float64
	RateBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.RateLimit > 0 {
			api.Use(httpmiddleware.RateLimit(cfg.RateLimit, cfg.RateBurst))
		}

		if cfg.PatientsHandler != nil {
			api.Get("/patients", cfg.PatientsHandler.ListPatients)
			api.Get("/patients/{patientID}", cfg.PatientsHandler.GetPatient)
		}

		if cfg.PlanHandler != nil {
			api.Route("/patients/{patientID}/plan", func(r chi.Router) {
				r.Get("/", cfg.PlanHandler.GetPlan)
				r.Post("/", cfg.PlanHandler.AddItems)
				r.Patch("/{itemID}", cfg.PlanHandler.EditItem)
				r.Delete("/{itemID}", cfg.PlanHandler.RemoveItem)
			})
		}

		if cfg.SuggestionsHandler != nil {
			api.Post("/suggestions", cfg.SuggestionsHandler.Suggest)
		}
	})

	return r
}
