package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mindwell/intake-platform/internal/http/handlers"
	httpmiddleware "github.com/mindwell/intake-platform/internal/http/middleware"
	"github.com/mindwell/intake-platform/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	Intake             *handlers.IntakeHandler
	Search             *handlers.SearchHandler
	LiveSearch         *handlers.LiveSearchHandler
	Therapists         *handlers.TherapistsHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

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
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.Intake != nil {
			api.Route("/intake/sessions", func(r chi.Router) {
				r.Post("/", cfg.Intake.CreateSession)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", cfg.Intake.GetSession)
					r.Post("/events", cfg.Intake.DispatchEvent)
					r.Delete("/", cfg.Intake.DismissSession)
				})
			})
		}
		if cfg.Search != nil {
			api.Get("/search", cfg.Search.Query)
		}
		if cfg.LiveSearch != nil {
			api.Get("/search/live", cfg.LiveSearch.Serve)
		}
		if cfg.Therapists != nil {
			api.Get("/therapists", cfg.Therapists.Shortlist)
			api.Get("/catalog/services", cfg.Therapists.Services)
		}
	})

	return r
}
