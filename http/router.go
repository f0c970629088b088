package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type RouterConfig struct {
	CORSOrigins []string
	Limiter     *RateLimiter // nil disables rate limiting
	Log         zerolog.Logger
}

// NewRouter wires the investment endpoints under /api.
func NewRouter(h *InvestmentHandler, cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger(cfg.Log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		if cfg.Limiter != nil {
			r.Use(RateLimitMiddleware(cfg.Limiter))
		}

		r.Get("/compound-methods", h.ListCompoundMethods)

		r.Group(func(r chi.Router) {
			r.Use(RequireJSON)
			r.Post("/lump-sum", h.CalculateLumpSum)
			r.Post("/regular", h.CalculateRegularContribution)
			r.Post("/compare", h.Compare)
		})
	})

	return r
}
