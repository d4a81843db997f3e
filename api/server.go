/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. Metrics:    Prometheus HTTP instrumentation
  5. CORS:       Cross-origin requests from any origin

ROUTE GROUPS:
  /                   Liveness message
  /test               Environment diagnostics
  /metrics            Prometheus exposition
  /api/hello          Static greeting
  /api/calc/*         Calculator endpoints (POST)

SECURITY NOTE:
  No authentication middleware; every endpoint is public and the
  service holds no data worth protecting.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/warp/finance-calculators/metrics"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(metrics.Instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Diagnostics
	r.Get("/", h.Root)
	r.Get("/test", h.Diagnostics)
	r.Method("GET", "/metrics", metrics.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/hello", h.Hello)

		r.Route("/calc", func(r chi.Router) {
			r.Post("/simple-interest", h.SimpleInterest)
			r.Post("/compound-interest", h.CompoundInterest)
			r.Post("/loan-payment", h.LoanPayment)
			r.Post("/savings-future-value", h.SavingsFutureValue)
			r.Post("/rent-split", h.RentSplit)
		})
	})

	return r
}
