/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the mobile web frontend

SECURITY NOTE:
  Single-user build: no authentication middleware. All endpoints are
  public and operate on the one local profile.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Profile routes
		r.Route("/profile", func(r chi.Router) {
			r.Get("/", h.GetProfile)
			r.Post("/onboarding", h.CompleteOnboarding)
			r.Put("/goals", h.UpdateGoals)
		})
		r.Get("/goals", h.ListGoals)

		// Catalog routes
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Get("/{id}", h.GetProduct)
		})

		// Store routes
		r.Route("/stores", func(r chi.Router) {
			r.Get("/", h.ListStores)
			r.Post("/{id}/link", h.LinkStore)
			r.Delete("/{id}/link", h.UnlinkStore)
			r.Post("/{id}/primary", h.SetPrimaryStore)
		})

		// Points routes
		r.Get("/balance", h.GetBalance)
		r.Get("/tier", h.GetTier)
		r.Get("/streak", h.GetStreak)
		r.Get("/stats", h.GetStats)
		r.Get("/transactions", h.GetTransactions)

		// Receipt routes
		r.Route("/receipts", func(r chi.Router) {
			r.Get("/", h.GetReceipts)
			r.Post("/", h.SubmitReceipt)
			r.Post("/scan", h.ScanReceipt)
		})

		// Challenge and achievement routes
		r.Get("/challenges", h.GetChallenges)
		r.Get("/achievements", h.GetAchievements)

		// Redemption routes
		r.Route("/redemptions", func(r chi.Router) {
			r.Get("/", h.ListRedemptions)
			r.Post("/redeem", h.Redeem)
		})

		// Admin routes
		r.Post("/reset", h.ResetData)
	})

	return r
}
