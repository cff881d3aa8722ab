package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dastodo/market/internal/httpserver/deps"
	"github.com/dastodo/market/internal/httpserver/handlers"
	"github.com/dastodo/market/internal/httpserver/mw"
)

func init() { Register(registerListings) }

func registerListings(r chi.Router, d deps.Deps) {
	limited := r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateLimitBurst,
		RefillPerIPPerMin: d.RateLimitPerMin,
		MaxEntries:        4096,
		SweepInterval:     time.Minute,
		IdleTTL:           15 * time.Minute,
		TrustProxy:        d.TrustProxy,
	}))

	limited.Route("/api/listings", func(r chi.Router) {
		r.Get("/", handlers.ListListings(d))
		r.Post("/", handlers.CreateListing(d))
		r.Get("/{id}", handlers.GetListing(d))
		r.Put("/{id}", handlers.UpdateListing(d))
		r.Delete("/{id}", handlers.DeleteListing(d))
	})

	limited.Get("/api/categories", handlers.Categories(d))
}
