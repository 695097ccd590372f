// Package router sets up all HTTP routes and middleware chains for the
// SmartSite API. It organizes routes into public, authenticated, and
// admin groups with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"smartsite/internal/handlers"
	"smartsite/internal/middleware"
	"smartsite/internal/session"
)

// Generation is expensive (one upstream completion call per request), so
// the generate endpoint carries its own tight per-IP limit.
const (
	generateLimit  = 5
	generateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, auth *handlers.Auth, websites *handlers.Websites, providers *handlers.Providers) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check, no auth.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Auth endpoints are reachable without a session.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", auth.Login)
			r.Post("/logout", auth.Logout)
			r.Get("/me", auth.Me)
		})

		r.Route("/websites", func(r chi.Router) {
			// Generation accepts anonymous batch requests carrying an
			// ownerId, so RequireAuth is not applied; ownership is
			// resolved inside the pipeline.
			generateLimiter := middleware.NewRateLimiter(generateLimit, generateWindow)
			r.With(generateLimiter.Middleware).Post("/", websites.Generate)

			// Reads require a session.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/", websites.List)
				r.Get("/{id}", websites.Get)
			})
		})

		// Provider administration, admin only.
		r.Route("/admin/providers", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.RequireAdmin)
			r.Get("/", providers.List)
			r.Put("/", providers.SetActive)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
