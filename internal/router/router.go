// Package router sets up all HTTP routes and middleware chains for the
// VSL landing page backend. It organizes routes into public, auth and
// admin groups with appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vslsite/internal/handlers"
	"vslsite/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. proxies may be nil when the server faces
// clients directly; loginLimiter may be nil to disable login rate limiting.
func New(sessions middleware.SessionGetter, proxies *middleware.TrustedProxies, loginLimiter *middleware.RateLimiter, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	if proxies != nil {
		r.Use(proxies.Middleware)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessions))

	r.Get("/health", healthHandler)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Public theme and landing data.
	r.Get("/api/themes", public.ListThemes)
	r.Get("/api/themes/current", public.CurrentTheme)
	r.Get("/api/landing", public.Landing)
	r.Get("/themes/{id}.css", public.ThemeCSS)

	r.Route("/api/auth", func(r chi.Router) {
		r.Use(middleware.RequireJSON)

		r.Group(func(r chi.Router) {
			if loginLimiter != nil {
				r.Use(loginLimiter.Middleware)
			}
			r.Post("/login", auth.Login)
		})
		r.Post("/logout", auth.Logout)
		r.Get("/me", auth.Me)

		// 2FA, requires a session but NOT a completed second factor.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession)
			r.Get("/2fa/setup", auth.TwoFASetup)
			r.Post("/2fa/verify", auth.TwoFAVerify)
		})
	})

	// Authenticated + 2FA-verified admin API.
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireJSON)

		r.Get("/stats", admin.Stats)
		r.Get("/settings", admin.Settings)
		r.Get("/preferences", admin.Preferences)
		r.Put("/preferences", admin.UpdatePreferences)

		// Site-wide writes, admin only.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/themes", admin.SetTheme)
			r.Put("/settings", admin.UpdateSettings)
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
