// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// Sisumaja site. It organizes routes into public, API, and admin groups
// with appropriate middleware stacks.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"sisumaja/internal/handlers"
	"sisumaja/internal/middleware"
	"sisumaja/internal/session"
	"sisumaja/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public, contact *handlers.Contact, stats *handlers.Stats) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Embedded static assets.
	staticFS, _ := fs.Sub(web.StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Public JSON API. The contact form and the stats refresh endpoint are
	// both called from anonymous pages, so they get per-IP rate limits
	// instead of sessions.
	contactLimiter := middleware.NewRateLimiter(5, time.Minute)
	statsLimiter := middleware.NewRateLimiter(30, time.Minute)
	r.Route("/api", func(r chi.Router) {
		r.With(contactLimiter.Middleware).Post("/contact", contact.Submit)
		r.With(statsLimiter.Middleware).Post("/update-project-stats", stats.Update)
	})

	// Admin routes — require authentication and CSRF protection.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.CSRF)

		// Auth pages — accessible without a session.
		r.Get("/login", auth.LoginPage)
		r.With(loginLimiter.Middleware).Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		// 2FA — requires auth but NOT completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/setup", auth.TwoFASetupPage)
			r.Get("/2fa/verify", auth.TwoFAVerifyPage)
			r.Post("/2fa/verify", auth.TwoFAVerifySubmit)
		})

		// Authenticated + 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			// Dashboard
			r.Get("/", admin.Dashboard)

			// Projects
			r.Route("/projects", func(r chi.Router) {
				r.Get("/new", admin.ProjectNew)
				r.Post("/", admin.ProjectCreate)
				r.Get("/{id}/edit", admin.ProjectEdit)
				r.Post("/{id}/update", admin.ProjectUpdate)
				r.Post("/{id}/delete", admin.ProjectDelete)
				r.Post("/{id}/toggle", admin.ProjectToggle)

				// Editor list fragments (HTMX).
				r.Post("/form/blocks/add", admin.BlockAdd)
				r.Post("/form/blocks/remove", admin.BlockRemove)
				r.Post("/form/blocks/move", admin.BlockMove)
				r.Post("/form/links/add", admin.LinkAdd)
				r.Post("/form/links/remove", admin.LinkRemove)
				r.Post("/form/links/move", admin.LinkMove)
			})

			// Media uploads
			r.Post("/media/upload", admin.MediaUpload)
			r.Post("/media/delete", admin.MediaDelete)
		})
	})

	// Public pages.
	r.Get("/", public.Home)
	r.Get("/tehtud-tood", public.WorkList)
	r.Get("/tehtud-tood/{slug}", public.WorkDetail)
	r.Get("/kontakt", public.Kontakt)
	r.Get("/privaatsuspoliitika", public.Privacy)
	r.Get("/kasutustingimused", public.Terms)
	r.Get("/kupsiste-poliitika", public.Cookies)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
