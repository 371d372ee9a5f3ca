// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.metrics.Middleware)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Post("/signup", h.signUp)
		r.Get("/account-activation-sent", h.activationSent)
		r.Post("/account-activation-resend", h.resendActivation)
		r.Get("/activate/{uidb64}/{token}", h.activate)
		r.Get("/activate/{uidb64}/{token}/", h.activate)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Method("GET", "/metrics", h.metrics.Handler())
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/dashboard", h.dashboard)
		r.Get("/profile/{id}", h.getProfile)
		r.Post("/profile/{id}/edit", h.editProfile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
