// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with every route and middleware registered.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get("/api/health", h.getHealth)
	router.Get("/api/version", h.getVersion)

	// documents carry entity tags so clients can poll cheaply
	router.Group(func(r chi.Router) {
		r.Use(h.withETag)
		r.Get("/api/config", h.getConfig)
		r.Get("/api/config/raw", h.getRawConfig)
		r.Get("/api/config/*", h.getConfigPath)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
