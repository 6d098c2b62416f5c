// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/version", h.getServerVersion)

	router.Route("/criteria", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/{viewName}", h.getCriteria)
		r.Delete("/{id}", h.deleteCriteria)

		r.Group(func(r chi.Router) {
			r.Use(h.checkHash)

			r.Post("/", h.createCriteria)
			r.Put("/{id}", h.updateCriteria)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
