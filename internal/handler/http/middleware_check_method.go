// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-filter-keeper/internal/logger"
)

// CheckHTTPMethod returns the handler registered with
// [chi.Mux.MethodNotAllowed]. A known path requested with a method it does
// not serve answers 404 instead of chi's 405, hiding which routes exist.
//
// Routes inside mounted sub-routers are resolved with [chi.Mux.Match], so
// parameterised patterns such as /criteria/{id} are covered too.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("unsupported method, answering 404")

		http.NotFound(w, r)
	}
}
