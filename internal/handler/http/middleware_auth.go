// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/service"
	"github.com/MKhiriev/go-filter-keeper/internal/utils"
)

// auth verifies the bearer token and stores the user id from its "sub"
// claim in the request context under [utils.UserIDCtxKey].
//
// A missing header, a header that is not "Bearer <token>" and a token that
// fails verification all answer 401 with the same message, so the response
// does not tell which check failed.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, "auth", ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, "auth", fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, "auth", fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, err))
			return
		}

		l := logger.FromContext(ctx).With().Int64("user_id", token.UserID).Logger()
		ctx = utils.WithUserID(l.WithContext(ctx), token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
