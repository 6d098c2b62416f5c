// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/utils"
)

// checkHash verifies the HashSHA256 header against the raw request body.
// It is a no-op when the server runs without a hash key. The body is
// restored so the handler can decode it.
func (h *Handler) checkHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hasher.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.writeError(w, r, "checkHash", fmt.Errorf("read request body: %w", err))
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(utils.HashHeader)
		if signature == "" {
			h.writeError(w, r, "checkHash", ErrMissingHash)
			return
		}
		if !h.hasher.Verify(body, signature) {
			h.writeError(w, r, "checkHash", ErrHashMismatch)
			return
		}

		log.Debug().Str("hash", signature).Msg("request hash verified")

		next.ServeHTTP(w, r)
	})
}
