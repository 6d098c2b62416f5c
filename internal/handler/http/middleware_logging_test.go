// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantSize   int
	}{
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
				w.Write([]byte("short and stout"))
			},
			wantStatus: http.StatusTeapot,
			wantSize:   len("short and stout"),
		},
		{
			name:       "implicit 200 without body",
			handler:    func(w http.ResponseWriter, r *http.Request) {},
			wantStatus: http.StatusOK,
			wantSize:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, buf := bufferLogger()
			h := &Handler{logger: log}

			req := httptest.NewRequest(http.MethodGet, "/criteria/contacts", nil)
			rec := httptest.NewRecorder()

			h.withTraceID(h.withLogging(tt.handler)).ServeHTTP(rec, req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "/criteria/contacts", entry["uri"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.EqualValues(t, tt.wantStatus, entry["status"])
			assert.EqualValues(t, tt.wantSize, entry["size"])
			assert.NotEmpty(t, entry["trace_id"])
		})
	}
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	assert.Equal(t, http.StatusOK, w.statusCode())

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	_, err = w.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.statusCode())
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, "abcde", rec.Body.String())
}
