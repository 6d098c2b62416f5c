// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-filter-keeper/internal/config"
	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/utils"
	"github.com/MKhiriev/go-filter-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

func newTestAdapter(t *testing.T, serverURL string) *httpCriteriaAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}
	appCfg := config.ClientApp{HashKey: testHashKey, SessionToken: "session-token"}

	a, err := NewHTTPCriteriaAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpCriteriaAdapter)
}

func writeRecord(t *testing.T, w http.ResponseWriter, status int, rec models.CriteriaRecord) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(rec))
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://api.example.com/ ", want: "https://api.example.com"},
		{raw: "http://127.0.0.1:9000/base/", want: "http://127.0.0.1:9000/base"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPCriteriaAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPCriteriaAdapter(config.ClientAdapter{}, config.ClientApp{}, logger.Nop())
	require.Error(t, err)
}

func TestSetToken_TrimsAndReplaces(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")
	assert.Equal(t, "session-token", a.Token())

	a.SetToken("  other  ")
	assert.Equal(t, "other", a.Token())
}

// ── FetchByView ──────────────────────────────────────────────────────────────

func TestFetchByView_Success(t *testing.T) {
	want := models.CriteriaRecord{ID: "rec-1", ViewName: "contacts", Criteria: models.Criteria{"name": []any{"Anna"}}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/criteria/contacts", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
		writeRecord(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).FetchByView(context.Background(), "contacts")

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.True(t, want.Criteria.Equal(got.Criteria))
}

func TestFetchByView_EscapesViewName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/criteria/a%2Fb", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchByView(context.Background(), "a/b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchByView_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "criteria not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchByView(context.Background(), "contacts")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchByView_RecordWithoutID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeRecord(t, w, http.StatusOK, models.CriteriaRecord{ViewName: "contacts"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchByView(context.Background(), "contacts")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestFetchByView_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("")
	_, err := a.FetchByView(context.Background(), "contacts")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreate_SignsBodyAndReturnsID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/criteria", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"viewName":"contacts","criteria":{"name":["Anna"]}}`, string(body))
		assert.True(t, utils.NewHasher(testHashKey).Verify(body, r.Header.Get(utils.HashHeader)))

		var in models.CriteriaRecord
		require.NoError(t, json.Unmarshal(body, &in))
		in.ID = "rec-1"
		writeRecord(t, w, http.StatusCreated, in)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Create(context.Background(), models.CriteriaRecord{
		ID:       "ignored",
		ViewName: "contacts",
		Criteria: models.Criteria{"name": []string{"Anna"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "rec-1", got.ID)
	assert.Equal(t, "contacts", got.ViewName)
}

func TestCreate_NoHashHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(utils.HashHeader))
		writeRecord(t, w, http.StatusOK, models.CriteriaRecord{ID: "rec-1", ViewName: "contacts"})
	}))
	defer srv.Close()

	a, err := NewHTTPCriteriaAdapter(config.ClientAdapter{HTTPAddress: srv.URL}, config.ClientApp{}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Create(context.Background(), models.CriteriaRecord{ViewName: "contacts", Criteria: models.Criteria{"a": 1}})
	require.NoError(t, err)
}

func TestCreate_MissingIDInResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeRecord(t, w, http.StatusOK, models.CriteriaRecord{ViewName: "contacts"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Create(context.Background(), models.CriteriaRecord{ViewName: "contacts", Criteria: models.Criteria{"a": 1}})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestCreate_ServerErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusConflict, want: ErrConflict},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusBadGateway, want: ErrBadGateway},
		{status: http.StatusServiceUnavailable, want: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Create(context.Background(), models.CriteriaRecord{ViewName: "contacts", Criteria: models.Criteria{"a": 1}})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreate_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Create(context.Background(), models.CriteriaRecord{ViewName: "contacts", Criteria: models.Criteria{"a": 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestCreate_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Create(context.Background(), models.CriteriaRecord{ViewName: "contacts", Criteria: models.Criteria{"a": 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create criteria request")
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestUpdate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/criteria/rec-1", r.URL.Path)

		var in models.CriteriaRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Empty(t, in.ID)
		in.ID = "rec-1"
		writeRecord(t, w, http.StatusOK, in)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Update(context.Background(), "rec-1", models.CriteriaRecord{
		ID:       "rec-1",
		ViewName: "contacts",
		Criteria: models.Criteria{"name": []string{"Anna"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "rec-1", got.ID)
}

func TestUpdate_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Update(context.Background(), "gone", models.CriteriaRecord{ViewName: "contacts", Criteria: models.Criteria{"a": 1}})
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestDelete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/criteria/rec-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).Delete(context.Background(), "rec-1"))
}

func TestDelete_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Delete(context.Background(), "rec-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestAdapter(t, srv.URL).Delete(ctx, "rec-1")
	assert.ErrorIs(t, err, context.Canceled)
}
