// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-filter-keeper/internal/config"
	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/utils"
	"github.com/MKhiriev/go-filter-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	criteriaPath       = "/criteria"
	criteriaByViewPath = "/criteria/{viewName}"
	criteriaByIDPath   = "/criteria/{id}"
)

type httpCriteriaAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCriteriaAdapter constructs the HTTP/REST implementation of
// [CriteriaAdapter]. The base URL is taken from adapterCfg.HTTPAddress; a
// bare "host:port" is treated as http. Request bodies are signed with
// appCfg.HashKey when it is set, and appCfg.SessionToken becomes the initial
// bearer token.
func NewHTTPCriteriaAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (CriteriaAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpCriteriaAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: logger,
	}
	a.SetToken(appCfg.SessionToken)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [CriteriaAdapter].
func (h *httpCriteriaAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [CriteriaAdapter].
func (h *httpCriteriaAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// FetchByView implements [CriteriaAdapter] with GET /criteria/{viewName}.
func (h *httpCriteriaAdapter) FetchByView(ctx context.Context, viewName string) (models.CriteriaRecord, error) {
	var record models.CriteriaRecord

	resp, err := h.request(ctx).
		SetPathParam("viewName", viewName).
		SetResult(&record).
		Get(criteriaByViewPath)
	if err != nil {
		return models.CriteriaRecord{}, fmt.Errorf("fetch criteria request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CriteriaRecord{}, err
	}
	if record.ID == "" {
		return models.CriteriaRecord{}, fmt.Errorf("%w: fetched record has no id", ErrInvalidResponse)
	}

	return record, nil
}

// Create implements [CriteriaAdapter] with POST /criteria.
func (h *httpCriteriaAdapter) Create(ctx context.Context, record models.CriteriaRecord) (models.CriteriaRecord, error) {
	record.ID = ""

	req, err := h.withBody(h.request(ctx), record)
	if err != nil {
		return models.CriteriaRecord{}, err
	}

	var created models.CriteriaRecord
	resp, err := req.SetResult(&created).Post(criteriaPath)
	if err != nil {
		return models.CriteriaRecord{}, fmt.Errorf("create criteria request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CriteriaRecord{}, err
	}
	if created.ID == "" {
		return models.CriteriaRecord{}, fmt.Errorf("%w: created record has no id", ErrInvalidResponse)
	}

	h.logger.Debug().
		Str("view", record.ViewName).
		Str("id", created.ID).
		Msg("criteria record created")

	return created, nil
}

// Update implements [CriteriaAdapter] with PUT /criteria/{id}.
func (h *httpCriteriaAdapter) Update(ctx context.Context, id string, record models.CriteriaRecord) (models.CriteriaRecord, error) {
	record.ID = ""

	req, err := h.withBody(h.request(ctx), record)
	if err != nil {
		return models.CriteriaRecord{}, err
	}

	var updated models.CriteriaRecord
	resp, err := req.
		SetPathParam("id", id).
		SetResult(&updated).
		Put(criteriaByIDPath)
	if err != nil {
		return models.CriteriaRecord{}, fmt.Errorf("update criteria request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CriteriaRecord{}, err
	}
	if updated.ID == "" {
		updated.ID = id
	}

	return updated, nil
}

// Delete implements [CriteriaAdapter] with DELETE /criteria/{id}.
func (h *httpCriteriaAdapter) Delete(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete(criteriaByIDPath)
	if err != nil {
		return fmt.Errorf("delete criteria request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCriteriaAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// withBody serialises payload once so the integrity hash covers the exact
// bytes on the wire.
func (h *httpCriteriaAdapter) withBody(req *resty.Request, payload models.CriteriaRecord) (*resty.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal criteria record: %w", err)
	}

	req.SetHeader("Content-Type", "application/json").SetBody(body)
	if h.hasher.Enabled() {
		req.SetHeader(utils.HashHeader, h.hasher.HexSum(body))
	}

	return req, nil
}
