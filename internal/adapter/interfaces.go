// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the remote store service: the
// CRUD surface the sync engine uses to persist each view's criteria record.
//
// The primary abstraction is [CriteriaAdapter], which decouples the sync
// engine from the transport. The package ships an HTTP/REST implementation
// ([NewHTTPCriteriaAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-filter-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/criteria_adapter_mock.go -package=mock

// CriteriaAdapter defines communication with the remote store service.
// Implementations attach the session token to every call and map transport
// failures to the sentinel errors of this package.
type CriteriaAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// FetchByView returns the current record of viewName. It returns an
	// error wrapping [ErrNotFound] when the service holds no record.
	FetchByView(ctx context.Context, viewName string) (models.CriteriaRecord, error)

	// Create stores a new record and returns it with the id assigned by the
	// service. record.ID is ignored.
	Create(ctx context.Context, record models.CriteriaRecord) (models.CriteriaRecord, error)

	// Update replaces the criteria of the record identified by id.
	Update(ctx context.Context, id string, record models.CriteriaRecord) (models.CriteriaRecord, error)

	// Delete removes the record identified by id. A missing record yields
	// an error wrapping [ErrNotFound].
	Delete(ctx context.Context, id string) error
}
