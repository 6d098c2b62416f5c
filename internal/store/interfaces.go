// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds persistence for both sides of go-filter-keeper: the
// server's SQL repository of criteria records and the client's in-memory
// local criteria store that the view layer edits.
package store

import (
	"context"

	"github.com/MKhiriev/go-filter-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/criteria_repository_mock.go -package=mock

// CriteriaRepository persists one criteria record per (user, view).
type CriteriaRepository interface {
	// FindByView returns the user's record for viewName or
	// [ErrCriteriaNotFound].
	FindByView(ctx context.Context, userID int64, viewName string) (models.StoredCriteria, error)

	// FindByID returns the user's record with the given id or
	// [ErrCriteriaNotFound]. Records of other users are never returned.
	FindByID(ctx context.Context, userID int64, id string) (models.StoredCriteria, error)

	// Upsert inserts c or, when the user already has a record for
	// c.ViewName, replaces its criteria. The returned value carries the id
	// that is actually stored.
	Upsert(ctx context.Context, c models.StoredCriteria) (models.StoredCriteria, error)

	// Update replaces the criteria of the record identified by c.ID and
	// c.UserID, returning [ErrCriteriaNotFound] when there is none.
	Update(ctx context.Context, c models.StoredCriteria) (models.StoredCriteria, error)

	// Delete removes the user's record with the given id, returning
	// [ErrCriteriaNotFound] when there is none.
	Delete(ctx context.Context, userID int64, id string) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
