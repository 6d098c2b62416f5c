// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-filter-keeper/internal/config"
	"github.com/MKhiriev/go-filter-keeper/internal/logger"
)

// Storages groups the server-side repositories together with the database
// handle they share, so the caller can close it on shutdown.
type Storages struct {
	CriteriaRepository CriteriaRepository

	db *DB
}

// NewStorages opens the database named by cfg.DB.DSN, applies pending
// migrations and builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		CriteriaRepository: NewCriteriaRepository(db),
		db:                 db,
	}, nil
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
