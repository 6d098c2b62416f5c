// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/models"
)

// criteriaRepository is the SQL implementation of [CriteriaRepository] over
// the "view_criteria" table. It works on both Postgres and SQLite; the
// placeholder style comes from the embedded [*DB].
type criteriaRepository struct {
	*DB
	now func() time.Time
}

// NewCriteriaRepository constructs a [CriteriaRepository] backed by db.
func NewCriteriaRepository(db *DB) CriteriaRepository {
	return &criteriaRepository{
		DB:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *criteriaRepository) FindByView(ctx context.Context, userID int64, viewName string) (models.StoredCriteria, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindByViewQuery(r.placeholder, userID, viewName)
	if err != nil {
		log.Err(err).Str("func", "criteriaRepository.FindByView").Msg("failed to create query")
		return models.StoredCriteria{}, err
	}

	found, err := withRetry(ctx, r.DB, "find_by_view", func() (models.StoredCriteria, error) {
		return r.queryOne(ctx, query, args...)
	})
	if err != nil && !errors.Is(err, ErrCriteriaNotFound) {
		log.Err(err).
			Str("func", "criteriaRepository.FindByView").
			Int64("user_id", userID).
			Str("view", viewName).
			Msg("failed to find criteria by view")
	}
	return found, err
}

func (r *criteriaRepository) FindByID(ctx context.Context, userID int64, id string) (models.StoredCriteria, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindByIDQuery(r.placeholder, userID, id)
	if err != nil {
		log.Err(err).Str("func", "criteriaRepository.FindByID").Msg("failed to create query")
		return models.StoredCriteria{}, err
	}

	found, err := withRetry(ctx, r.DB, "find_by_id", func() (models.StoredCriteria, error) {
		return r.queryOne(ctx, query, args...)
	})
	if err != nil && !errors.Is(err, ErrCriteriaNotFound) {
		log.Err(err).
			Str("func", "criteriaRepository.FindByID").
			Int64("user_id", userID).
			Str("id", id).
			Msg("failed to find criteria by id")
	}
	return found, err
}

func (r *criteriaRepository) Upsert(ctx context.Context, c models.StoredCriteria) (models.StoredCriteria, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	query, args, err := buildUpsertQuery(r.placeholder, c)
	if err != nil {
		log.Err(err).Str("func", "criteriaRepository.Upsert").Msg("failed to create query")
		return models.StoredCriteria{}, err
	}

	saved, err := withRetry(ctx, r.DB, "upsert", func() (models.StoredCriteria, error) {
		return r.queryOne(ctx, query, args...)
	})
	if errors.Is(err, ErrCriteriaNotFound) {
		err = ErrCriteriaNotSaved
	}
	if err != nil {
		log.Err(err).
			Str("func", "criteriaRepository.Upsert").
			Int64("user_id", c.UserID).
			Str("view", c.ViewName).
			Bool("unique_violation", isUniqueViolation(err)).
			Msg("failed to upsert criteria")
		return models.StoredCriteria{}, err
	}

	log.Debug().Str("id", saved.ID).Str("view", saved.ViewName).Msg("criteria upserted")
	return saved, nil
}

func (r *criteriaRepository) Update(ctx context.Context, c models.StoredCriteria) (models.StoredCriteria, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuery(r.placeholder, c, r.now())
	if err != nil {
		log.Err(err).Str("func", "criteriaRepository.Update").Msg("failed to create query")
		return models.StoredCriteria{}, err
	}

	updated, err := withRetry(ctx, r.DB, "update", func() (models.StoredCriteria, error) {
		return r.queryOne(ctx, query, args...)
	})
	if err != nil && !errors.Is(err, ErrCriteriaNotFound) {
		log.Err(err).
			Str("func", "criteriaRepository.Update").
			Int64("user_id", c.UserID).
			Str("id", c.ID).
			Msg("failed to update criteria")
	}
	return updated, err
}

func (r *criteriaRepository) Delete(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(r.placeholder, userID, id)
	if err != nil {
		log.Err(err).Str("func", "criteriaRepository.Delete").Msg("failed to create query")
		return err
	}

	affected, err := withRetry(ctx, r.DB, "delete", func() (int64, error) {
		res, execErr := r.ExecContext(ctx, query, args...)
		if execErr != nil {
			return 0, execErr
		}
		return res.RowsAffected()
	})
	if err != nil {
		log.Err(err).
			Str("func", "criteriaRepository.Delete").
			Int64("user_id", userID).
			Str("id", id).
			Msg("failed to delete criteria")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCriteriaNotFound
	}

	return nil
}

// queryOne runs a query expected to yield at most one criteria row.
// sql.ErrNoRows becomes [ErrCriteriaNotFound].
func (r *criteriaRepository) queryOne(ctx context.Context, query string, args ...any) (models.StoredCriteria, error) {
	var (
		c         models.StoredCriteria
		createdAt sqlTime
		updatedAt sqlTime
	)

	err := r.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.UserID,
		&c.ViewName,
		&c.Criteria,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredCriteria{}, ErrCriteriaNotFound
	}
	if err != nil {
		return models.StoredCriteria{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	c.CreatedAt = time.Time(createdAt)
	c.UpdatedAt = time.Time(updatedAt)
	return c, nil
}
