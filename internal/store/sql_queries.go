// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-filter-keeper/models"
)

const criteriaTable = "view_criteria"

var criteriaColumns = []string{"id", "user_id", "view_name", "criteria", "created_at", "updated_at"}

const criteriaReturning = "RETURNING id, user_id, view_name, criteria, created_at, updated_at"

func buildFindByViewQuery(ph sq.PlaceholderFormat, userID int64, viewName string) (string, []any, error) {
	query, args, err := sq.Select(criteriaColumns...).
		From(criteriaTable).
		Where(sq.Eq{"user_id": userID, "view_name": viewName}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindByIDQuery(ph sq.PlaceholderFormat, userID int64, id string) (string, []any, error) {
	query, args, err := sq.Select(criteriaColumns...).
		From(criteriaTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertQuery inserts a record or, on a (user_id, view_name) conflict,
// keeps the existing id and replaces criteria and updated_at.
func buildUpsertQuery(ph sq.PlaceholderFormat, c models.StoredCriteria) (string, []any, error) {
	query, args, err := sq.Insert(criteriaTable).
		Columns(criteriaColumns...).
		Values(c.ID, c.UserID, c.ViewName, c.Criteria, c.CreatedAt, c.UpdatedAt).
		Suffix("ON CONFLICT (user_id, view_name) DO UPDATE SET criteria = excluded.criteria, updated_at = excluded.updated_at " + criteriaReturning).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateQuery(ph sq.PlaceholderFormat, c models.StoredCriteria, now time.Time) (string, []any, error) {
	query, args, err := sq.Update(criteriaTable).
		Set("criteria", c.Criteria).
		Set("updated_at", now).
		Where(sq.Eq{"id": c.ID, "user_id": c.UserID}).
		Suffix(criteriaReturning).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteQuery(ph sq.PlaceholderFormat, userID int64, id string) (string, []any, error) {
	query, args, err := sq.Delete(criteriaTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
