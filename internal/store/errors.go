// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCriteriaNotFound is returned when no record matches the requested
	// (user, view) pair or (user, id) pair.
	ErrCriteriaNotFound = errors.New("criteria record was not found")

	// ErrCriteriaNotSaved is returned when an upsert completes without
	// producing a row.
	ErrCriteriaNotSaved = errors.New("criteria record was not saved")

	// ErrUnsupportedDSN is returned when a DSN cannot be mapped to a driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT (or a statement with
	// RETURNING) fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// without a result set fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan criteria row")
)
