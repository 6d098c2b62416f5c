// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the retry loop whether a failed database call is
// worth another attempt.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as a dropped connection or a
	// deadlock rollback.
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// PostgresErrorClassifier implements [ErrorClassificator] for pgx errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and classifies its SQLSTATE.
// Anything else is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a SQLSTATE to an [ErrorClassification].
// Classes 08 (connection), 40 (transaction rollback) and 57P03 (cannot
// connect now) are retryable. See
// https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection:
		return Retryable

	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	case pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
