// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the remote store service and
// applies it with goose. The same scripts run on Postgres and SQLite.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Dialects understood by Migrate.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

var errNilDB = errors.New("db is nil")

// Migrate applies all pending migrations to db using the goose dialect.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	provider, err := goose.NewProvider(goose.Dialect(dialect), db, embedMigrations)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
