// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-filter-keeper/internal/config"
	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/migrations"
)

// DB is a database handle together with the dialect facts the repository
// needs: goose dialect, squirrel placeholder style and error classifier.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database named by cfg.DSN. "postgres://" and
// "postgresql://" DSNs go to Postgres through pgx; anything else is a SQLite
// file path.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch DialectFromDSN(cfg.DSN) {
	case migrations.DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case migrations.DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, cfg.DSN)
	}
}

// DialectFromDSN maps a DSN to the goose dialect name, or "" for an empty DSN.
func DialectFromDSN(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "":
		return ""
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return migrations.DialectPostgres
	default:
		return migrations.DialectSQLite
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// Dialect returns the goose dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}
