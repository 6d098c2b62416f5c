// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations: every statement goose issues fails

	err = Migrate(context.Background(), db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db, DialectSQLite)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	if err = Migrate(context.Background(), db, "oracle"); err == nil {
		t.Fatal("expected error for unknown dialect, got nil")
	}
}

func TestMigrate_SQLiteCreatesTableIdempotently(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "criteria.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	for range 2 {
		if err = Migrate(context.Background(), db, DialectSQLite); err != nil {
			t.Fatalf("migrate: %v", err)
		}
	}

	_, err = db.Exec(`INSERT INTO view_criteria (id, user_id, view_name, criteria) VALUES ('a', 1, 'contacts', '{}')`)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	_, err = db.Exec(`INSERT INTO view_criteria (id, user_id, view_name, criteria) VALUES ('b', 1, 'contacts', '{}')`)
	if err == nil {
		t.Fatal("expected unique violation on (user_id, view_name)")
	}
}
