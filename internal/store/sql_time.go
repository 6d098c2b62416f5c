// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
)

// sqlTime scans a timestamp column. pgx and go-sqlite3 usually hand back a
// time.Time, but SQLite returns text for expressions without a declared
// type (RETURNING included on older builds).
type sqlTime time.Time

func (t *sqlTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = sqlTime{}
		return nil
	case time.Time:
		*t = sqlTime(v)
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("scan timestamp: unsupported type %T", src)
	}
}

func (t *sqlTime) parse(s string) error {
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*t = sqlTime(parsed)
			return nil
		}
	}
	return fmt.Errorf("scan timestamp: unrecognised format %q", s)
}
