// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-filter-keeper/models"
)

func TestBuildFindByViewQuery(t *testing.T) {
	tests := []struct {
		name       string
		ph         sq.PlaceholderFormat
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name: "postgres placeholders",
			ph:   sq.Dollar,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				require.Contains(t, q, "select id, user_id, view_name, criteria, created_at, updated_at")
				require.Contains(t, q, "from view_criteria")
				require.Contains(t, q, "user_id = $1")
				require.Contains(t, q, "view_name = $2")
				require.Equal(t, []any{int64(42), "contacts"}, args)
			},
		},
		{
			name: "sqlite placeholders",
			ph:   sq.Question,
			checkQuery: func(t *testing.T, query string, args []any) {
				require.NotContains(t, query, "$1")
				require.Equal(t, 2, strings.Count(query, "?"))
				require.Len(t, args, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindByViewQuery(tt.ph, 42, "contacts")
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func TestBuildFindByIDQuery(t *testing.T) {
	query, args, err := buildFindByIDQuery(sq.Dollar, 7, "0192f0c4-aaaa-7bbb-8ccc-000000000001")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "where id = $1 and user_id = $2")
	require.Equal(t, []any{"0192f0c4-aaaa-7bbb-8ccc-000000000001", int64(7)}, args)
}

func TestBuildUpsertQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := models.StoredCriteria{
		ID:        "r1",
		UserID:    7,
		ViewName:  "contacts",
		Criteria:  models.Criteria{"name": []string{"Anna"}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	query, args, err := buildUpsertQuery(sq.Dollar, c)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.True(t, strings.HasPrefix(q, "insert into view_criteria"))
	require.Contains(t, q, "on conflict (user_id, view_name) do update set criteria = excluded.criteria")
	require.Contains(t, q, "returning id, user_id, view_name, criteria, created_at, updated_at")
	require.Contains(t, query, "$6")

	require.Len(t, args, 6)
	require.Equal(t, "r1", args[0])
	require.Equal(t, int64(7), args[1])
	require.Equal(t, "contacts", args[2])
	require.Equal(t, c.Criteria, args[3])
	require.Equal(t, now, args[4])
}

func TestBuildUpdateQuery(t *testing.T) {
	now := time.Now()
	query, args, err := buildUpdateQuery(sq.Dollar, models.StoredCriteria{
		ID:       "r1",
		UserID:   7,
		Criteria: models.Criteria{"a": 1},
	}, now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update view_criteria set criteria = $1, updated_at = $2")
	require.Contains(t, q, "where id = $3 and user_id = $4")
	require.Contains(t, q, "returning id")
	require.Equal(t, []any{models.Criteria{"a": 1}, now, "r1", int64(7)}, args)
}

func TestBuildDeleteQuery(t *testing.T) {
	query, args, err := buildDeleteQuery(sq.Question, 7, "r1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from view_criteria")
	require.Contains(t, q, "where id = ? and user_id = ?")
	require.Equal(t, []any{"r1", int64(7)}, args)
}
