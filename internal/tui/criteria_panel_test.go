// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-filter-keeper/models"
)

func TestWithoutField(t *testing.T) {
	orig := models.Criteria{"name": []any{"Anna"}, "city": []any{"Kazan"}}

	out := withoutField(orig, "city")

	assert.Equal(t, []string{"city", "name"}, sortedFields(orig))
	assert.Equal(t, []string{"name"}, sortedFields(out))
	assert.Empty(t, sortedFields(withoutField(out, "name")))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "Anna,Bob", formatValue([]any{"Anna", "Bob"}))
	assert.Equal(t, "Anna", formatValue("Anna"))
	assert.Equal(t, "5", formatValue(float64(5)))
	assert.Equal(t, `{"from":1}`, formatValue(map[string]any{"from": 1}))
	assert.Equal(t, "a,b", formatValue([]string{"a", "b"}))
}

func TestCriteriaJSON(t *testing.T) {
	out, err := criteriaJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", out)

	out, err = criteriaJSON(models.Criteria{"name": []any{"Anna"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":["Anna"]}`, out)
}

func TestRenderStatus(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name    string
		status  models.SyncStatus
		waiting bool
		want    []string
	}{
		{name: "synced", status: models.SyncStatus{HasLoadedFromRemote: true, LastKnownRemoteID: "rec-1", LastSyncedAt: &at}, want: []string{"synced", "id rec-1", "saved"}},
		{name: "saving", status: models.SyncStatus{PendingOperation: models.PendingCreateOrUpdate}, want: []string{"saving", "no remote record"}},
		{name: "deleting with queued edit", status: models.SyncStatus{PendingOperation: models.PendingDelete, Dirty: true}, want: []string{"deleting", "newer edit queued"}},
		{name: "waiting in window", status: models.SyncStatus{HasLoadedFromRemote: true}, waiting: true, want: []string{"edited, waiting to save"}},
		{name: "error", status: models.SyncStatus{LastError: "remote store unavailable, will retry"}, want: []string{"not loaded", "last error: remote store unavailable, will retry"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderStatus(tt.status, tt.waiting, "*")
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "ab", fitText("abcdefgh", 2))
}
