// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIDContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{name: "set by auth middleware", ctx: WithUserID(context.Background(), 42), wantID: 42, wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "stored as int", ctx: context.WithValue(context.Background(), UserIDCtxKey, 42)},
		{name: "plain string key does not collide", ctx: context.WithValue(context.Background(), "userID", int64(42))}, //nolint:staticcheck
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}

	assert.Equal(t, "userID", UserIDCtxKey.String())
}
