// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-filter-keeper/internal/adapter"
	"github.com/MKhiriev/go-filter-keeper/internal/app"
)

func TestDescribeSyncError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "timeout", err: fmt.Errorf("create criteria request: %w", context.DeadlineExceeded), want: "remote store did not answer in time"},
		{name: "canceled", err: context.Canceled, want: "request canceled"},
		{name: "known bad request", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgEmptyCriteria), want: "rejected by server: " + app.MsgEmptyCriteria},
		{name: "unknown bad request", err: fmt.Errorf("%w: whatever", adapter.ErrBadRequest), want: "rejected by server"},
		{name: "unauthorized", err: fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid), want: "session token rejected, sign in again"},
		{name: "forbidden", err: adapter.ErrForbidden, want: "access denied"},
		{name: "not found", err: adapter.ErrNotFound, want: app.MsgCriteriaNotFound},
		{name: "conflict", err: adapter.ErrConflict, want: "conflicting change on server"},
		{name: "server error", err: fmt.Errorf("%w: %s", adapter.ErrInternalServerError, app.MsgInternalServerError), want: "remote store unavailable, will retry"},
		{name: "bad gateway", err: adapter.ErrBadGateway, want: "remote store unavailable, will retry"},
		{name: "invalid response", err: fmt.Errorf("%w: created record has no id", adapter.ErrInvalidResponse), want: "unexpected response from remote store"},
		{name: "other", err: errors.New("dial tcp: connection refused"), want: "dial tcp: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeSyncError(tt.err))
		})
	}
}
