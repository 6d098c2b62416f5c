// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-filter-keeper/internal/adapter"
	"github.com/MKhiriev/go-filter-keeper/internal/app"
)

// describeSyncError turns a failed remote call into the short text shown as
// SyncStatus.LastError.
func describeSyncError(err error) string {
	if err == nil {
		return ""
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "remote store did not answer in time"
	case errors.Is(err, context.Canceled):
		return "request canceled"

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidViewName, app.MsgEmptyCriteria, app.MsgCriteriaTooLarge,
			app.MsgViewMismatch, app.MsgInvalidDataProvided:
			return "rejected by server: " + msg
		}
		return "rejected by server"

	case errors.Is(err, adapter.ErrUnauthorized):
		return "session token rejected, sign in again"
	case errors.Is(err, adapter.ErrForbidden):
		return "access denied"
	case errors.Is(err, adapter.ErrNotFound):
		return app.MsgCriteriaNotFound
	case errors.Is(err, adapter.ErrConflict):
		return "conflicting change on server"
	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return "remote store unavailable, will retry"
	case errors.Is(err, adapter.ErrInvalidResponse):
		return "unexpected response from remote store"
	}

	return err.Error()
}

// extractBody returns the response body the adapter appended after the
// sentinel ("bad request: <body>").
func extractBody(err error) string {
	parts := strings.SplitN(err.Error(), ": ", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
