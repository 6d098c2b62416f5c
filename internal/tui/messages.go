// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-filter-keeper/internal/service"
	"github.com/MKhiriev/go-filter-keeper/models"
)

// statusMsg carries a status change pushed by the sync controller.
type statusMsg models.SyncStatus

type sessionMountedMsg struct {
	session service.ViewSession
	err     error
}

// sessionClosedMsg follows leaving a view; pending edits were flushed.
type sessionClosedMsg struct{}

type copiedMsg struct {
	err error
}

type clearNoticeMsg struct{}

// tokenSwitchedMsg follows replacing the session token.
type tokenSwitchedMsg struct{}
