// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PendingOperation marks the network mutation currently outstanding for a view.
type PendingOperation string

const (
	// PendingNone means no mutation is in flight.
	PendingNone PendingOperation = ""
	// PendingCreateOrUpdate means a create or update call is in flight.
	PendingCreateOrUpdate PendingOperation = "create-or-update"
	// PendingDelete means a delete call is in flight.
	PendingDelete PendingOperation = "delete"
)

// String returns a human-readable label, "none" for PendingNone.
func (p PendingOperation) String() string {
	if p == PendingNone {
		return "none"
	}
	return string(p)
}

// SyncStatus is a read-only snapshot of a view's synchronization state.
// It is produced by the reconciliation controller for status lines and CLI
// output; mutating it has no effect on the engine.
type SyncStatus struct {
	ViewName            string           `json:"viewName"`
	LastKnownRemoteID   string           `json:"lastKnownRemoteId,omitempty"`
	LastSyncedCriteria  Criteria         `json:"lastSyncedCriteria,omitempty"`
	PendingOperation    PendingOperation `json:"pendingOperation,omitempty"`
	HasLoadedFromRemote bool             `json:"hasLoadedFromRemote"`

	// Dirty is true when a newer desired payload was remembered while a
	// call was in flight (or while the initial load was running).
	Dirty bool `json:"dirty"`

	LastError    string     `json:"lastError,omitempty"`
	LastSyncedAt *time.Time `json:"lastSyncedAt,omitempty"`
}

// Idle reports whether nothing is in flight and nothing is waiting to be
// replayed for the view.
func (s SyncStatus) Idle() bool {
	return s.PendingOperation == PendingNone && !s.Dirty
}
