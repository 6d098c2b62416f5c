// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-filter-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock -exclude_interfaces=ViewSessions

// Timer is the part of *time.Timer the debounce gate needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d. Production code uses
// [time.AfterFunc]; tests inject a manual clock.
type AfterFunc func(d time.Duration, f func()) Timer

// ReconcileFunc receives the payload a view settled on after a quiet window.
type ReconcileFunc func(viewName string, criteria models.Criteria)

// DebounceGate coalesces bursts of local edits per view into one downstream
// call carrying the last payload.
type DebounceGate interface {
	// Observe records criteria as the view's latest payload and restarts
	// the view's quiet window.
	Observe(viewName string, criteria models.Criteria)

	// Retry schedules a window for criteria only when none is pending for
	// the view and the view has not been cancelled since its last Observe.
	// A pending window already carries a newer payload.
	Retry(viewName string, criteria models.Criteria)

	// Cancel stops the view's window. No call for it fires afterwards,
	// even if the timer was already expiring. Retries for the view are
	// dropped until the next Observe.
	Cancel(viewName string)

	// Flush fires the view's pending window now, on the calling goroutine.
	Flush(viewName string)

	// FlushAll fires every pending window now.
	FlushAll()

	// Pending reports whether the view has a window running.
	Pending(viewName string) bool

	// Stop cancels every window, rejects further observations and waits
	// for calls that are already running.
	Stop()
}

// CriteriaSyncController keeps one remote criteria record per view in line
// with the local store. At most one network mutation per view is in flight;
// intent that arrives meanwhile is remembered and replayed.
type CriteriaSyncController interface {
	// Load fetches the view's remote record once per session and seeds the
	// local store with it. Failures are logged and otherwise ignored.
	Load(ctx context.Context, viewName string)

	// Reconcile drives the remote record towards desired: create, update,
	// delete or nothing.
	Reconcile(ctx context.Context, viewName string, desired models.Criteria)

	// Status returns a snapshot of the view's synchronization state.
	Status(viewName string) models.SyncStatus

	// Statuses returns snapshots of every known view, sorted by name.
	Statuses() []models.SyncStatus

	// Subscribe registers fn for status changes. fn runs without internal
	// locks held and may call back into the controller.
	Subscribe(fn func(models.SyncStatus)) (unsubscribe func())

	// WaitIdle blocks until nothing is in flight or remembered for the view.
	WaitIdle(ctx context.Context, viewName string) error

	// Reset drops the view's state. Responses to calls made before the
	// reset are discarded.
	Reset(viewName string)

	// ResetAll drops the state of every view.
	ResetAll()
}

// ViewSession is the handle returned by [ViewSessions.Mount].
type ViewSession interface {
	ViewName() string

	// Close detaches the view from the debounce gate and cancels its
	// pending window. Calls already in flight complete normally.
	Close()
}

// ViewSessions mounts views: it seeds them from the remote store and wires
// their local edits through the debounce gate into the controller.
type ViewSessions interface {
	Mount(ctx context.Context, viewName string) (ViewSession, error)
}
