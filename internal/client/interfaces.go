// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-filter-keeper/models"
)

// Client defines the lifecycle contract of runnable client applications.
type Client interface {
	// Run starts the interactive editor and blocks until exit.
	Run(ctx context.Context) error

	// Get returns the view's criteria as held after the initial load.
	Get(ctx context.Context, viewName string) (models.Criteria, models.SyncStatus, error)

	// Set applies "field=v1,v2" assignments and waits until they are written.
	Set(ctx context.Context, viewName string, assignments ...string) (models.SyncStatus, error)

	// Clear removes every filter of the view.
	Clear(ctx context.Context, viewName string) (models.SyncStatus, error)

	// Shutdown sends pending edits and waits a bounded time for them.
	Shutdown() error
}

var _ Client = (*App)(nil)
