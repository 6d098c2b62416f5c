// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-filter-keeper/models"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CriteriaChangeFunc receives the new criteria of a view after a local edit.
type CriteriaChangeFunc func(viewName string, criteria models.Criteria)

// LocalCriteriaStore holds the criteria each view currently shows. It is the
// single source of truth for the UI; the sync engine only reads from it,
// except when it seeds a view with the remote value on first load.
type LocalCriteriaStore interface {
	// Get returns a copy of the view's current criteria (nil when unset).
	Get(viewName string) models.Criteria

	// Set replaces the view's criteria and notifies subscribers when the
	// value actually changed. An empty payload clears the view.
	Set(viewName string, criteria models.Criteria)

	// Seed replaces the view's criteria without notifying subscribers.
	// It is used to apply the remote value loaded at mount time, which must
	// not be echoed back to the server.
	Seed(viewName string, criteria models.Criteria)

	// Subscribe registers fn for changes of viewName and returns a function
	// that removes the registration.
	Subscribe(viewName string, fn CriteriaChangeFunc) (unsubscribe func())
}
