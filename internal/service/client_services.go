// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-filter-keeper/internal/adapter"
	"github.com/MKhiriev/go-filter-keeper/internal/config"
	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/store"
	"github.com/MKhiriev/go-filter-keeper/models"
)

// ClientServices is the assembled sync engine of one client session.
type ClientServices struct {
	Gate       DebounceGate
	Controller CriteriaSyncController
	Sessions   ViewSessions

	adapter    adapter.CriteriaAdapter
	localStore store.LocalCriteriaStore
}

// NewClientServices assembles the engine. Calls fired by the debounce gate
// run under ctx, not under any view's lifetime, so unmounting a view never
// aborts a call already in flight.
func NewClientServices(ctx context.Context, criteriaAdapter adapter.CriteriaAdapter, localStore store.LocalCriteriaStore, cfg config.ClientSync, logger *logger.Logger, opts ...GateOption) *ClientServices {
	var controller CriteriaSyncController

	gate := NewDebounceGate(cfg, func(viewName string, criteria models.Criteria) {
		controller.Reconcile(ctx, viewName, criteria)
	}, logger, opts...)
	controller = NewCriteriaSyncController(criteriaAdapter, localStore, gate.Retry, logger)

	return &ClientServices{
		Gate:       gate,
		Controller: controller,
		Sessions:   NewViewSessions(localStore, gate, controller, logger),
		adapter:    criteriaAdapter,
		localStore: localStore,
	}
}

// SetToken switches the session to another user. Synchronization state and
// local criteria of the previous user are dropped, so each view loads again
// on its next mount. A call still in flight finishes first; its response is
// discarded.
func (s *ClientServices) SetToken(token string) {
	s.adapter.SetToken(token)
	s.Controller.ResetAll()
	for _, st := range s.Controller.Statuses() {
		s.localStore.Seed(st.ViewName, nil)
	}
}

// Shutdown fires pending windows so the last edits are sent, waits until
// every view is idle or ctx is done, then stops the gate.
func (s *ClientServices) Shutdown(ctx context.Context) error {
	s.Gate.FlushAll()

	var errs []error
	for _, st := range s.Controller.Statuses() {
		if err := s.Controller.WaitIdle(ctx, st.ViewName); err != nil {
			errs = append(errs, err)
			break
		}
	}

	s.Gate.Stop()
	return errors.Join(errs...)
}
