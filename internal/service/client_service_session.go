// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/store"
	"github.com/MKhiriev/go-filter-keeper/internal/validators"
	"github.com/MKhiriev/go-filter-keeper/models"
)

type viewSessions struct {
	localStore store.LocalCriteriaStore
	gate       DebounceGate
	controller CriteriaSyncController
	logger     *logger.Logger
}

// NewViewSessions wires localStore changes through gate into controller.
func NewViewSessions(localStore store.LocalCriteriaStore, gate DebounceGate, controller CriteriaSyncController, logger *logger.Logger) ViewSessions {
	return &viewSessions{
		localStore: localStore,
		gate:       gate,
		controller: controller,
		logger:     logger,
	}
}

// Mount loads the view's remote criteria (once per session) and starts
// forwarding its local edits to the debounce gate. It blocks for the
// initial fetch.
func (s *viewSessions) Mount(ctx context.Context, viewName string) (ViewSession, error) {
	if err := validators.ValidateViewName(viewName); err != nil {
		return nil, fmt.Errorf("mount view: %w", err)
	}

	// Subscribe first so edits made during the fetch reach the gate.
	unsubscribe := s.localStore.Subscribe(viewName, func(view string, criteria models.Criteria) {
		s.gate.Observe(view, criteria)
	})

	s.controller.Load(ctx, viewName)

	s.logger.Debug().Str("view", viewName).Msg("view mounted")

	return &viewSession{
		viewName:    viewName,
		unsubscribe: unsubscribe,
		gate:        s.gate,
		logger:      s.logger,
	}, nil
}

type viewSession struct {
	viewName    string
	unsubscribe func()
	gate        DebounceGate
	once        sync.Once
	logger      *logger.Logger
}

func (v *viewSession) ViewName() string {
	return v.viewName
}

func (v *viewSession) Close() {
	v.once.Do(func() {
		v.unsubscribe()
		v.gate.Cancel(v.viewName)
		v.logger.Debug().Str("view", v.viewName).Msg("view unmounted")
	})
}
