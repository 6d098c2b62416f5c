// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-filter-keeper/internal/adapter"
	"github.com/MKhiriev/go-filter-keeper/internal/config"
	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/service"
	"github.com/MKhiriev/go-filter-keeper/internal/store"
	"github.com/MKhiriev/go-filter-keeper/internal/tui"
	"github.com/MKhiriev/go-filter-keeper/models"
)

// App owns one client session: the remote store adapter, the local
// criteria store and the sync engine built on top of them.
type App struct {
	services   *service.ClientServices
	localStore store.LocalCriteriaStore

	views        []string
	flushTimeout time.Duration
	buildInfo    models.AppBuildInfo

	logger *logger.Logger
}

// NewApp wires the sync engine for cfg. Remote calls fired by the engine
// run under ctx.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...service.GateOption) (*App, error) {
	criteriaAdapter, err := adapter.NewHTTPCriteriaAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create remote store adapter: %w", err)
	}

	return newApp(ctx, criteriaAdapter, cfg.Sync, buildInfo, log, opts...), nil
}

func newApp(ctx context.Context, criteriaAdapter adapter.CriteriaAdapter, cfg config.ClientSync, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...service.GateOption) *App {
	localStore := store.NewLocalCriteriaStore()

	return &App{
		services:     service.NewClientServices(ctx, criteriaAdapter, localStore, cfg, log, opts...),
		localStore:   localStore,
		views:        cfg.Views,
		flushTimeout: cfg.FlushTimeout,
		buildInfo:    buildInfo,
		logger:       log,
	}
}

// Run shows the interactive editor and, once it exits, waits for the last
// edits to reach the remote store.
func (a *App) Run(ctx context.Context) error {
	ui, err := tui.New(a.services, a.localStore, a.views, a.buildInfo, a.logger)
	if err != nil {
		return fmt.Errorf("create editor: %w", err)
	}

	runErr := ui.Run(ctx)
	if err = a.Shutdown(); err != nil {
		a.logger.Warn().Err(err).Msg("not every edit reached the remote store")
	}

	return runErr
}

// Get mounts viewName, which seeds it from the remote store, and returns
// what the engine now holds for it.
func (a *App) Get(ctx context.Context, viewName string) (models.Criteria, models.SyncStatus, error) {
	session, err := a.services.Sessions.Mount(ctx, viewName)
	if err != nil {
		return nil, models.SyncStatus{}, err
	}
	defer session.Close()

	return a.localStore.Get(viewName), a.services.Controller.Status(viewName), nil
}

// Set applies "field=v1,v2" assignments to the view's current criteria and
// waits until the result is written.
func (a *App) Set(ctx context.Context, viewName string, assignments ...string) (models.SyncStatus, error) {
	return a.edit(ctx, viewName, func(current models.Criteria) (models.Criteria, error) {
		return current.ApplyAssignments(assignments...)
	})
}

// Clear removes every filter of the view, which deletes its remote record.
func (a *App) Clear(ctx context.Context, viewName string) (models.SyncStatus, error) {
	return a.edit(ctx, viewName, func(models.Criteria) (models.Criteria, error) {
		return nil, nil
	})
}

func (a *App) edit(ctx context.Context, viewName string, change func(models.Criteria) (models.Criteria, error)) (models.SyncStatus, error) {
	session, err := a.services.Sessions.Mount(ctx, viewName)
	if err != nil {
		return models.SyncStatus{}, err
	}
	defer session.Close()

	next, err := change(a.localStore.Get(viewName))
	if err != nil {
		return models.SyncStatus{}, err
	}

	a.localStore.Set(viewName, next)
	a.services.Gate.Flush(viewName)

	if err = a.services.Controller.WaitIdle(ctx, viewName); err != nil {
		return a.services.Controller.Status(viewName), fmt.Errorf("wait for %q: %w", viewName, err)
	}

	status := a.services.Controller.Status(viewName)
	if status.LastError != "" {
		return status, fmt.Errorf("%w: %s", ErrNotSynced, status.LastError)
	}
	return status, nil
}

// Shutdown sends pending edits and waits up to the configured flush timeout
// for them.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.flushTimeout)
	defer cancel()

	err := a.services.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("flush timed out after %s: %w", a.flushTimeout, err)
	}
	return err
}
