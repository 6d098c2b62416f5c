// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/service"
	"github.com/MKhiriev/go-filter-keeper/internal/store"
	"github.com/MKhiriev/go-filter-keeper/models"
)

// ErrNoViews is returned by New when there is nothing to edit.
var ErrNoViews = errors.New("no views configured")

// TUI is the interactive criteria editor.
type TUI struct {
	services   *service.ClientServices
	localStore store.LocalCriteriaStore
	views      []string
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, localStore store.LocalCriteriaStore, views []string, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if len(views) == 0 {
		return nil, ErrNoViews
	}

	return &TUI{
		services:   services,
		localStore: localStore,
		views:      views,
		buildInfo:  buildInfo,
		logger:     logger,
	}, nil
}

// Run shows the editor until the user quits or ctx is done. Status changes
// of the sync engine are forwarded to the program as messages.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, deps{
		sessions:   t.services.Sessions,
		controller: t.services.Controller,
		gate:       t.services.Gate,
		store:      t.localStore,
		setToken:   t.services.SetToken,
	}, t.views, t.buildInfo)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.services.Controller.Subscribe(func(st models.SyncStatus) {
		p.Send(statusMsg(st))
	})
	defer unsubscribe()

	finalModel, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	if result, ok := finalModel.(appModel); ok && result.session != nil {
		viewName := result.session.ViewName()
		if t.services.Gate.Pending(viewName) {
			t.services.Gate.Flush(viewName)
		}
		result.session.Close()
	}

	t.logger.Debug().Msg("editor closed")
	return nil
}
