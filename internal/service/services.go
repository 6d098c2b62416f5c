// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-filter-keeper/internal/config"
	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/store"
)

// Services groups the server-side services handed to the HTTP handler.
type Services struct {
	AuthService     AuthService
	CriteriaService CriteriaService
	AppInfoService  AppInfoService
}

// NewServices builds the server services. The criteria service is wrapped
// with input validation.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	criteria := NewCriteriaValidationService().
		Wrap(NewCriteriaService(storages.CriteriaRepository, logger))

	return &Services{
		AuthService:     NewAuthService(cfg.Auth, logger),
		CriteriaService: criteria,
		AppInfoService:  appInfo,
	}, nil
}
