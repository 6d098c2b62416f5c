// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-filter-keeper/internal/config"
	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/service"
	"github.com/MKhiriev/go-filter-keeper/internal/utils"
)

type Handler struct {
	services *service.Services
	hasher   *utils.Hasher

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		hasher:         utils.NewHasher(cfg.App.HashKey),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
