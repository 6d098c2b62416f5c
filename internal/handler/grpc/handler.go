// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the criteria server over gRPC. Only the standard
// grpc.health.v1.Health service is served.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/service"
)

// ServiceName is the health-check name of the criteria store. The empty
// name reports overall server health and follows the same status.
const ServiceName = "filterkeeper.CriteriaStore"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health service to s and marks the criteria store
// as serving.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every service to NOT_SERVING so that watchers see the
// server going away before connections are closed.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
