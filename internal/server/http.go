// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/go-filter-keeper/internal/logger"
)

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, address string, logger *logger.Logger) (*httpServer, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("http listen on %s: %w", address, err)
	}

	return &httpServer{
		server:   &http.Server{Handler: handler},
		listener: listener,
		logger:   logger,
	}, nil
}

func (h *httpServer) RunServer(context.Context) error {
	h.logger.Info().Str("address", h.listener.Addr().String()).Msg("launching HTTP server")

	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http serve: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server shutdown")
	defer h.listener.Close() // not tracked by the server until Serve runs

	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
