// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-filter-keeper/internal/config"
	"github.com/MKhiriev/go-filter-keeper/internal/handler"
	"github.com/MKhiriev/go-filter-keeper/internal/logger"
)

// shutdownTimeout bounds the graceful stop after the run context ends.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer binds a listener for every enabled transport. Nothing is
// served until RunServer.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		h, err := newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, logger)
		if err != nil {
			return nil, err
		}
		s.httpServer = h
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		g, err := newGRPCServer(handlers.GRPC, cfg.GRPCAddress, logger)
		if err != nil {
			s.closeListeners()
			return nil, err
		}
		s.gRPCServer = g
	}

	if s.httpServer == nil && s.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

// RunServer serves every transport until ctx is done or one of them fails;
// then all of them are shut down.
func (s *server) RunServer(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range s.servers() {
		g.Go(func() error {
			return srv.RunServer(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, srv := range s.servers() {
		errs = append(errs, srv.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

func (s *server) servers() []Server {
	var out []Server
	if s.httpServer != nil {
		out = append(out, s.httpServer)
	}
	if s.gRPCServer != nil {
		out = append(out, s.gRPCServer)
	}
	return out
}

func (s *server) closeListeners() {
	if s.httpServer != nil {
		s.httpServer.listener.Close()
	}
}
