// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	myGRPC "github.com/MKhiriev/go-filter-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-filter-keeper/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("grpc listen on %s: %w", address, err)
	}

	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler:  handler,
		server:   s,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) RunServer(context.Context) error {
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("launching gRPC server")

	if err := g.server.Serve(g.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// Shutdown reports NOT_SERVING, then drains. If ctx expires first the
// remaining connections are closed.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server shutdown")
	g.handler.Shutdown()
	defer g.listener.Close()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		<-stopped
		return fmt.Errorf("grpc shutdown: %w", ctx.Err())
	}
}
