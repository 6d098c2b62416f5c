// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle shared by each transport and by the combined
// server.
type Server interface {
	// RunServer serves until ctx is done or serving fails. A clean stop
	// returns nil.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
