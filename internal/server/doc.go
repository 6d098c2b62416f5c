// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP and gRPC transports of the criteria server
// side by side and stops both when the run context ends.
package server
