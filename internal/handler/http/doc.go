// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the criteria server.
//
// It wires the chi router, the /criteria handlers and the middleware that
// runs before them: panic recovery, trace ids, access logging, gzip,
// bearer-token authentication and the optional HashSHA256 integrity check.
package http
