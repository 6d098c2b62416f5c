// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext is returned when a /criteria handler runs without
	// the user id the auth middleware stores.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	// ErrMissingHash is returned when hashing is enabled and a body-carrying
	// request has no HashSHA256 header.
	ErrMissingHash = errors.New("missing HashSHA256 header")

	// ErrHashMismatch is returned when the HashSHA256 header does not match
	// the request body.
	ErrHashMismatch = errors.New("HashSHA256 header does not match body")
)
