// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the server and the client:
// typed context keys, request integrity hashing, JSON responses, the resty
// client wrapper, record id generation and JWT handling.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they cannot collide with
// keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey holds the authenticated user id (int64) set by the auth
// middleware.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the user id stored by WithUserID. ok is false
// when the value is missing or of another type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
