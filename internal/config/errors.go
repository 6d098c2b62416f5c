// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration view is incomplete or
// invalid. Callers match them with errors.Is.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid server storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing session token or unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates missing JWT parameters.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidServerConfigs indicates invalid listen settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSyncConfigs indicates non-positive debounce windows.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
