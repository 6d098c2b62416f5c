// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// go-filter-keeper binaries. It is populated by merging environment
// variables, command-line flags and an optional JSON or YAML file. Each
// binary then narrows it to its own view ([ServerConfig], [ClientConfig],
// [AuthConfig]) and validates only what it needs.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: integrity key, version, logging and
	// the client's session token.
	App App `envPrefix:"APP_"`

	// Auth holds JWT signing parameters.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the server's database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts for the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the remote store service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds debounce windows and the list of editable views.
	Sync Sync `envPrefix:"SYNC_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable, the -c / -config flag
	// or the client's --config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Empty disables signing and verification.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the version string reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the client writes its log; empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// SessionToken is the bearer token the client forwards to the remote
	// store service.
	// Env: APP_SESSION_TOKEN
	SessionToken string `env:"SESSION_TOKEN"`
}

// Auth holds JWT parameters shared by the server (verification) and the
// token tool (issuing).
type Auth struct {
	// TokenSignKey is the HS256 secret. Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim written and checked on every token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token (e.g. "24h").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for the server's storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver: "postgres://..." or "postgresql://..." opens
	// Postgres through pgx, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables the gRPC listener.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's outbound transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the remote store service. A bare
	// "host:port" is accepted and treated as http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds each remote call made by the sync engine.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the debounce and view settings of the client sync engine.
type Sync struct {
	// DebounceWindow is the quiet period before local edits are written.
	// Env: SYNC_DEBOUNCE_WINDOW
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW" envDefault:"10s"`

	// FastDebounceWindow is used for the views listed in FastViews.
	// Env: SYNC_FAST_DEBOUNCE_WINDOW
	FastDebounceWindow time.Duration `env:"FAST_DEBOUNCE_WINDOW" envDefault:"1s"`

	// FastViews lists views that use FastDebounceWindow.
	// Env: SYNC_FAST_VIEWS (comma separated)
	FastViews []string `env:"FAST_VIEWS" envSeparator:","`

	// Views lists the views offered by the interactive editor.
	// Env: SYNC_VIEWS (comma separated)
	Views []string `env:"VIEWS" envSeparator:","`

	// FlushTimeout bounds how long the client waits for in-flight writes
	// on exit.
	// Env: SYNC_FLUSH_TIMEOUT
	FlushTimeout time.Duration `env:"FLUSH_TIMEOUT" envDefault:"5s"`
}
