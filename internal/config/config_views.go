// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ServerConfig is the configuration view used by cmd/server.
type ServerConfig struct {
	App     App
	Auth    Auth
	Storage Storage
	Server  Server
}

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey signs outgoing request bodies; empty disables signing.
	HashKey string
	// LogLevel is a zerolog level name.
	LogLevel string
	// LogFile is the client log destination.
	LogFile string
	// SessionToken is forwarded as the bearer token.
	SessionToken string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote store service base URL.
	HTTPAddress string
	// RequestTimeout is the timeout of each outbound request.
	RequestTimeout time.Duration
}

// ClientSync holds the sync engine settings.
type ClientSync struct {
	DebounceWindow     time.Duration
	FastDebounceWindow time.Duration
	FastViews          []string
	Views              []string
	FlushTimeout       time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Sync    ClientSync
}

// AuthConfig is the configuration view used by cmd/token.
type AuthConfig struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// GetServerConfig loads configuration from the environment, os.Args and the
// optional config file, then validates the server view.
func GetServerConfig() (*ServerConfig, error) {
	return getServerConfig(os.Args[1:])
}

func getServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Auth:    cfg.Auth,
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}

	return serverCfg, serverCfg.validate()
}

// GetClientConfig builds and validates the client view. overlay carries
// values taken from the client's own command line (cobra flags); it may be
// nil.
func GetClientConfig(overlay *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withOverlay(overlay).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:      cfg.App.HashKey,
			LogLevel:     cfg.App.LogLevel,
			LogFile:      cfg.App.LogFile,
			SessionToken: cfg.App.SessionToken,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Sync: ClientSync{
			DebounceWindow:     cfg.Sync.DebounceWindow,
			FastDebounceWindow: cfg.Sync.FastDebounceWindow,
			FastViews:          cfg.Sync.FastViews,
			Views:              cfg.Sync.Views,
			FlushTimeout:       cfg.Sync.FlushTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}

// GetAuthConfig builds and validates the token-issuing view.
func GetAuthConfig(overlay *StructuredConfig) (*AuthConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withOverlay(overlay).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	authCfg := &AuthConfig{
		TokenSignKey:  cfg.Auth.TokenSignKey,
		TokenIssuer:   cfg.Auth.TokenIssuer,
		TokenDuration: cfg.Auth.TokenDuration,
	}

	return authCfg, authCfg.validate()
}
