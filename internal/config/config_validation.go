// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks invariants that hold for every binary: no negative
// durations and a known log level. Binary-specific requirements are checked
// by the view validators below.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(cfg.App.LogLevel)); err != nil {
			return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
		}
	}

	if cfg.Auth.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAuthConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	if cfg.Sync.DebounceWindow < 0 || cfg.Sync.FastDebounceWindow < 0 || cfg.Sync.FlushTimeout < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidSyncConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.DebounceWindow == 0 || cfg.Sync.FastDebounceWindow == 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.App.SessionToken == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *AuthConfig) validate() error {
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenDuration == 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
