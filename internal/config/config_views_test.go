// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerConfig_FlagsOverrideEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("SERVER_ADDRESS", "localhost:1111")
	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "filter-keeper")

	cfg, err := getServerConfig([]string{"-a", "localhost:2222"})
	require.NoError(t, err)

	assert.Equal(t, "localhost:2222", cfg.Server.HTTPAddress)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
}

func TestGetServerConfig_FileOverridesFlags(t *testing.T) {
	clearEnvVars(t)
	path := writeTempConfig(t, "server.yaml", `
server:
  http_address: localhost:3333
storage:
  db:
    dsn: file.db
auth:
  token_sign_key: s
  token_issuer: i
`)

	cfg, err := getServerConfig([]string{"-a", "localhost:2222", "-c", path})
	require.NoError(t, err)
	assert.Equal(t, "localhost:3333", cfg.Server.HTTPAddress)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
}

func TestGetServerConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "no address", args: []string{"-d", "x.db", "-token-sign-key", "s", "-token-issuer", "i"}, want: ErrInvalidServerConfigs},
		{name: "no dsn", args: []string{"-a", "localhost:1", "-token-sign-key", "s", "-token-issuer", "i"}, want: ErrInvalidStorageConfigs},
		{name: "no sign key", args: []string{"-a", "localhost:1", "-d", "x.db", "-token-issuer", "i"}, want: ErrInvalidAuthConfigs},
		{name: "bad log level", args: []string{"-log-level", "loud"}, want: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			_, err := getServerConfig(tt.args)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetClientConfig_OverlayAndDefaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ADAPTER_ADDRESS", "localhost:8080")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "5s")

	cfg, err := GetClientConfig(&StructuredConfig{
		App:  App{SessionToken: "tok"},
		Sync: Sync{FastViews: []string{"contacts"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "tok", cfg.App.SessionToken)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Sync.DebounceWindow)
	assert.Equal(t, time.Second, cfg.Sync.FastDebounceWindow)
	assert.Equal(t, []string{"contacts"}, cfg.Sync.FastViews)
}

func TestGetClientConfig_Validation(t *testing.T) {
	clearEnvVars(t)

	_, err := GetClientConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)

	_, err = GetClientConfig(&StructuredConfig{
		Adapter: Adapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
	})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)

	_, err = GetClientConfig(&StructuredConfig{
		Adapter: Adapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		App:     App{SessionToken: "tok"},
		Sync:    Sync{DebounceWindow: -time.Second},
	})
	assert.ErrorIs(t, err, ErrInvalidSyncConfigs)
}

func TestGetAuthConfig(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "filter-keeper")

	_, err := GetAuthConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)

	cfg, err := GetAuthConfig(&StructuredConfig{Auth: Auth{TokenDuration: time.Hour}})
	require.NoError(t, err)
	assert.Equal(t, AuthConfig{TokenSignKey: "secret", TokenIssuer: "filter-keeper", TokenDuration: time.Hour}, *cfg)
}
