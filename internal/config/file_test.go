// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
		"app": {"hash_key": "k", "version": "1.0.0", "log_level": "info", "session_token": "tok"},
		"auth": {"token_sign_key": "s", "token_issuer": "i", "token_duration": "24h"},
		"storage": {"db": {"dsn": "filters.db"}},
		"server": {"http_address": "localhost:8080", "grpc_address": "localhost:9090", "request_timeout": "15s"},
		"adapter": {"http_address": "http://localhost:8080", "request_timeout": 3000000000},
		"sync": {"debounce_window": "4s", "fast_debounce_window": "200ms", "fast_views": ["contacts"], "views": ["contacts", "deals"], "flush_timeout": "1s"}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.HashKey)
	assert.Equal(t, "tok", cfg.App.SessionToken)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "filters.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 4*time.Second, cfg.Sync.DebounceWindow)
	assert.Equal(t, 200*time.Millisecond, cfg.Sync.FastDebounceWindow)
	assert.Equal(t, []string{"contacts"}, cfg.Sync.FastViews)
	assert.Equal(t, []string{"contacts", "deals"}, cfg.Sync.Views)
	assert.Empty(t, cfg.FilePath)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "config.yml", `
adapter:
  http_address: localhost:8080
  request_timeout: 5s
sync:
  debounce_window: 2s
  fast_views: [contacts, deals]
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Sync.DebounceWindow)
	assert.Zero(t, cfg.Sync.FastDebounceWindow)
	assert.Equal(t, []string{"contacts", "deals"}, cfg.Sync.FastViews)
}

func TestParseFile_InvalidYAMLDuration(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", "sync:\n  debounce_window: soon\n")

	_, err := parseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml")
}

func TestDuration_JSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", raw: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", raw: `1000`, want: time.Microsecond},
		{name: "bad string", raw: `"soon"`, wantErr: true},
		{name: "bool", raw: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.raw), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}

	raw, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(raw))
}

func TestDuration_YAML(t *testing.T) {
	var v struct {
		A Duration `yaml:"a"`
		B Duration `yaml:"b"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: 250ms\nb: 1000\n"), &v))
	assert.Equal(t, 250*time.Millisecond, time.Duration(v.A))
	assert.Equal(t, time.Microsecond, time.Duration(v.B))
}
