// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for config files. Durations
// are written as strings ("10s", "1m") or as nanosecond numbers.
type StructuredFileConfig struct {
	App struct {
		HashKey      string `json:"hash_key" yaml:"hash_key"`
		Version      string `json:"version" yaml:"version"`
		LogLevel     string `json:"log_level" yaml:"log_level"`
		LogFile      string `json:"log_file" yaml:"log_file"`
		SessionToken string `json:"session_token" yaml:"session_token"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
	} `json:"auth,omitempty" yaml:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Sync struct {
		DebounceWindow     Duration `json:"debounce_window" yaml:"debounce_window"`
		FastDebounceWindow Duration `json:"fast_debounce_window" yaml:"fast_debounce_window"`
		FastViews          []string `json:"fast_views" yaml:"fast_views"`
		Views              []string `json:"views" yaml:"views"`
		FlushTimeout       Duration `json:"flush_timeout" yaml:"flush_timeout"`
	} `json:"sync,omitempty" yaml:"sync,omitempty"`
}

// parseFile reads a config file, choosing YAML for .yaml/.yml and JSON for
// everything else.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			HashKey:      f.App.HashKey,
			Version:      f.App.Version,
			LogLevel:     f.App.LogLevel,
			LogFile:      f.App.LogFile,
			SessionToken: f.App.SessionToken,
		},
		Auth: Auth{
			TokenSignKey:  f.Auth.TokenSignKey,
			TokenIssuer:   f.Auth.TokenIssuer,
			TokenDuration: time.Duration(f.Auth.TokenDuration),
		},
		Storage: Storage{
			DB: DB{DSN: f.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			GRPCAddress:    f.Server.GRPCAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		Sync: Sync{
			DebounceWindow:     time.Duration(f.Sync.DebounceWindow),
			FastDebounceWindow: time.Duration(f.Sync.FastDebounceWindow),
			FastViews:          f.Sync.FastViews,
			Views:              f.Sync.Views,
			FlushTimeout:       time.Duration(f.Sync.FlushTimeout),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("invalid duration at line %d: %w", node.Line, err)
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
