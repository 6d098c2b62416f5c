// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected sources in the order they were added. Non-zero
// fields of a later source override earlier ones.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// withOverlay adds values set programmatically, e.g. from cobra flags.
func (b *configBuilder) withOverlay(overlay *StructuredConfig) *configBuilder {
	if overlay != nil {
		b.configs = append(b.configs, overlay)
	}
	return b
}

// withFile loads the config file named by the last source that set FilePath.
func (b *configBuilder) withFile() *configBuilder {
	var filePath string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			filePath = cfg.FilePath
		}
	}

	if filePath == "" {
		return b
	}

	fileCfg, err := parseFile(filePath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, fileCfg)

	return b
}
