// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// configSource is one layer of configuration; layers added earlier win.
type configSource struct {
	name string
	cfg  *StructuredConfig
}

type configBuilder struct {
	sources []configSource
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{sources: make([]configSource, 0, 4)}
}

func (b *configBuilder) add(name string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", name, err))
		return b
	}
	b.sources = append(b.sources, configSource{name: name, cfg: cfg})
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, src := range append(b.sources, configSource{name: "defaults", cfg: defaults()}) {
		if err := mergo.Merge(merged, src.cfg); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", src.name, err)
		}
	}

	return merged, merged.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return b.add("env", nil, err)
	}

	cfg, err := parseEnv()
	return b.add("env", cfg, err)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	cfg, err := parseFlags(args)
	return b.add("flags", cfg, err)
}

// withJSON loads the JSON file named by the highest priority source that
// names one. Without such a source it adds nothing.
func (b *configBuilder) withJSON() *configBuilder {
	for _, src := range b.sources {
		if src.cfg.JSONFilePath == "" {
			continue
		}
		cfg, err := parseJSON(src.cfg.JSONFilePath)
		return b.add("json", cfg, err)
	}
	return b
}

// defaults is merged last and only fills fields no other source set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-list-keeper",
			TokenDuration: time.Hour,
			Version:       "dev",
		},
		Storage: Storage{
			Backend: BackendSQLite,
			DB:      DB{DSN: "list-keeper.db"},
			Files:   Files{Path: "list-keeper.json"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
			RateLimit:      5,
			Burst:          10,
		},
		Workers: Workers{
			TrashPurgeInterval:    time.Hour,
			DevicePollInterval:    time.Second,
			DeviceRefreshInterval: time.Minute,
		},
		Device: Device{DefaultTimeout: 10 * time.Second},
		Trash:  Trash{MaxEntries: 20},
	}
}
