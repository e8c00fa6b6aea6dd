// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientWorkers contains the background settings the CLI needs.
type ClientWorkers struct {
	// DevicePollInterval is the device transaction timeout poll period.
	DevicePollInterval time.Duration
}

// ClientConfig is the configuration view of the command-line client. It
// opens the same storage as the server and talks to the same bridge.
type ClientConfig struct {
	App     App
	Adapter Adapter
	Storage Storage
	Workers ClientWorkers
	Device  Device
	Trash   Trash
}

// GetClientConfig builds and validates the client config from environment
// variables, the optional JSON file and defaults. Command-line flags belong
// to the cobra command tree and are not parsed here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
		Workers: ClientWorkers{DevicePollInterval: cfg.Workers.DevicePollInterval},
		Device:  cfg.Device,
		Trash:   cfg.Trash,
	}

	return clientCfg, clientCfg.validate()
}
