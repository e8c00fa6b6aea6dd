// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if cfg.Adapter.BridgeURL != "" && cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.TrashPurgeInterval <= 0 || cfg.Workers.DevicePollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Device.DefaultTimeout <= 0 {
		return ErrInvalidDeviceConfigs
	}

	if cfg.Trash.MaxEntries <= 0 {
		return ErrInvalidTrashConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if cfg.Workers.DevicePollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Device.DefaultTimeout <= 0 {
		return ErrInvalidDeviceConfigs
	}

	return nil
}

func (s Storage) validate() error {
	switch s.Backend {
	case BackendSQLite:
		if s.DB.DSN == "" || strings.HasPrefix(s.DB.DSN, "postgres") {
			return ErrInvalidStorageConfigs
		}
	case BackendPostgres:
		if !strings.HasPrefix(s.DB.DSN, "postgres") {
			return ErrInvalidStorageConfigs
		}
	case BackendFile:
		if s.Files.Path == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (a Adapter) validate() error {
	if a.BridgeURL == "" {
		return nil
	}

	if a.RequestTimeout <= 0 || a.RateLimit <= 0 || a.Burst <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
