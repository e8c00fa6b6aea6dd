// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		DB      struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Files struct {
			Path string `json:"path"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		BridgeURL      string   `json:"bridge_url"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		Burst          int      `json:"burst"`
	} `json:"adapter,omitempty"`

	Workers struct {
		TrashPurgeInterval    Duration `json:"trash_purge_interval"`
		DevicePollInterval    Duration `json:"device_poll_interval"`
		DeviceRefreshInterval Duration `json:"device_refresh_interval"`
	} `json:"workers,omitempty"`

	Device struct {
		DefaultTimeout Duration `json:"default_timeout"`
	} `json:"device,omitempty"`

	Trash struct {
		MaxEntries int `json:"max_entries"`
	} `json:"trash,omitempty"`
}

// parseJSON reads the JSON config file at path. Unknown keys are rejected
// so that a misspelt setting does not silently fall back to its default.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var j StructuredJSONConfig
	if err = dec.Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs %s: %w", path, err)
	}

	return j.structured(), nil
}

func (j *StructuredJSONConfig) structured() *StructuredConfig {
	cfg := &StructuredConfig{}

	cfg.App = App{
		TokenSignKey:  j.App.TokenSignKey,
		TokenIssuer:   j.App.TokenIssuer,
		TokenDuration: time.Duration(j.App.TokenDuration),
		Version:       j.App.Version,
	}
	cfg.Storage.Backend = j.Storage.Backend
	cfg.Storage.DB.DSN = j.Storage.DB.DSN
	cfg.Storage.Files.Path = j.Storage.Files.Path

	cfg.Server.HTTPAddress = j.Server.HTTPAddress
	cfg.Server.RequestTimeout = time.Duration(j.Server.RequestTimeout)

	cfg.Adapter = Adapter{
		BridgeURL:      j.Adapter.BridgeURL,
		RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		RateLimit:      j.Adapter.RateLimit,
		Burst:          j.Adapter.Burst,
	}
	cfg.Workers = Workers{
		TrashPurgeInterval:    time.Duration(j.Workers.TrashPurgeInterval),
		DevicePollInterval:    time.Duration(j.Workers.DevicePollInterval),
		DeviceRefreshInterval: time.Duration(j.Workers.DeviceRefreshInterval),
	}
	cfg.Device.DefaultTimeout = time.Duration(j.Device.DefaultTimeout)
	cfg.Trash.MaxEntries = j.Trash.MaxEntries

	return cfg
}

// Duration reads either a duration string ("30s", "1h") or a number of
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(v)
		return nil
	}

	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("duration must be a string or nanoseconds, got %s", b)
	}
	*d = Duration(n)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
