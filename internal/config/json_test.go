// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJSON_AllSections(t *testing.T) {
	path := writeConfigFile(t, `{
		"app": {
			"token_sign_key": "secret",
			"token_issuer": "keeper",
			"token_duration": "1h",
			"version": "0.4.0"
		},
		"server": {"http_address": "localhost:8080", "request_timeout": "30s"},
		"storage": {
			"backend": "file",
			"db": {"dsn": "lists.db"},
			"files": {"path": "/var/data/lists.json"}
		},
		"adapter": {
			"bridge_url": "http://127.0.0.1:7000",
			"request_timeout": "2s",
			"rate_limit": 3,
			"burst": 6
		},
		"workers": {
			"trash_purge_interval": "5m",
			"device_poll_interval": 1000000000,
			"device_refresh_interval": "90s"
		},
		"device": {"default_timeout": "12s"},
		"trash": {"max_entries": 7}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	want := &StructuredConfig{
		App: App{TokenSignKey: "secret", TokenIssuer: "keeper", TokenDuration: time.Hour, Version: "0.4.0"},
		Storage: Storage{
			Backend: BackendFile,
			DB:      DB{DSN: "lists.db"},
			Files:   Files{Path: "/var/data/lists.json"},
		},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
		Adapter: Adapter{BridgeURL: "http://127.0.0.1:7000", RequestTimeout: 2 * time.Second, RateLimit: 3, Burst: 6},
		Workers: Workers{
			TrashPurgeInterval:    5 * time.Minute,
			DevicePollInterval:    time.Second,
			DeviceRefreshInterval: 90 * time.Second,
		},
		Device: Device{DefaultTimeout: 12 * time.Second},
		Trash:  Trash{MaxEntries: 7},
	}
	assert.Equal(t, want, cfg)
}

func TestParseJSON_Partial(t *testing.T) {
	cfg, err := parseJSON(writeConfigFile(t, `{"server": {"http_address": "127.0.0.1:8000"}}`))
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:8000"}}, cfg)
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "not json", body: `{ this is not json }`, wantMsg: "error decoding json configs"},
		{name: "bad duration", body: `{"device": {"default_timeout": "soon"}}`, wantMsg: `invalid duration "soon"`},
		{name: "duration of wrong type", body: `{"device": {"default_timeout": true}}`, wantMsg: "duration must be"},
		{name: "unknown key", body: `{"trash": {"max_entires": 3}}`, wantMsg: "max_entires"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseJSON(writeConfigFile(t, tt.body))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(1500 * time.Millisecond).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1.5s"`, string(b))
}
