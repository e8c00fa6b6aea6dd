// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "list-keeper.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func builderWith(cfgs ...*StructuredConfig) *configBuilder {
	b := newConfigBuilder()
	for _, cfg := range cfgs {
		b.add("test", cfg, nil)
	}
	return b
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestBuild_EarlierSourcesWin(t *testing.T) {
	cfg, err := builderWith(
		&StructuredConfig{Trash: Trash{MaxEntries: 2}},
		&StructuredConfig{Trash: Trash{MaxEntries: 9}, App: App{Version: "1.4.0"}},
		&StructuredConfig{Storage: Storage{Backend: BackendFile, Files: Files{Path: ":memory:"}}},
	).build()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Trash.MaxEntries)
	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, ":memory:", cfg.Storage.Files.Path)
	// defaults fill the rest
	assert.Equal(t, defaults().Device, cfg.Device)
	assert.Equal(t, defaults().Workers, cfg.Workers)
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  StructuredConfig
		want error
	}{
		{
			name: "unknown backend",
			cfg:  StructuredConfig{Storage: Storage{Backend: "mongo"}},
			want: ErrInvalidStorageConfigs,
		},
		{
			name: "postgres backend with sqlite dsn",
			cfg:  StructuredConfig{Storage: Storage{Backend: BackendPostgres, DB: DB{DSN: "lists.db"}}},
			want: ErrInvalidStorageConfigs,
		},
		{
			name: "bridge without sign key",
			cfg:  StructuredConfig{Adapter: Adapter{BridgeURL: "http://127.0.0.1:7000"}},
			want: ErrInvalidAppConfigs,
		},
		{
			name: "negative rate limit",
			cfg:  StructuredConfig{Adapter: Adapter{BridgeURL: "http://127.0.0.1:7000", RateLimit: -1}},
			want: ErrInvalidAdapterConfigs,
		},
		{
			name: "negative trash cap",
			cfg:  StructuredConfig{Trash: Trash{MaxEntries: -3}},
			want: ErrInvalidTrashConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			_, err := builderWith(&cfg).build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuild_SourceErrorStopsBuild(t *testing.T) {
	b := builderWith(&StructuredConfig{App: App{Version: "1.0.0"}})
	b.add("flags", nil, assert.AnError)

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "flags")
	assert.Len(t, b.sources, 1, "a failed source adds no layer")
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("TRASH_MAX_ENTRIES", "4")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.sources, 1)
	assert.Equal(t, "env", b.sources[0].name)
	assert.Equal(t, "env-version", b.sources[0].cfg.App.Version)
	assert.Equal(t, 4, b.sources[0].cfg.Trash.MaxEntries)
}

func TestWithEnv_BadValue(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("TRASH_MAX_ENTRIES", "plenty")

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.sources)
}

func TestWithFlags(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-b", "file", "-f", "/tmp/lists.json"})

	require.NoError(t, b.err)
	require.Len(t, b.sources, 1)
	assert.Equal(t, BackendFile, b.sources[0].cfg.Storage.Backend)
	assert.Equal(t, "/tmp/lists.json", b.sources[0].cfg.Storage.Files.Path)

	bad := newConfigBuilder().withFlags([]string{"-a", "nowhere"})
	assert.Error(t, bad.err)
	assert.Empty(t, bad.sources)
}

func TestWithJSON(t *testing.T) {
	envFile := StructuredJSONConfig{}
	envFile.App.Version = "from-env-path"
	envPath := writeJSONConfig(t, envFile)

	flagFile := StructuredJSONConfig{}
	flagFile.App.Version = "from-flag-path"
	flagPath := writeJSONConfig(t, flagFile)

	t.Run("no path adds nothing", func(t *testing.T) {
		b := builderWith(&StructuredConfig{}).withJSON()
		require.NoError(t, b.err)
		assert.Len(t, b.sources, 1)
	})

	t.Run("highest priority path wins", func(t *testing.T) {
		b := builderWith(
			&StructuredConfig{JSONFilePath: envPath},
			&StructuredConfig{JSONFilePath: flagPath},
		).withJSON()

		require.NoError(t, b.err)
		require.Len(t, b.sources, 3)
		assert.Equal(t, "json", b.sources[2].name)
		assert.Equal(t, "from-env-path", b.sources[2].cfg.App.Version)
	})

	t.Run("later path used when earlier sources name none", func(t *testing.T) {
		b := builderWith(&StructuredConfig{}, &StructuredConfig{JSONFilePath: flagPath}).withJSON()

		require.NoError(t, b.err)
		assert.Equal(t, "from-flag-path", b.sources[2].cfg.App.Version)
	})

	t.Run("missing file", func(t *testing.T) {
		b := builderWith(&StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "absent.json")}).withJSON()
		assert.Error(t, b.err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		b := builderWith(&StructuredConfig{JSONFilePath: path}).withJSON()
		assert.Error(t, b.err)
	})

	t.Run("json layer sits below env and flags", func(t *testing.T) {
		cfg, err := builderWith(
			&StructuredConfig{JSONFilePath: envPath, App: App{Version: "from-env"}},
		).withJSON().build()

		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.App.Version)
	})
}
