// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_NilDB(t *testing.T) {
	_, err := Migrate(context.Background(), nil, goose.DialectPostgres)
	require.ErrorIs(t, err, errNilDB)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = Migrate(context.Background(), db, goose.Dialect("oracle-of-delphi"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider")
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// ни одного ожидания: первый же запрос goose падает
	_, err = Migrate(context.Background(), db, goose.DialectSQLite3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	applied, err := Migrate(context.Background(), db, goose.DialectSQLite3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, applied)

	for _, table := range []string{"lists", "listitems", "preferences"} {
		var name string
		err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}

	again, err := Migrate(context.Background(), db, goose.DialectSQLite3)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"00001_lists.sql", "00002_preferences.sql"}, names)
}
