// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-list-keeper/internal/config"
	"github.com/MKhiriev/go-list-keeper/internal/logger"
)

// Storages groups the storage boundaries the service layer depends on.
type Storages struct {
	Lists       ListStorage
	Preferences PreferenceStorage

	closer io.Closer
}

// NewStorages opens the backend selected by cfg.Backend:
//   - [config.BackendSQLite]: a SQLite file at cfg.DB.DSN, migrated on start;
//   - [config.BackendPostgres]: a PostgreSQL database at cfg.DB.DSN, migrated
//     on start;
//   - [config.BackendFile]: a single JSON file at cfg.Files.Path.
func NewStorages(ctx context.Context, cfg config.Storage, ids IDGenerator, log *logger.Logger) (*Storages, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	switch cfg.Backend {
	case config.BackendFile:
		fs, err := NewFileStorage(cfg.Files.Path, ids)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		return &Storages{Lists: fs, Preferences: fs}, nil

	case config.BackendSQLite, config.BackendPostgres:
		var (
			db  *DB
			err error
		)
		if cfg.Backend == config.BackendSQLite {
			db, err = NewConnectSQLite(ctx, cfg.DB, log)
		} else {
			db, err = NewConnectPostgres(ctx, cfg.DB, log)
		}
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", cfg.Backend, err)
		}

		if err = db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &Storages{
			Lists:       NewListRepository(db, ids),
			Preferences: NewPreferenceRepository(db),
			closer:      db,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Backend)
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
