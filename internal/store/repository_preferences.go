// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-list-keeper/internal/logger"
)

type preferenceRepository struct {
	*DB
	now func() time.Time
}

// NewPreferenceRepository constructs a SQL-backed [PreferenceStorage].
func NewPreferenceRepository(db *DB) PreferenceStorage {
	return &preferenceRepository{DB: db, now: time.Now}
}

func (r *preferenceRepository) GetPreference(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPreference(r.builder, key)
	if err != nil {
		log.Err(err).Str("func", "preferenceRepository.GetPreference").Msg("failed to create query")
		return "", false, err
	}

	var value string
	err = r.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.GetPreference").
			Str("key", key).
			Bool("retryable", r.retryable(err)).
			Msg("failed to read preference")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (r *preferenceRepository) SetPreference(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetPreference(r.builder, key, value, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "preferenceRepository.SetPreference").Msg("failed to create query")
		return err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.SetPreference").
			Str("key", key).
			Bool("retryable", r.retryable(err)).
			Msg("failed to write preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
