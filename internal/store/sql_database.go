// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/migrations"
)

// DB wraps a *sql.DB with the query builder and error classification of its
// dialect.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	builder            sq.StatementBuilderType
	dialect            goose.Dialect
}

// newDB pings conn and wraps it. conn is closed when the ping fails.
func newDB(ctx context.Context, conn *sql.DB, dialect goose.Dialect, placeholders sq.PlaceholderFormat,
	classifier ErrorClassificator, log *logger.Logger,
) (*DB, error) {
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("dialect", string(dialect)).Msg("database ping failed")
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}
	log.Info().Str("dialect", string(dialect)).Msg("connected to database")

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: classifier,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholders),
		dialect:            dialect,
	}, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB, db.dialect)
	if err != nil {
		return err
	}
	if len(applied) > 0 {
		db.logger.Info().Ints64("versions", applied).Msg("schema migrated")
	}
	return nil
}

// retryable reports the classification of err for logging.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// DBTX is the subset of database/sql used by repositories. Both *sql.DB and
// *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx runs fn inside a transaction. It commits when fn returns nil and
// rolls back on error or panic; panics are rethrown.
func (db *DB) withTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	err = fn(ctx, tx)
	return err
}
