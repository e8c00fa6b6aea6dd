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
	"github.com/MKhiriev/go-list-keeper/models"
)

// listRepository is the SQL implementation of [ListStorage]. The same code
// serves SQLite and PostgreSQL; the dialect only changes the placeholder
// format of the embedded [*DB] builder.
//
// Timestamps are written in UTC so that lists and the items trashed
// together with them carry byte-identical deletion times.
type listRepository struct {
	*DB
	ids IDGenerator
}

// NewListRepository constructs a [ListStorage] backed by db. Records written
// without an id get one from ids.
func NewListRepository(db *DB, ids IDGenerator) ListStorage {
	return &listRepository{DB: db, ids: ids}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *listRepository) UpsertList(ctx context.Context, rec models.ListRecord) (models.ListRecord, error) {
	log := logger.FromContext(ctx)

	if rec.ID == "" {
		rec.ID = r.ids.Generate()
	}
	rec.Created = rec.Created.UTC()
	rec.Updated = utcPtr(rec.Updated)
	rec.Deleted = utcPtr(rec.Deleted)

	query, args, err := buildUpsertList(r.builder, rec)
	if err != nil {
		log.Err(err).Str("func", "listRepository.UpsertList").Msg("failed to create query")
		return models.ListRecord{}, err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "listRepository.UpsertList").
			Str("list_id", rec.ID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to upsert list")
		return models.ListRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return rec, nil
}

func (r *listRepository) UpsertListitem(ctx context.Context, rec models.ListitemRecord) (models.ListitemRecord, error) {
	log := logger.FromContext(ctx)

	if rec.ListID == "" {
		return models.ListitemRecord{}, ErrMissingListID
	}
	if rec.ID == "" {
		rec.ID = r.ids.Generate()
	}
	rec.Created = rec.Created.UTC()
	rec.Updated = utcPtr(rec.Updated)
	rec.Deleted = utcPtr(rec.Deleted)

	query, args, err := buildUpsertListitem(r.builder, rec)
	if err != nil {
		log.Err(err).Str("func", "listRepository.UpsertListitem").Msg("failed to create query")
		return models.ListitemRecord{}, err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "listRepository.UpsertListitem").
			Str("list_id", rec.ListID).
			Str("listitem_id", rec.ID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to upsert listitem")
		return models.ListitemRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return rec, nil
}

func (r *listRepository) QueryLists(ctx context.Context, partition models.Partition, ordering models.Ordering) ([]models.ListRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLists(r.builder, partition, ordering)
	if err != nil {
		log.Err(err).Str("func", "listRepository.QueryLists").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "listRepository.QueryLists").
			Stringer("partition", partition).
			Bool("retryable", r.retryable(err)).
			Msg("failed to execute query for lists")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lists := make([]models.ListRecord, 0, 16)
	for rows.Next() {
		rec, scanErr := scanList(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "listRepository.QueryLists").Msg("failed to scan list row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		lists = append(lists, rec)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "listRepository.QueryLists").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return lists, nil
}

func (r *listRepository) GetList(ctx context.Context, id string) (models.ListRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetList(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "listRepository.GetList").Msg("failed to create query")
		return models.ListRecord{}, err
	}

	rec, err := scanList(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ListRecord{}, ErrListNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "listRepository.GetList").
			Str("list_id", id).
			Bool("retryable", r.retryable(err)).
			Msg("failed to get list")
		return models.ListRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

func (r *listRepository) QueryListitems(ctx context.Context, listID string, partition models.Partition, ordering models.Ordering) ([]models.ListitemRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectListitems(r.builder, listID, partition, ordering)
	if err != nil {
		log.Err(err).Str("func", "listRepository.QueryListitems").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "listRepository.QueryListitems").
			Str("list_id", listID).
			Stringer("partition", partition).
			Bool("retryable", r.retryable(err)).
			Msg("failed to execute query for listitems")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.ListitemRecord, 0, 32)
	for rows.Next() {
		rec, scanErr := scanListitem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "listRepository.QueryListitems").Msg("failed to scan listitem row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, rec)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "listRepository.QueryListitems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *listRepository) GetListitem(ctx context.Context, listID, id string) (models.ListitemRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetListitem(r.builder, listID, id)
	if err != nil {
		log.Err(err).Str("func", "listRepository.GetListitem").Msg("failed to create query")
		return models.ListitemRecord{}, err
	}

	rec, err := scanListitem(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ListitemRecord{}, ErrListitemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "listRepository.GetListitem").
			Str("list_id", listID).
			Str("listitem_id", id).
			Bool("retryable", r.retryable(err)).
			Msg("failed to get listitem")
		return models.ListitemRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

// SoftDeleteList stamps the list and every active item with the same
// deletion time in one transaction.
func (r *listRepository) SoftDeleteList(ctx context.Context, id string, at time.Time) error {
	log := logger.FromContext(ctx)
	at = at.UTC()

	err := r.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		query, args, err := buildSoftDeleteList(r.builder, id, at)
		if err != nil {
			return err
		}
		if err = execAffecting(ctx, tx, 1, ErrListNotFound, query, args...); err != nil {
			return err
		}

		query, args, err = buildSoftDeleteListitems(r.builder, id, nil, at)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		r.logFailure(log, err, "listRepository.SoftDeleteList", id, "failed to move list to trash")
	}
	return err
}

func (r *listRepository) SoftDeleteListitems(ctx context.Context, listID string, ids []string, at time.Time) error {
	log := logger.FromContext(ctx)
	if len(ids) == 0 {
		return nil
	}

	query, args, err := buildSoftDeleteListitems(r.builder, listID, ids, at.UTC())
	if err != nil {
		log.Err(err).Str("func", "listRepository.SoftDeleteListitems").Msg("failed to create query")
		return err
	}

	err = r.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		return execAffecting(ctx, tx, int64(len(ids)), ErrListitemNotFound, query, args...)
	})
	if err != nil {
		r.logFailure(log, err, "listRepository.SoftDeleteListitems", listID, "failed to move listitems to trash")
	}
	return err
}

// RestoreList restores the items trashed together with the list before the
// list itself, while the list still carries its deletion time.
func (r *listRepository) RestoreList(ctx context.Context, id string, order int) error {
	log := logger.FromContext(ctx)

	err := r.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		query, args, err := buildRestoreListitemsTrashedWith(r.builder, id)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = buildRestoreList(r.builder, id, order)
		if err != nil {
			return err
		}
		return execAffecting(ctx, tx, 1, ErrListNotFound, query, args...)
	})
	if err != nil {
		r.logFailure(log, err, "listRepository.RestoreList", id, "failed to restore list")
	}
	return err
}

func (r *listRepository) RestoreListitem(ctx context.Context, listID, id string, order int) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRestoreListitem(r.builder, listID, id, order)
	if err != nil {
		log.Err(err).Str("func", "listRepository.RestoreListitem").Msg("failed to create query")
		return err
	}

	if err = execAffecting(ctx, r.DB, 1, ErrListitemNotFound, query, args...); err != nil {
		r.logFailure(log, err, "listRepository.RestoreListitem", listID, "failed to restore listitem")
	}
	return err
}

func (r *listRepository) HardDeleteList(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	err := r.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		query, args, err := buildDeleteListitems(r.builder, id, nil)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = buildDeleteList(r.builder, id)
		if err != nil {
			return err
		}
		return execAffecting(ctx, tx, 1, ErrListNotFound, query, args...)
	})
	if err != nil {
		r.logFailure(log, err, "listRepository.HardDeleteList", id, "failed to erase list")
	}
	return err
}

func (r *listRepository) HardDeleteListitems(ctx context.Context, listID string, ids []string) error {
	log := logger.FromContext(ctx)
	if len(ids) == 0 {
		return nil
	}

	query, args, err := buildDeleteListitems(r.builder, listID, ids)
	if err != nil {
		log.Err(err).Str("func", "listRepository.HardDeleteListitems").Msg("failed to create query")
		return err
	}

	err = r.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		return execAffecting(ctx, tx, int64(len(ids)), ErrListitemNotFound, query, args...)
	})
	if err != nil {
		r.logFailure(log, err, "listRepository.HardDeleteListitems", listID, "failed to erase listitems")
	}
	return err
}

func (r *listRepository) CountLists(ctx context.Context, partition models.Partition) (int, error) {
	query, args, err := buildCountLists(r.builder, partition)
	if err != nil {
		return 0, err
	}
	return r.count(ctx, "listRepository.CountLists", query, args...)
}

func (r *listRepository) CountListitems(ctx context.Context, listID string, partition models.Partition) (int, error) {
	query, args, err := buildCountListitems(r.builder, listID, partition)
	if err != nil {
		return 0, err
	}
	return r.count(ctx, "listRepository.CountListitems", query, args...)
}

func (r *listRepository) count(ctx context.Context, fn, query string, args ...any) (int, error) {
	var n int
	if err := r.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", fn).
			Bool("retryable", r.retryable(err)).
			Msg("failed to count rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

// logFailure logs unexpected errors; not-found results are part of the
// normal flow and stay quiet.
func (r *listRepository) logFailure(log *logger.Logger, err error, fn, listID, msg string) {
	if errors.Is(err, ErrListNotFound) || errors.Is(err, ErrListitemNotFound) {
		return
	}
	log.Err(err).
		Str("func", fn).
		Str("list_id", listID).
		Bool("retryable", r.retryable(err)).
		Msg(msg)
}

// execAffecting runs a statement that must touch exactly want rows and
// returns notFound otherwise. Inside a transaction the caller's rollback
// undoes partial changes.
func execAffecting(ctx context.Context, db DBTX, want int64, notFound error, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected != want {
		return notFound
	}
	return nil
}

func scanList(row rowScanner) (models.ListRecord, error) {
	var (
		rec   models.ListRecord
		reset sql.Null[string]
	)
	err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.Created,
		&rec.Updated,
		&rec.Deleted,
		&rec.Order,
		&rec.Sync,
		&reset,
		&rec.ItemCount,
	)
	if err != nil {
		return models.ListRecord{}, err
	}

	if reset.Valid && reset.V != "" {
		rec.Reset = new(models.ListReset)
		if err = rec.Reset.Scan(reset.V); err != nil {
			return models.ListRecord{}, err
		}
	}
	return rec, nil
}

func scanListitem(row rowScanner) (models.ListitemRecord, error) {
	var rec models.ListitemRecord
	err := row.Scan(
		&rec.ID,
		&rec.ListID,
		&rec.Item,
		&rec.Note,
		&rec.Order,
		&rec.Hidden,
		&rec.Locked,
		&rec.Created,
		&rec.Updated,
		&rec.Deleted,
	)
	return rec, err
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
