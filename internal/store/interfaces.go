// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-list-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ListStorage is the persistence boundary of lists and listitems.
//
// Upserts are keyed by id and idempotent: writing the same record twice has
// no additional effect. A record without id gets a backend-assigned one,
// returned in the result.
//
// Moving a list to trash, restoring it and erasing it touch the list and
// its items atomically: either both change or neither does.
type ListStorage interface {
	UpsertList(ctx context.Context, rec models.ListRecord) (models.ListRecord, error)
	UpsertListitem(ctx context.Context, rec models.ListitemRecord) (models.ListitemRecord, error)

	QueryLists(ctx context.Context, partition models.Partition, ordering models.Ordering) ([]models.ListRecord, error)
	GetList(ctx context.Context, id string) (models.ListRecord, error)
	QueryListitems(ctx context.Context, listID string, partition models.Partition, ordering models.Ordering) ([]models.ListitemRecord, error)
	GetListitem(ctx context.Context, listID, id string) (models.ListitemRecord, error)

	// SoftDeleteList moves the list and its active items to trash.
	SoftDeleteList(ctx context.Context, id string, at time.Time) error
	SoftDeleteListitems(ctx context.Context, listID string, ids []string, at time.Time) error

	// RestoreList moves the list and the items trashed together with it
	// back to the active partition at the given order.
	RestoreList(ctx context.Context, id string, order int) error
	RestoreListitem(ctx context.Context, listID, id string, order int) error

	// HardDeleteList erases the list and all of its items.
	HardDeleteList(ctx context.Context, id string) error
	HardDeleteListitems(ctx context.Context, listID string, ids []string) error

	CountLists(ctx context.Context, partition models.Partition) (int, error)
	CountListitems(ctx context.Context, listID string, partition models.Partition) (int, error)
}

// PreferenceStorage is a string key-value store for user preferences.
type PreferenceStorage interface {
	// GetPreference reports ok=false when the key was never written.
	GetPreference(ctx context.Context, key string) (value string, ok bool, err error)
	SetPreference(ctx context.Context, key, value string) error
}

// ErrorClassificator decides whether a driver error is worth retrying.
// Nothing retries automatically; the classification is logged.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// IDGenerator assigns identifiers on first persist.
type IDGenerator interface {
	Generate() string
}
