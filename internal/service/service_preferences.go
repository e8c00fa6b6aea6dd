// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/notify"
	"github.com/MKhiriev/go-list-keeper/internal/store"
	"github.com/MKhiriev/go-list-keeper/models"
)

// Preference keys.
const (
	PrefTrashListsEnabled     = "trash.lists.enabled"
	PrefTrashListitemsEnabled = "trash.listitems.enabled"
	PrefTrashKeep             = "trash.keep"
	PrefDefaultDevice         = "device.default"
	prefConfirmPrefix         = "confirm."
)

// PrefConfirm returns the key of the confirmation toggle of kind.
func PrefConfirm(kind models.ConfirmKind) string {
	return prefConfirmPrefix + string(kind)
}

type preferencesService struct {
	storage store.PreferenceStorage
	changes notify.Stream[models.PreferenceChanged]
}

// NewPreferencesService constructs a [PreferencesService] over storage.
func NewPreferencesService(storage store.PreferenceStorage) PreferencesService {
	return &preferencesService{storage: storage}
}

func (p *preferencesService) Raw(ctx context.Context, key string) (string, bool, error) {
	value, ok, err := p.storage.GetPreference(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("get preference %q: %w", key, err)
	}
	return value, ok, nil
}

// Set stores value JSON encoded and notifies subscribers of Changes.
func (p *preferencesService) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode preference %q: %w", key, err)
	}
	if err = p.storage.SetPreference(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}

	p.changes.Publish(models.PreferenceChanged{Key: key, Value: string(raw)})
	return nil
}

func (p *preferencesService) Changes() *notify.Stream[models.PreferenceChanged] {
	return &p.changes
}

// GetPreference reads key and decodes it into T. A missing key, a storage
// failure or a value that does not decode into T yield def; failures are
// logged.
func GetPreference[T any](ctx context.Context, p PreferencesService, key string, def T) T {
	raw, ok, err := p.Raw(ctx, key)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "service.GetPreference").
			Str("key", key).
			Msg("falling back to default preference")
		return def
	}
	if !ok {
		return def
	}

	var v T
	if err = json.Unmarshal([]byte(raw), &v); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "service.GetPreference").
			Str("key", key).
			Msg("preference does not decode, falling back to default")
		return def
	}
	return v
}
