// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-list-keeper/models"
)

// Field names accepted by [ListValidator] to restrict validation.
const (
	// FieldName targets the list name.
	FieldName = "name"

	// FieldReset targets the optional reset schedule of a list.
	FieldReset = "reset"

	// FieldItems targets every loaded item of a list.
	FieldItems = "items"

	// FieldText targets the text of a listitem.
	FieldText = "text"

	// FieldListID targets the owning list of a listitem.
	FieldListID = "list_id"
)

// Length limits in runes.
const (
	MaxListNameLength = 200
	MaxListitemLength = 500
)

// ListValidator validates lists and listitems before they are stored.
type ListValidator struct{}

// NewListValidator constructs a [ListValidator].
func NewListValidator() Validator {
	return &ListValidator{}
}

// Validate accepts *models.List and *models.Listitem. Without fields a list
// is checked for name, reset and items; a listitem for its text only, since
// items of unsaved lists get their list id on store.
func (v *ListValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.List:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateList(ctx, value, fields...)
	case *models.Listitem:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateListitem(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ListValidator) validateList(ctx context.Context, list *models.List, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldReset, FieldItems}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(list.Name())
			if name == "" {
				return ErrEmptyListName
			}
			if utf8.RuneCountInString(name) > MaxListNameLength {
				return ErrListNameTooLong
			}
		case FieldReset:
			if err := validateReset(list.Reset()); err != nil {
				return err
			}
		case FieldItems:
			if list.State() == models.ListStatePeek {
				continue
			}
			items, err := list.Items()
			if err != nil {
				return err
			}
			for i, item := range items {
				if err = v.validateListitem(ctx, item, FieldText); err != nil {
					return fmt.Errorf("%w at index %d: %w", ErrInvalidListitem, i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ListValidator) validateListitem(_ context.Context, item *models.Listitem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			text := strings.TrimSpace(item.Item())
			if text == "" {
				return ErrEmptyListitemText
			}
			if utf8.RuneCountInString(text) > MaxListitemLength {
				return ErrListitemTooLong
			}
		case FieldListID:
			if item.ListID() == "" {
				return ErrMissingListID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateReset accepts a nil or inactive schedule as is.
func validateReset(r *models.ListReset) error {
	if r == nil || !r.Active {
		return nil
	}
	if r.Hour < 0 || r.Hour > 23 || r.Minute < 0 || r.Minute > 59 {
		return fmt.Errorf("%w: time %02d:%02d", ErrInvalidReset, r.Hour, r.Minute)
	}

	switch r.Interval {
	case models.ResetDaily:
	case models.ResetWeekly:
		if r.Weekday < time.Sunday || r.Weekday > time.Saturday {
			return fmt.Errorf("%w: weekday %d", ErrInvalidReset, r.Weekday)
		}
	case models.ResetMonthly:
		if r.Day < 1 || r.Day > 31 {
			return fmt.Errorf("%w: day %d", ErrInvalidReset, r.Day)
		}
	default:
		return fmt.Errorf("%w: interval %q", ErrInvalidReset, r.Interval)
	}
	return nil
}
