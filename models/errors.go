// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Sentinel errors returned by the entity model. Callers should match them with
// [errors.Is].
var (
	// ErrItemsNotLoaded is returned when item access is attempted on a list
	// that was loaded in peek state (item count only).
	ErrItemsNotLoaded = errors.New("list items are not loaded")

	// ErrListNotPersisted is returned when an operation requires a
	// backend-assigned identifier but the list has never been stored.
	ErrListNotPersisted = errors.New("list is not persisted yet")

	// ErrListitemNotFound is returned when a list does not contain the
	// requested item.
	ErrListitemNotFound = errors.New("listitem not found in list")

	// ErrInvalidDeviceObject is returned when a device payload cannot be
	// parsed back into a list.
	ErrInvalidDeviceObject = errors.New("invalid device object")
)
