// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrListNotFound is returned by read operations for an unknown or
	// trashed list.
	ErrListNotFound = errors.New("list not found")

	// ErrInvalidOrdering is returned when a reorder request is not a
	// permutation of the current entities.
	ErrInvalidOrdering = errors.New("ordering is not a permutation of the current entries")

	// ErrDeviceSelectionRequired is returned when no device was given, no
	// default is pinned and not exactly one device is ready.
	ErrDeviceSelectionRequired = errors.New("device selection required")

	// ErrDeviceSend is returned when the transport refused an envelope.
	ErrDeviceSend = errors.New("failed to send to device")

	// ErrInvalidDeviceMessage is returned for inbound messages whose body is
	// not a JSON object.
	ErrInvalidDeviceMessage = errors.New("invalid device message")
)

// ErrVersionIsNotSpecified is returned when the application version is
// missing from the configuration.
var ErrVersionIsNotSpecified = errors.New("application version is not specified")
