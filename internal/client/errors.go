// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrOperationFailed is returned when an operation reported a failure.
	// The reason has already been shown as a toast.
	ErrOperationFailed = errors.New("operation failed")
	// ErrUnknownRetention is returned for an unrecognised retention setting.
	ErrUnknownRetention = errors.New("unknown trash retention setting, use one of: unlimited, day, week, month, last-entries")
	// ErrDeviceFailed is returned when the device did not accept a list.
	ErrDeviceFailed = errors.New("device did not accept the list")
)
