// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the bridge auth middleware
	// when the webhook carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrBridgeAuthDisabled is returned when no token sign key is configured,
	// so no webhook can be authenticated.
	ErrBridgeAuthDisabled = errors.New("device bridge authentication is not configured")

	// ErrInvalidJSON is returned for request bodies that do not decode.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrMissingItemText is returned when a listitem is created without text.
	ErrMissingItemText = errors.New("listitem text is required")

	// ErrMissingDeviceID is returned for device events without a device id.
	ErrMissingDeviceID = errors.New("device id is required")

	// ErrUnknownRetention is returned for a retention setting that is
	// neither a known name nor a known number.
	ErrUnknownRetention = errors.New("unknown trash retention setting")
)
