// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors mapped from bridge responses by status code.
var (
	ErrBadRequest          = errors.New("bridge rejected the request")
	ErrUnauthorized        = errors.New("bridge token rejected")
	ErrForbidden           = errors.New("bridge access forbidden")
	ErrNotFound            = errors.New("device not found on bridge")
	ErrConflict            = errors.New("bridge conflict")
	ErrBadGateway          = errors.New("bridge cannot reach device")
	ErrInternalServerError = errors.New("bridge internal error")
)

var (
	// ErrBridgeDisabled is returned by the nop transport when no bridge URL
	// is configured.
	ErrBridgeDisabled = errors.New("device bridge is not configured")

	// ErrRateLimited is returned when the outbound limiter cannot admit a
	// request before the context ends.
	ErrRateLimited = errors.New("device bridge rate limit exceeded")

	// ErrSigningToken is returned when the bearer token cannot be created.
	ErrSigningToken = errors.New("failed to sign bridge token")
)
