// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyListName     = errors.New("list name is required")
	ErrListNameTooLong   = errors.New("list name is too long")
	ErrInvalidReset      = errors.New("invalid reset schedule")
	ErrEmptyListitemText = errors.New("listitem text is required")
	ErrListitemTooLong   = errors.New("listitem text is too long")
	ErrMissingListID     = errors.New("listitem has no list id")
	ErrInvalidListitem   = errors.New("invalid listitem")
)
