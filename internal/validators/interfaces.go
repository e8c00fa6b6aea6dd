// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks lists, listitems and reset schedules before they
// reach storage. The HTTP API validates request bodies with the same rules
// the lists service applies on store.
package validators

import "context"

// Validator checks v. With field names only those fields are checked, which
// lets partial updates validate what they change.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
