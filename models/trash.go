// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
)

// KeepInTrash is the global trash retention setting. Its numeric values are
// stored in preferences and must stay stable.
type KeepInTrash int

const (
	KeepUnlimited   KeepInTrash = 0
	KeepDay         KeepInTrash = 1
	KeepWeek        KeepInTrash = 2
	KeepMonth       KeepInTrash = 3
	KeepLastEntries KeepInTrash = 4
)

var keepInTrashNames = map[KeepInTrash]string{
	KeepUnlimited:   "unlimited",
	KeepDay:         "day",
	KeepWeek:        "week",
	KeepMonth:       "month",
	KeepLastEntries: "last-entries",
}

// String implements fmt.Stringer. Unknown values print as "unlimited".
func (k KeepInTrash) String() string {
	if name, ok := keepInTrashNames[k]; ok {
		return name
	}
	return keepInTrashNames[KeepUnlimited]
}

// ParseKeepInTrash accepts either a setting name or its numeric value.
// Unrecognized input maps to [KeepUnlimited] and ok is false.
func ParseKeepInTrash(s string) (KeepInTrash, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range keepInTrashNames {
		if name == s {
			return k, true
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		if _, known := keepInTrashNames[KeepInTrash(n)]; known {
			return KeepInTrash(n), true
		}
	}
	return KeepUnlimited, false
}
