// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package retention maps the trash retention setting to a purge strategy and
// selects the trash entries a strategy removes.
//
// Everything here is pure: callers pass the current time and the trash
// contents and get back identifiers to erase. Scheduling and storage belong
// to the service layer.
package retention

import (
	"slices"
	"time"

	"github.com/MKhiriev/go-list-keeper/models"
)

// Kind is the strategy family.
type Kind string

const (
	KindUnlimited Kind = "unlimited"
	KindAge       Kind = "age"
	KindCount     Kind = "count"
)

// DefaultMaxEntries is the cap used by [models.KeepLastEntries] when no
// other value is configured.
const DefaultMaxEntries = 20

// Strategy is the resolved purge strategy. Exactly one of Days or Max is
// meaningful, depending on Kind.
type Strategy struct {
	Kind Kind `json:"kind"`
	Days int  `json:"days,omitempty"`
	Max  int  `json:"max,omitempty"`
}

// Policy carries the tunables of strategy resolution.
type Policy struct {
	MaxEntries int
}

// ResolveStrategy resolves a setting with [DefaultMaxEntries].
func ResolveStrategy(setting models.KeepInTrash) Strategy {
	return Policy{}.Resolve(setting)
}

// Resolve is total over int values of [models.KeepInTrash]: any value
// outside the enumeration resolves to the unlimited strategy.
func (p Policy) Resolve(setting models.KeepInTrash) Strategy {
	switch setting {
	case models.KeepDay:
		return Strategy{Kind: KindAge, Days: 1}
	case models.KeepWeek:
		return Strategy{Kind: KindAge, Days: 7}
	case models.KeepMonth:
		return Strategy{Kind: KindAge, Days: 30}
	case models.KeepLastEntries:
		maxEntries := p.MaxEntries
		if maxEntries <= 0 {
			maxEntries = DefaultMaxEntries
		}
		return Strategy{Kind: KindCount, Max: maxEntries}
	default:
		return Strategy{Kind: KindUnlimited}
	}
}

// Timed reports whether the strategy needs periodic re-evaluation.
func (s Strategy) Timed() bool { return s.Kind == KindAge }

// Capped reports whether the strategy must be enforced after every trash
// insertion.
func (s Strategy) Capped() bool { return s.Kind == KindCount }

// Cutoff returns the deletion time before which age-based entries expire.
// Only meaningful for [KindAge].
func (s Strategy) Cutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -s.Days)
}

// Entry is a trash entry as seen by the policy.
type Entry struct {
	ID      string
	Deleted time.Time
}

// Expired returns the identifiers the strategy removes from entries.
//
// Age strategy: entries deleted strictly before the cutoff.
// Count strategy: everything beyond the Max most recently deleted entries;
// ties on the deletion time are broken by id so the result is stable.
// Unlimited: nothing.
func (s Strategy) Expired(entries []Entry, now time.Time) []string {
	switch s.Kind {
	case KindAge:
		cutoff := s.Cutoff(now)
		var out []string
		for _, e := range entries {
			if e.Deleted.Before(cutoff) {
				out = append(out, e.ID)
			}
		}
		return out
	case KindCount:
		if len(entries) <= s.Max {
			return nil
		}
		sorted := slices.Clone(entries)
		slices.SortStableFunc(sorted, func(a, b Entry) int {
			if c := b.Deleted.Compare(a.Deleted); c != 0 {
				return c
			}
			switch {
			case a.ID < b.ID:
				return -1
			case a.ID > b.ID:
				return 1
			}
			return 0
		})
		out := make([]string, 0, len(sorted)-s.Max)
		for _, e := range sorted[s.Max:] {
			out = append(out, e.ID)
		}
		return out
	default:
		return nil
	}
}
