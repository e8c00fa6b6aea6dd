// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ResetInterval defines how often a list reset repeats on the device.
type ResetInterval string

const (
	ResetDaily   ResetInterval = "daily"
	ResetWeekly  ResetInterval = "weekly"
	ResetMonthly ResetInterval = "monthly"
)

// ListReset is the optional reset schedule of a list. The device performs
// the reset; the backend only stores and transmits the schedule.
type ListReset struct {
	Active   bool          `json:"active"`
	Interval ResetInterval `json:"interval"`
	Hour     int           `json:"hour"`
	Minute   int           `json:"minute"`
	// Day is the day of month (1-31) used by monthly resets. Months shorter
	// than Day reset on their last day.
	Day int `json:"day"`
	// Weekday is used by weekly resets, 0 is Sunday.
	Weekday time.Weekday `json:"weekday"`
}

// Next returns the first reset moment strictly after the given time, in the
// location of after. Inactive schedules return the zero time.
func (r ListReset) Next(after time.Time) time.Time {
	if !r.Active {
		return time.Time{}
	}

	loc := after.Location()
	y, m, d := after.Date()

	switch r.Interval {
	case ResetWeekly:
		candidate := time.Date(y, m, d, r.Hour, r.Minute, 0, 0, loc)
		shift := (int(r.Weekday) - int(candidate.Weekday()) + 7) % 7
		candidate = candidate.AddDate(0, 0, shift)
		if !candidate.After(after) {
			candidate = candidate.AddDate(0, 0, 7)
		}
		return candidate
	case ResetMonthly:
		candidate := monthlyReset(y, m, r.Day, r.Hour, r.Minute, loc)
		if !candidate.After(after) {
			candidate = monthlyReset(y, m+1, r.Day, r.Hour, r.Minute, loc)
		}
		return candidate
	default:
		candidate := time.Date(y, m, d, r.Hour, r.Minute, 0, 0, loc)
		if !candidate.After(after) {
			candidate = candidate.AddDate(0, 0, 1)
		}
		return candidate
	}
}

func monthlyReset(y int, m time.Month, day, hour, minute int, loc *time.Location) time.Time {
	// day 0 of the following month is the last day of m
	last := time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()
	if day < 1 {
		day = 1
	}
	if day > last {
		day = last
	}
	return time.Date(y, m, day, hour, minute, 0, 0, loc)
}

// Equal reports whether both schedules are identical. Two nil schedules are
// equal.
func (r *ListReset) Equal(other *ListReset) bool {
	if r == nil || other == nil {
		return r == nil && other == nil
	}
	return *r == *other
}

func (r *ListReset) clone() *ListReset {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// Value implements driver.Valuer; the schedule is stored as JSON text.
func (r ListReset) Value() (driver.Value, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode list reset: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (r *ListReset) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*r = ListReset{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("scan list reset: unsupported type %T", src)
	}

	if err := json.Unmarshal(raw, r); err != nil {
		return fmt.Errorf("decode list reset: %w", err)
	}
	return nil
}
