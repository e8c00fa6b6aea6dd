// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ListRecord is the backend-agnostic storage shape of a [List].
type ListRecord struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Created time.Time  `json:"created"`
	Updated *time.Time `json:"updated,omitempty"`
	Deleted *time.Time `json:"deleted,omitempty"`
	Order   int        `json:"order"`
	Sync    bool       `json:"sync,omitempty"`
	Reset   *ListReset `json:"reset,omitempty"`

	// ItemCount is peek data filled by list queries; it is never written.
	ItemCount int `json:"-"`
}

// ListitemRecord is the backend-agnostic storage shape of a [Listitem].
type ListitemRecord struct {
	ID      string     `json:"id"`
	ListID  string     `json:"listId"`
	Item    string     `json:"item"`
	Note    string     `json:"note,omitempty"`
	Order   int        `json:"order"`
	Hidden  bool       `json:"hidden,omitempty"`
	Locked  bool       `json:"locked,omitempty"`
	Created time.Time  `json:"created"`
	Updated *time.Time `json:"updated,omitempty"`
	Deleted *time.Time `json:"deleted,omitempty"`
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
