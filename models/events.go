// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChangeAction names what happened in a change event.
type ChangeAction string

const (
	ChangeCreated   ChangeAction = "created"
	ChangeUpdated   ChangeAction = "updated"
	ChangeDeleted   ChangeAction = "deleted"
	ChangeRestored  ChangeAction = "restored"
	ChangeErased    ChangeAction = "erased"
	ChangeReordered ChangeAction = "reordered"
	ChangeReloaded  ChangeAction = "reloaded"
)

// ListsChanged is emitted once per logical change of the active lists or
// of the items of an active list.
type ListsChanged struct {
	Action ChangeAction `json:"action"`
	IDs    []string     `json:"ids"`
}

// TrashChanged is emitted once per logical change of the trash. ListID is
// set when only the item trash of that list changed.
type TrashChanged struct {
	Action ChangeAction `json:"action"`
	ListID string       `json:"listId,omitempty"`
	IDs    []string     `json:"ids"`
}

// PreferenceChanged is emitted when a preference value is written.
type PreferenceChanged struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
