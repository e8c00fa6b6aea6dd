// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ListView is the API representation of a [List]. Items are present only
// when the list was loaded fully.
type ListView struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Created   time.Time        `json:"created"`
	Updated   *time.Time       `json:"updated,omitempty"`
	Deleted   *time.Time       `json:"deleted,omitempty"`
	Order     int              `json:"order"`
	Sync      bool             `json:"sync"`
	Reset     *ListReset       `json:"reset,omitempty"`
	NextReset *time.Time       `json:"nextReset,omitempty"`
	ItemCount int              `json:"itemCount"`
	Items     []ListitemRecord `json:"items,omitempty"`
}

// NewListView renders l at time now. l is left untouched.
func NewListView(l *List, now time.Time) ListView {
	rec := l.Clone().ToBackend()
	v := ListView{
		ID:        rec.ID,
		Name:      rec.Name,
		Created:   rec.Created,
		Updated:   rec.Updated,
		Deleted:   rec.Deleted,
		Order:     rec.Order,
		Sync:      rec.Sync,
		Reset:     rec.Reset,
		ItemCount: rec.ItemCount,
	}
	if rec.Reset != nil && rec.Reset.Active {
		next := rec.Reset.Next(now)
		v.NextReset = &next
	}
	if items, err := l.Items(); err == nil {
		v.Items = make([]ListitemRecord, 0, len(items))
		for _, item := range items {
			v.Items = append(v.Items, item.Clone().ToBackend())
		}
	}
	return v
}

// NewListViews renders every list of lists.
func NewListViews(lists []*List, now time.Time) []ListView {
	views := make([]ListView, 0, len(lists))
	for _, l := range lists {
		views = append(views, NewListView(l, now))
	}
	return views
}

// NewListitemViews renders items as their records.
func NewListitemViews(items []*Listitem) []ListitemRecord {
	views := make([]ListitemRecord, 0, len(items))
	for _, item := range items {
		views = append(views, item.Clone().ToBackend())
	}
	return views
}

// CreateListRequest is the body of list creation.
type CreateListRequest struct {
	Name string `json:"name"`
}

// UpdateListRequest changes the fields that are present.
type UpdateListRequest struct {
	Name  *string    `json:"name,omitempty"`
	Sync  *bool      `json:"sync,omitempty"`
	Reset *ListReset `json:"reset,omitempty"`
	// ClearReset removes the reset schedule; it wins over Reset.
	ClearReset bool `json:"clearReset,omitempty"`
}

// Apply sets the present fields on l.
func (r UpdateListRequest) Apply(l *List) {
	if r.Name != nil {
		l.SetName(*r.Name)
	}
	if r.Sync != nil {
		l.SetSync(*r.Sync)
	}
	switch {
	case r.ClearReset:
		l.SetReset(nil)
	case r.Reset != nil:
		l.SetReset(r.Reset)
	}
}

// ListitemRequest creates a listitem or changes the fields that are
// present. Item is required on creation.
type ListitemRequest struct {
	Item   *string `json:"item,omitempty"`
	Note   *string `json:"note,omitempty"`
	Hidden *bool   `json:"hidden,omitempty"`
	Locked *bool   `json:"locked,omitempty"`
}

// Apply sets the present fields on item.
func (r ListitemRequest) Apply(item *Listitem) {
	if r.Item != nil {
		item.SetItem(*r.Item)
	}
	if r.Note != nil {
		item.SetNote(*r.Note)
	}
	if r.Hidden != nil {
		item.SetHidden(*r.Hidden)
	}
	if r.Locked != nil {
		item.SetLocked(*r.Locked)
	}
}

// IDsRequest carries the ids of a batch or a reorder.
type IDsRequest struct {
	IDs []string `json:"ids"`
}

// TrashRetentionRequest selects the retention setting by name
// ("unlimited", "day", "week", "month", "last-entries") or number.
type TrashRetentionRequest struct {
	Setting string `json:"setting"`
}

// TrashRetentionResponse reports the stored setting and the strategy it
// resolved to.
type TrashRetentionResponse struct {
	Setting  string `json:"setting"`
	Strategy string `json:"strategy"`
	Days     int    `json:"days,omitempty"`
	Max      int    `json:"max,omitempty"`
}

// SyncListRequest picks the target device; empty means the default one.
type SyncListRequest struct {
	DeviceID string `json:"deviceId,omitempty"`
}

// OperationResponse reports the outcome of a mutating call.
type OperationResponse struct {
	Result    string  `json:"result"`
	Succeeded int     `json:"succeeded,omitempty"`
	Failed    int     `json:"failed,omitempty"`
	Toasts    []Toast `json:"toasts,omitempty"`
}
