// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"slices"
	"time"
)

// ListState tags how much of a [List] is known in memory.
type ListState int

const (
	// ListStateUnsaved is a list that has no backend identifier yet. Its item
	// collection is always available.
	ListStateUnsaved ListState = iota
	// ListStatePeek is a stored list loaded with its item count only.
	ListStatePeek
	// ListStateFull is a stored list with its full item collection loaded.
	ListStateFull
)

// String implements fmt.Stringer.
func (s ListState) String() string {
	switch s {
	case ListStatePeek:
		return "peek"
	case ListStateFull:
		return "full"
	default:
		return "unsaved"
	}
}

// List is a named, ordered collection of [Listitem] with dirty-bit change
// tracking.
//
// A list is dirty when one of its own fields changed since the last
// [List.ToBackend] or when any contained item is dirty. Setters only mark
// the list dirty (and bump Updated) when the value actually changes.
//
// Item access on a list in [ListStatePeek] fails with [ErrItemsNotLoaded];
// load the list fully first.
type List struct {
	id      string
	name    string
	created time.Time
	updated time.Time
	order   int
	deleted *time.Time
	reset   *ListReset
	sync    bool

	loaded    bool
	items     []*Listitem
	itemCount int

	dirty bool
}

// NewList creates an unsaved list with an empty item collection.
func NewList(name string) *List {
	ts := now()
	return &List{
		name:    name,
		created: ts,
		updated: ts,
		loaded:  true,
		items:   make([]*Listitem, 0),
		dirty:   true,
	}
}

// ListFromRecord rebuilds a clean list in peek state from its storage record.
func ListFromRecord(rec ListRecord) *List {
	return &List{
		id:        rec.ID,
		name:      rec.Name,
		created:   rec.Created,
		updated:   timeValue(rec.Updated),
		order:     rec.Order,
		deleted:   copyTime(rec.Deleted),
		reset:     rec.Reset.clone(),
		sync:      rec.Sync,
		itemCount: rec.ItemCount,
	}
}

// State reports whether the list is unsaved, peeked or fully loaded.
func (l *List) State() ListState {
	switch {
	case l.id == "":
		return ListStateUnsaved
	case l.loaded:
		return ListStateFull
	default:
		return ListStatePeek
	}
}

func (l *List) ID() string          { return l.id }
func (l *List) Name() string        { return l.name }
func (l *List) Created() time.Time  { return l.created }
func (l *List) Updated() time.Time  { return l.updated }
func (l *List) Order() int          { return l.order }
func (l *List) Deleted() *time.Time { return copyTime(l.deleted) }
func (l *List) IsDeleted() bool     { return l.deleted != nil }
func (l *List) Reset() *ListReset   { return l.reset.clone() }
func (l *List) Sync() bool          { return l.sync }
func (l *List) IsVirtual() bool     { return l.id == "" }

// Equal compares lists by identifier. Unsaved lists are never equal to
// anything.
func (l *List) Equal(o *List) bool {
	return o != nil && l.id != "" && l.id == o.id
}

// ItemCount returns the number of active items. It is valid in every state.
func (l *List) ItemCount() int {
	if !l.loaded {
		return l.itemCount
	}
	n := 0
	for _, item := range l.items {
		if !item.IsDeleted() {
			n++
		}
	}
	return n
}

// Items returns the item collection sorted by order.
func (l *List) Items() ([]*Listitem, error) {
	if !l.loaded {
		return nil, ErrItemsNotLoaded
	}
	return slices.Clone(l.items), nil
}

// Item returns the contained item with the given identifier.
func (l *List) Item(id string) (*Listitem, error) {
	if !l.loaded {
		return nil, ErrItemsNotLoaded
	}
	for _, item := range l.items {
		if item.id == id {
			return item, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrListitemNotFound, id)
}

// LoadItems replaces the item collection and moves the list to
// [ListStateFull].
func (l *List) LoadItems(items []*Listitem) {
	l.items = slices.Clone(items)
	if l.items == nil {
		l.items = make([]*Listitem, 0)
	}
	l.sortItems()
	l.loaded = true
	l.itemCount = l.ItemCount()
}

// AddItem appends item at the end of the active ordering.
func (l *List) AddItem(item *Listitem) error {
	if !l.loaded {
		return ErrItemsNotLoaded
	}
	item.BindList(l.id)
	item.SetOrder(l.ItemCount())
	l.items = append(l.items, item)
	l.itemCount = l.ItemCount()
	return nil
}

// PutItem replaces the item with the same identifier or appends it, keeping
// the collection sorted by order. It is a no-op on a list in peek state.
func (l *List) PutItem(item *Listitem) {
	if !l.loaded {
		return
	}
	idx := slices.IndexFunc(l.items, func(i *Listitem) bool { return i.id != "" && i.id == item.id })
	if idx < 0 {
		l.items = append(l.items, item)
	} else {
		l.items[idx] = item
	}
	l.sortItems()
	l.itemCount = l.ItemCount()
}

// RemoveItem drops the item from the in-memory collection. It reports
// whether the item was present.
func (l *List) RemoveItem(id string) bool {
	if !l.loaded {
		return false
	}
	idx := slices.IndexFunc(l.items, func(i *Listitem) bool { return i.id == id })
	if idx < 0 {
		return false
	}
	l.items = slices.Delete(l.items, idx, idx+1)
	l.itemCount = l.ItemCount()
	return true
}

func (l *List) SetName(v string) {
	if setField(&l.name, v) {
		l.touch()
	}
}

func (l *List) SetOrder(v int) {
	if setField(&l.order, v) {
		l.touch()
	}
}

func (l *List) SetSync(v bool) {
	if setField(&l.sync, v) {
		l.touch()
	}
}

// SetReset sets or clears the reset schedule.
func (l *List) SetReset(v *ListReset) {
	if l.reset.Equal(v) {
		return
	}
	l.reset = v.clone()
	l.touch()
}

// SetDeleted sets or clears the deletion timestamp.
func (l *List) SetDeleted(v *time.Time) {
	if sameTime(l.deleted, v) {
		return
	}
	l.deleted = copyTime(v)
	l.touch()
}

// Dirty reports whether the list or any of its items has unpersisted
// changes.
func (l *List) Dirty() bool {
	if l.dirty {
		return true
	}
	for _, item := range l.items {
		if item.dirty {
			return true
		}
	}
	return false
}

// FieldsDirty reports whether the list's own fields changed, ignoring its
// items.
func (l *List) FieldsDirty() bool { return l.dirty }

// MarkDirty restores the dirty bit after a failed persist.
func (l *List) MarkDirty() { l.dirty = true }

// BindID stores the backend-assigned identifier and propagates it to the
// contained items.
func (l *List) BindID(id string) {
	l.id = id
	for _, item := range l.items {
		item.BindList(id)
	}
}

// ToBackend serializes the list's own fields into a storage record and
// clears the list's own dirty bit. Items are serialized separately with
// [Listitem.ToBackend].
func (l *List) ToBackend() ListRecord {
	l.dirty = false
	return ListRecord{
		ID:        l.id,
		Name:      l.name,
		Created:   l.created,
		Updated:   timePtr(l.updated),
		Deleted:   copyTime(l.deleted),
		Order:     l.order,
		Sync:      l.sync,
		Reset:     l.reset.clone(),
		ItemCount: l.ItemCount(),
	}
}

// Clone returns a deep copy including items and dirty bits.
func (l *List) Clone() *List {
	c := *l
	c.deleted = copyTime(l.deleted)
	c.reset = l.reset.clone()
	if l.items != nil {
		c.items = make([]*Listitem, 0, len(l.items))
		for _, item := range l.items {
			c.items = append(c.items, item.Clone())
		}
	}
	return &c
}

// CopyFrom overwrites the receiver's state with src while keeping the
// receiver's identity, so existing references observe the new values. A
// peek src drops the receiver's items, so the receiver becomes a peek too.
func (l *List) CopyFrom(src *List) {
	l.id = src.id
	l.name = src.name
	l.created = src.created
	l.updated = src.updated
	l.order = src.order
	l.deleted = copyTime(src.deleted)
	l.reset = src.reset.clone()
	l.sync = src.sync
	l.dirty = src.dirty
	l.itemCount = src.ItemCount()
	if src.loaded {
		l.items = make([]*Listitem, 0, len(src.items))
		for _, item := range src.items {
			l.items = append(l.items, item.Clone())
		}
		l.loaded = true
		return
	}
	l.items = nil
	l.loaded = false
}

func (l *List) touch() {
	l.updated = now()
	l.dirty = true
}

func (l *List) sortItems() {
	slices.SortStableFunc(l.items, func(a, b *Listitem) int {
		return a.order - b.order
	})
}
