// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// now is the clock used by the entity model. Tests replace it.
var now = func() time.Time { return time.Now().UTC() }

// Listitem is a single entry of a [List] with dirty-bit change tracking.
//
// Every setter compares the new value with the current one and only on an
// actual change updates the field, bumps Updated and marks the item dirty.
// The dirty bit is cleared by [Listitem.ToBackend].
type Listitem struct {
	id      string
	listID  string
	order   int
	item    string
	note    string
	created time.Time
	updated time.Time
	hidden  bool
	locked  bool
	deleted *time.Time

	dirty bool
}

// NewListitem creates a new, not yet persisted item. New items are dirty so
// that the first store writes them.
func NewListitem(text string) *Listitem {
	ts := now()
	return &Listitem{
		item:    text,
		created: ts,
		updated: ts,
		dirty:   true,
	}
}

// ListitemFromRecord rebuilds a clean item from its storage record.
func ListitemFromRecord(rec ListitemRecord) *Listitem {
	return &Listitem{
		id:      rec.ID,
		listID:  rec.ListID,
		order:   rec.Order,
		item:    rec.Item,
		note:    rec.Note,
		created: rec.Created,
		updated: timeValue(rec.Updated),
		hidden:  rec.Hidden,
		locked:  rec.Locked,
		deleted: copyTime(rec.Deleted),
	}
}

func (i *Listitem) ID() string             { return i.id }
func (i *Listitem) ListID() string         { return i.listID }
func (i *Listitem) Order() int             { return i.order }
func (i *Listitem) Item() string           { return i.item }
func (i *Listitem) Note() string           { return i.note }
func (i *Listitem) Created() time.Time     { return i.created }
func (i *Listitem) Updated() time.Time     { return i.updated }
func (i *Listitem) Hidden() bool           { return i.hidden }
func (i *Listitem) Locked() bool           { return i.locked }
func (i *Listitem) Deleted() *time.Time    { return copyTime(i.deleted) }
func (i *Listitem) IsDeleted() bool        { return i.deleted != nil }
func (i *Listitem) Dirty() bool            { return i.dirty }
func (i *Listitem) IsVirtual() bool        { return i.id == "" }
func (i *Listitem) Equal(o *Listitem) bool { return o != nil && i.id != "" && i.id == o.id }

func (i *Listitem) SetOrder(v int) {
	if setField(&i.order, v) {
		i.touch()
	}
}

func (i *Listitem) SetItem(v string) {
	if setField(&i.item, v) {
		i.touch()
	}
}

func (i *Listitem) SetNote(v string) {
	if setField(&i.note, v) {
		i.touch()
	}
}

func (i *Listitem) SetHidden(v bool) {
	if setField(&i.hidden, v) {
		i.touch()
	}
}

func (i *Listitem) SetLocked(v bool) {
	if setField(&i.locked, v) {
		i.touch()
	}
}

// SetDeleted sets or clears the deletion timestamp.
func (i *Listitem) SetDeleted(v *time.Time) {
	if sameTime(i.deleted, v) {
		return
	}
	i.deleted = copyTime(v)
	i.touch()
}

// MarkDirty restores the dirty bit, used when a persist attempt failed after
// [Listitem.ToBackend] already cleaned the item.
func (i *Listitem) MarkDirty() { i.dirty = true }

// BindID stores the identifier assigned by the backend on first persist.
// It is not a user-visible change and leaves the dirty bit untouched.
func (i *Listitem) BindID(id string) { i.id = id }

// BindList attaches the item to its parent list.
func (i *Listitem) BindList(listID string) {
	if i.listID != listID {
		i.listID = listID
		i.dirty = true
	}
}

// ToBackend serializes the item into its storage record and clears the
// dirty bit.
func (i *Listitem) ToBackend() ListitemRecord {
	i.dirty = false
	return ListitemRecord{
		ID:      i.id,
		ListID:  i.listID,
		Item:    i.item,
		Note:    i.note,
		Order:   i.order,
		Hidden:  i.hidden,
		Locked:  i.locked,
		Created: i.created,
		Updated: timePtr(i.updated),
		Deleted: copyTime(i.deleted),
	}
}

// Clone returns a deep copy, dirty bit included.
func (i *Listitem) Clone() *Listitem {
	c := *i
	c.deleted = copyTime(i.deleted)
	return &c
}

func (i *Listitem) touch() {
	i.updated = now()
	i.dirty = true
}

func setField[T comparable](field *T, v T) bool {
	if *field == v {
		return false
	}
	*field = v
	return true
}
