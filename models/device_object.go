// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// DeviceProtocolRevision is sent as "rev" with every list payload.
const DeviceProtocolRevision = 3

// device payload keys
const (
	deviceKeyUUID     = "uuid"
	deviceKeyTitle    = "t"
	deviceKeyUpdated  = "d"
	deviceKeyOrder    = "o"
	deviceKeyRevision = "rev"
	deviceKeyCount    = "n"

	deviceKeyResetActive   = "r_active"
	deviceKeyResetInterval = "r_interval"
	deviceKeyResetHour     = "r_hour"
	deviceKeyResetMinute   = "r_minute"
	deviceKeyResetDay      = "r_day"
	deviceKeyResetWeekday  = "r_weekday"
	deviceKeyResetNext     = "r_next"
)

// DeviceField is a single key=value pair of a device payload.
type DeviceField struct {
	Key   string `json:"k"`
	Value string `json:"v"`
}

// DeviceObject is the ordered flat representation of a list sent to the
// wearable.
type DeviceObject []DeviceField

// Get returns the value stored under key.
func (o DeviceObject) Get(key string) (string, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Pairs renders the object as "key=value" strings in order.
func (o DeviceObject) Pairs() []string {
	out := make([]string, 0, len(o))
	for _, f := range o {
		out = append(out, f.Key+"="+f.Value)
	}
	return out
}

func (o *DeviceObject) add(key, value string) {
	*o = append(*o, DeviceField{Key: key, Value: value})
}

// ToDeviceObject serializes the list for the wearable. Hidden and deleted
// items are skipped and the remaining ones are numbered densely from 0 by
// their order, whatever gaps exist in memory. A list without items still
// carries "n=0".
func (l *List) ToDeviceObject() (DeviceObject, error) {
	if l.id == "" {
		return nil, ErrListNotPersisted
	}
	if !l.loaded {
		return nil, ErrItemsNotLoaded
	}

	visible := make([]*Listitem, 0, len(l.items))
	for _, item := range l.items {
		if item.hidden || item.IsDeleted() {
			continue
		}
		visible = append(visible, item)
	}
	slices.SortStableFunc(visible, func(a, b *Listitem) int { return a.order - b.order })

	obj := make(DeviceObject, 0, 6+3*len(visible)+7)
	obj.add(deviceKeyUUID, l.id)
	obj.add(deviceKeyTitle, l.name)
	obj.add(deviceKeyUpdated, strconv.FormatInt(l.updated.Unix(), 10))
	obj.add(deviceKeyOrder, strconv.Itoa(l.order))
	obj.add(deviceKeyRevision, strconv.Itoa(DeviceProtocolRevision))
	obj.add(deviceKeyCount, strconv.Itoa(len(visible)))

	for n, item := range visible {
		prefix := "item" + strconv.Itoa(n) + "_"
		obj.add(prefix+"uuid", item.id)
		obj.add(prefix+"item", item.item)
		if item.note != "" {
			obj.add(prefix+"note", item.note)
		}
	}

	if r := l.reset; r != nil && r.Active {
		obj.add(deviceKeyResetActive, "1")
		obj.add(deviceKeyResetInterval, string(r.Interval))
		obj.add(deviceKeyResetHour, strconv.Itoa(r.Hour))
		obj.add(deviceKeyResetMinute, strconv.Itoa(r.Minute))
		switch r.Interval {
		case ResetMonthly:
			obj.add(deviceKeyResetDay, strconv.Itoa(r.Day))
		case ResetWeekly:
			obj.add(deviceKeyResetWeekday, strconv.Itoa(int(r.Weekday)))
		}
		obj.add(deviceKeyResetNext, strconv.FormatInt(r.Next(now()).Unix(), 10))
	}

	return obj, nil
}

// DeviceItem is an item parsed back from a device payload.
type DeviceItem struct {
	UUID string
	Item string
	Note string
}

// DeviceList is a list parsed back from a device payload.
type DeviceList struct {
	UUID     string
	Title    string
	Updated  time.Time
	Order    int
	Revision int
	Items    []DeviceItem
}

// ParseDeviceObject parses "key=value" pairs echoed by the device.
func ParseDeviceObject(pairs []string) (DeviceList, error) {
	var (
		out   DeviceList
		items = map[int]*DeviceItem{}
		count = -1
	)

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return DeviceList{}, fmt.Errorf("%w: malformed pair %q", ErrInvalidDeviceObject, pair)
		}

		switch key {
		case deviceKeyUUID:
			out.UUID = value
			continue
		case deviceKeyTitle:
			out.Title = value
			continue
		case deviceKeyUpdated, deviceKeyOrder, deviceKeyRevision, deviceKeyCount:
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return DeviceList{}, fmt.Errorf("%w: %s: %w", ErrInvalidDeviceObject, key, err)
			}
			switch key {
			case deviceKeyUpdated:
				out.Updated = time.Unix(n, 0).UTC()
			case deviceKeyOrder:
				out.Order = int(n)
			case deviceKeyRevision:
				out.Revision = int(n)
			default:
				count = int(n)
			}
			continue
		}

		idx, field, ok := parseItemKey(key)
		if !ok {
			// r_* fields and unknown keys are not echoed back into the model
			continue
		}
		item, exists := items[idx]
		if !exists {
			item = &DeviceItem{}
			items[idx] = item
		}
		switch field {
		case "uuid":
			item.UUID = value
		case "item":
			item.Item = value
		case "note":
			item.Note = value
		}
	}

	if out.UUID == "" {
		return DeviceList{}, fmt.Errorf("%w: missing %s", ErrInvalidDeviceObject, deviceKeyUUID)
	}
	if count >= 0 && count != len(items) {
		return DeviceList{}, fmt.Errorf("%w: expected %d items, got %d", ErrInvalidDeviceObject, count, len(items))
	}

	out.Items = make([]DeviceItem, len(items))
	for idx, item := range items {
		if idx < 0 || idx >= len(items) {
			return DeviceList{}, fmt.Errorf("%w: item index %d out of range", ErrInvalidDeviceObject, idx)
		}
		out.Items[idx] = *item
	}
	return out, nil
}

func parseItemKey(key string) (int, string, bool) {
	rest, ok := strings.CutPrefix(key, "item")
	if !ok {
		return 0, "", false
	}
	num, field, ok := strings.Cut(rest, "_")
	if !ok {
		return 0, "", false
	}
	idx, err := strconv.Atoi(num)
	if err != nil {
		return 0, "", false
	}
	return idx, field, true
}
