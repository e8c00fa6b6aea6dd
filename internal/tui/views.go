// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-list-keeper/internal/retention"
	"github.com/MKhiriev/go-list-keeper/models"
)

const (
	timeLayout   = "2006-01-02 15:04"
	maxNameWidth = 40
)

// Lists renders the active lists overview.
func Lists(lists []*models.List) string {
	rows := make([][]string, 0, len(lists))
	for i, l := range lists {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			l.ID(),
			fitText(l.Name(), maxNameWidth),
			strconv.Itoa(l.ItemCount()),
			l.Updated().Local().Format(timeLayout),
		})
	}
	if len(rows) == 0 {
		return renderPage("LISTS", "")
	}
	return renderPage("LISTS", renderTable([]string{"#", "ID", "Name", "Items", "Updated"}, rows))
}

// List renders one list with its items. now is used for the next reset.
func List(list *models.List, now time.Time) string {
	var b strings.Builder

	b.WriteString("ID:      " + list.ID() + "\n")
	b.WriteString("Updated: " + list.Updated().Local().Format(timeLayout) + "\n")
	if list.Sync() {
		b.WriteString("Sync:    on\n")
	}
	if r := list.Reset(); r != nil && r.Active {
		b.WriteString("Reset:   " + string(r.Interval) + ", next " + r.Next(now).Local().Format(timeLayout) + "\n")
	}

	items, err := list.Items()
	if err == nil && len(items) > 0 {
		rows := make([][]string, 0, len(items))
		for i, item := range items {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				item.ID(),
				fitText(item.Item(), maxNameWidth),
				valueOrDash(fitText(item.Note(), maxNameWidth)),
				flags(item),
			})
		}
		b.WriteString("\n")
		b.WriteString(renderTable([]string{"#", "ID", "Item", "Note", "Flags"}, rows))
	}

	return renderPage(strings.ToUpper(list.Name()), strings.TrimRight(b.String(), "\n"))
}

// Trash renders the trashed lists, most recently deleted first.
func Trash(lists []*models.List) string {
	rows := make([][]string, 0, len(lists))
	for _, l := range lists {
		rows = append(rows, []string{
			l.ID(),
			fitText(l.Name(), maxNameWidth),
			strconv.Itoa(l.ItemCount()),
			deletedAt(l.Deleted()),
		})
	}
	if len(rows) == 0 {
		return renderPage("TRASH", "")
	}
	return renderPage("TRASH", renderTable([]string{"ID", "Name", "Items", "Deleted"}, rows))
}

// ListitemsTrash renders the trashed items of one list.
func ListitemsTrash(listName string, items []*models.Listitem) string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.ID(),
			fitText(item.Item(), maxNameWidth),
			deletedAt(item.Deleted()),
		})
	}
	title := "TRASH: " + strings.ToUpper(listName)
	if len(rows) == 0 {
		return renderPage(title, "")
	}
	return renderPage(title, renderTable([]string{"ID", "Item", "Deleted"}, rows))
}

// Devices renders the paired device registry.
func Devices(devices []models.Device) string {
	rows := make([][]string, 0, len(devices))
	for _, d := range devices {
		rows = append(rows, []string{d.ID, valueOrDash(d.Name), string(d.State)})
	}
	if len(rows) == 0 {
		return renderPage("DEVICES", "")
	}
	return renderPage("DEVICES", renderTable([]string{"ID", "Name", "State"}, rows))
}

// Retention renders the trash retention setting and the strategy it
// resolves to.
func Retention(setting models.KeepInTrash, strategy retention.Strategy) string {
	detail := "entries are kept until erased"
	switch {
	case strategy.Timed():
		detail = "entries older than " + strconv.Itoa(strategy.Days) + " days are erased"
	case strategy.Capped():
		detail = "only the last " + strconv.Itoa(strategy.Max) + " entries are kept"
	}
	return renderPage("TRASH RETENTION", "Setting: "+setting.String()+"\n"+"Policy:  "+detail)
}

func flags(item *models.Listitem) string {
	var f []string
	if item.Locked() {
		f = append(f, "locked")
	}
	if item.Hidden() {
		f = append(f, "hidden")
	}
	return valueOrDash(strings.Join(f, ","))
}

func deletedAt(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format(timeLayout)
}
