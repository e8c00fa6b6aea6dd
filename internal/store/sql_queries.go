// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-list-keeper/models"
)

const (
	listsTable       = "lists"
	listitemsTable   = "listitems"
	preferencesTable = "preferences"
)

var listColumns = []string{
	"id", "name", "created", "updated", "deleted", "order_index", "sync", "reset",
}

var listitemColumns = []string{
	"id", "list_id", "item", "note", "order_index", "hidden", "locked", "created", "updated", "deleted",
}

// itemCountColumn counts the items that belong to the list's own partition:
// active items for an active list, items trashed together with it for a
// trashed one.
const itemCountColumn = `(SELECT COUNT(*) FROM listitems li
	WHERE li.list_id = lists.id
	AND (li.deleted IS NULL OR li.deleted = lists.deleted)) AS item_count`

const (
	upsertListSuffix = `ON CONFLICT (id) DO UPDATE SET
	name = excluded.name,
	updated = excluded.updated,
	deleted = excluded.deleted,
	order_index = excluded.order_index,
	sync = excluded.sync,
	reset = excluded.reset`

	upsertListitemSuffix = `ON CONFLICT (id) DO UPDATE SET
	list_id = excluded.list_id,
	item = excluded.item,
	note = excluded.note,
	order_index = excluded.order_index,
	hidden = excluded.hidden,
	locked = excluded.locked,
	updated = excluded.updated,
	deleted = excluded.deleted`

	upsertPreferenceSuffix = `ON CONFLICT (key) DO UPDATE SET
	value = excluded.value,
	updated = excluded.updated`
)

var orderColumns = map[models.OrderField]string{
	models.OrderByCreated: "created",
	models.OrderByUpdated: "updated",
	models.OrderByDeleted: "deleted",
	models.OrderByOrder:   "order_index",
}

func partitionCond(p models.Partition) sq.Sqlizer {
	if p == models.PartitionTrash {
		return sq.NotEq{"deleted": nil}
	}
	return sq.Eq{"deleted": nil}
}

// orderBy renders the ordering with "id" as a stable tie breaker. Unknown
// fields fall back to the explicit order index.
func orderBy(o models.Ordering) []string {
	col, ok := orderColumns[o.Field]
	if !ok {
		col = orderColumns[models.OrderByOrder]
	}
	dir := "ASC"
	if o.Desc {
		dir = "DESC"
	}
	return []string{col + " " + dir, "id " + dir}
}

func buildQuery(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectLists(b sq.StatementBuilderType, partition models.Partition, ordering models.Ordering) (string, []any, error) {
	return buildQuery(b.Select(append(listColumns, itemCountColumn)...).
		From(listsTable).
		Where(partitionCond(partition)).
		OrderBy(orderBy(ordering)...))
}

func buildGetList(b sq.StatementBuilderType, id string) (string, []any, error) {
	return buildQuery(b.Select(append(listColumns, itemCountColumn)...).
		From(listsTable).
		Where(sq.Eq{"id": id}))
}

func buildUpsertList(b sq.StatementBuilderType, rec models.ListRecord) (string, []any, error) {
	return buildQuery(b.Insert(listsTable).
		Columns(listColumns...).
		Values(rec.ID, rec.Name, rec.Created, rec.Updated, rec.Deleted, rec.Order, rec.Sync, resetValue(rec.Reset)).
		Suffix(upsertListSuffix))
}

func buildSelectListitems(b sq.StatementBuilderType, listID string, partition models.Partition, ordering models.Ordering) (string, []any, error) {
	return buildQuery(b.Select(listitemColumns...).
		From(listitemsTable).
		Where(sq.Eq{"list_id": listID}).
		Where(partitionCond(partition)).
		OrderBy(orderBy(ordering)...))
}

func buildGetListitem(b sq.StatementBuilderType, listID, id string) (string, []any, error) {
	return buildQuery(b.Select(listitemColumns...).
		From(listitemsTable).
		Where(sq.Eq{"list_id": listID}).
		Where(sq.Eq{"id": id}))
}

func buildUpsertListitem(b sq.StatementBuilderType, rec models.ListitemRecord) (string, []any, error) {
	return buildQuery(b.Insert(listitemsTable).
		Columns(listitemColumns...).
		Values(rec.ID, rec.ListID, rec.Item, rec.Note, rec.Order, rec.Hidden, rec.Locked, rec.Created, rec.Updated, rec.Deleted).
		Suffix(upsertListitemSuffix))
}

func buildSoftDeleteList(b sq.StatementBuilderType, id string, at time.Time) (string, []any, error) {
	return buildQuery(b.Update(listsTable).
		Set("deleted", at).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"deleted": nil}))
}

func buildSoftDeleteListitems(b sq.StatementBuilderType, listID string, ids []string, at time.Time) (string, []any, error) {
	q := b.Update(listitemsTable).
		Set("deleted", at).
		Where(sq.Eq{"list_id": listID})
	if ids != nil {
		q = q.Where(sq.Eq{"id": ids})
	}
	return buildQuery(q.Where(sq.Eq{"deleted": nil}))
}

// buildRestoreListitemsTrashedWith restores the items that were trashed
// together with the list, leaving items trashed earlier in place.
func buildRestoreListitemsTrashedWith(b sq.StatementBuilderType, listID string) (string, []any, error) {
	return buildQuery(b.Update(listitemsTable).
		Set("deleted", nil).
		Where(sq.Eq{"list_id": listID}).
		Where("deleted = (SELECT l.deleted FROM lists l WHERE l.id = ?)", listID))
}

func buildRestoreList(b sq.StatementBuilderType, id string, order int) (string, []any, error) {
	return buildQuery(b.Update(listsTable).
		Set("deleted", nil).
		Set("order_index", order).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"deleted": nil}))
}

func buildRestoreListitem(b sq.StatementBuilderType, listID, id string, order int) (string, []any, error) {
	return buildQuery(b.Update(listitemsTable).
		Set("deleted", nil).
		Set("order_index", order).
		Where(sq.Eq{"list_id": listID}).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"deleted": nil}))
}

func buildDeleteListitems(b sq.StatementBuilderType, listID string, ids []string) (string, []any, error) {
	q := b.Delete(listitemsTable).Where(sq.Eq{"list_id": listID})
	if ids != nil {
		q = q.Where(sq.Eq{"id": ids})
	}
	return buildQuery(q)
}

func buildDeleteList(b sq.StatementBuilderType, id string) (string, []any, error) {
	return buildQuery(b.Delete(listsTable).Where(sq.Eq{"id": id}))
}

func buildCountLists(b sq.StatementBuilderType, partition models.Partition) (string, []any, error) {
	return buildQuery(b.Select("COUNT(*)").
		From(listsTable).
		Where(partitionCond(partition)))
}

func buildCountListitems(b sq.StatementBuilderType, listID string, partition models.Partition) (string, []any, error) {
	return buildQuery(b.Select("COUNT(*)").
		From(listitemsTable).
		Where(sq.Eq{"list_id": listID}).
		Where(partitionCond(partition)))
}

func buildGetPreference(b sq.StatementBuilderType, key string) (string, []any, error) {
	return buildQuery(b.Select("value").
		From(preferencesTable).
		Where(sq.Eq{"key": key}))
}

func buildSetPreference(b sq.StatementBuilderType, key, value string, at time.Time) (string, []any, error) {
	return buildQuery(b.Insert(preferencesTable).
		Columns("key", "value", "updated").
		Values(key, value, at).
		Suffix(upsertPreferenceSuffix))
}

func resetValue(r *models.ListReset) any {
	if r == nil {
		return nil
	}
	return *r
}
