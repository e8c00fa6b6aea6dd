// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-list-keeper/internal/app"
	"github.com/MKhiriev/go-list-keeper/models"
)

// ── DeleteList ──────────────────────────────────────────────────────────────

func TestListsService_DeleteList_ToTrashAndRestore(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()

	groceries := h.createList(t, "Groceries", "Milk", "Bread")
	h.createList(t, "Hardware")

	require.Equal(t, ResultSuccess, h.svc.DeleteList(ctx, groceries.ID(), false))

	require.Len(t, h.popup.asked, 1)
	assert.Equal(t, models.Confirmation{Kind: models.ConfirmDeleteList, Subject: "Groceries", Count: 1}, h.popup.asked[0])
	assert.Equal(t, app.MsgListTrashed, h.popup.lastToast(t).Message)

	lists, err := h.svc.GetLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hardware"}, listNames(lists))
	assert.Equal(t, 0, lists[0].Order(), "remaining lists stay contiguous")

	trash, err := h.svc.GetTrash(ctx)
	require.NoError(t, err)
	require.Len(t, trash, 1)
	assert.Equal(t, "Groceries", trash[0].Name())
	require.NotNil(t, trash[0].Deleted())
	assert.Equal(t, h.clock.Now(), *trash[0].Deleted())

	activeBefore := len(lists)
	require.Equal(t, ResultSuccess, h.svc.RestoreListFromTrash(ctx, groceries.ID()))

	lists, err = h.svc.GetLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hardware", "Groceries"}, listNames(lists))
	assert.Equal(t, activeBefore, lists[1].Order())
	assert.Equal(t, 2, lists[1].ItemCount(), "items come back with the list")

	trash, err = h.svc.GetTrash(ctx)
	require.NoError(t, err)
	assert.Empty(t, trash)

	require.NotEmpty(t, h.trashEvents)
	assert.Equal(t, models.ChangeRestored, h.trashEvents[len(h.trashEvents)-1].Action)
}

func TestListsService_DeleteList_Declined(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	list := h.createList(t, "Groceries")
	h.popup.answer = false

	assert.Equal(t, ResultNone, h.svc.DeleteList(ctx, list.ID(), false))

	lists, err := h.svc.GetLists(ctx)
	require.NoError(t, err)
	assert.Len(t, lists, 1)
	assert.Empty(t, h.popup.toasts)
}

func TestListsService_DeleteList_ForceSkipsConfirm(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	list := h.createList(t, "Groceries")
	h.popup.answer = false

	assert.Equal(t, ResultSuccess, h.svc.DeleteList(context.Background(), list.ID(), true))
	assert.Empty(t, h.popup.asked)
}

func TestListsService_DeleteList_ConfirmDisabledByPreference(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	list := h.createList(t, "Groceries")
	h.popup.answer = false
	require.NoError(t, h.prefs.Set(ctx, PrefConfirm(models.ConfirmDeleteList), false))

	assert.Equal(t, ResultSuccess, h.svc.DeleteList(ctx, list.ID(), false))
	assert.Empty(t, h.popup.asked)
}

func TestListsService_DeleteList_TrashDisabledErases(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	list := h.createList(t, "Groceries", "Milk")
	require.NoError(t, h.prefs.Set(ctx, PrefTrashListsEnabled, false))

	require.Equal(t, ResultSuccess, h.svc.DeleteList(ctx, list.ID(), true))
	assert.Equal(t, app.MsgListDeleted, h.popup.lastToast(t).Message)

	trash, err := h.svc.GetTrash(ctx)
	require.NoError(t, err)
	assert.Empty(t, trash)
	assert.Empty(t, h.trashEvents)

	n, err := h.storage.CountListitems(ctx, list.ID(), models.PartitionTrash)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListsService_DeleteList_Unknown(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})

	assert.Equal(t, ResultFailure, h.svc.DeleteList(context.Background(), "missing", true))
	assert.Equal(t, app.MsgListDeleteFailed, h.popup.lastToast(t).Message)
}

func TestListsService_DeleteList_AlreadyTrashed(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	list := h.createList(t, "Groceries")

	require.Equal(t, ResultSuccess, h.svc.DeleteList(ctx, list.ID(), true))
	assert.Equal(t, ResultFailure, h.svc.DeleteList(ctx, list.ID(), true))
}

// ── DeleteLists ─────────────────────────────────────────────────────────────

func TestListsService_DeleteLists_Partial(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	a := h.createList(t, "A")
	b := h.createList(t, "B")
	h.createList(t, "C")

	res := h.svc.DeleteLists(ctx, []string{a.ID(), "missing", b.ID()}, false)

	assert.Equal(t, BatchResult{Succeeded: 2, Failed: 1}, res)
	assert.Equal(t, VariantPartial, res.Variant())
	assert.Equal(t, ResultFailure, res.Result())

	require.Len(t, h.popup.asked, 1)
	assert.Equal(t, 3, h.popup.asked[0].Count)

	toast := h.popup.lastToast(t)
	assert.Equal(t, models.ToastWarning, toast.Level)
	assert.Equal(t, fmt.Sprintf(app.MsgListsDeletePartialf, 1, 3), toast.Message)

	lists, err := h.svc.GetLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, listNames(lists))
	assert.Equal(t, 0, lists[0].Order())

	var deleted []models.ListsChanged
	for _, ev := range h.listsEvents {
		if ev.Action == models.ChangeDeleted {
			deleted = append(deleted, ev)
		}
	}
	require.Len(t, deleted, 1, "one event per batch")
	assert.Equal(t, []string{a.ID(), b.ID()}, deleted[0].IDs)
}

func TestListsService_DeleteLists_AllSucceeded(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	a := h.createList(t, "A")
	b := h.createList(t, "B")

	res := h.svc.DeleteLists(context.Background(), []string{a.ID(), b.ID()}, true)

	assert.Equal(t, VariantAllSucceeded, res.Variant())
	assert.Equal(t, fmt.Sprintf(app.MsgListsDeletedf, 2), h.popup.lastToast(t).Message)
}

func TestListsService_DeleteLists_Empty(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})

	res := h.svc.DeleteLists(context.Background(), nil, false)

	assert.Equal(t, VariantNothing, res.Variant())
	assert.Equal(t, ResultNone, res.Result())
	assert.Empty(t, h.popup.asked)
}

// ── EmptyList / listitems ───────────────────────────────────────────────────

func TestListsService_EmptyList_KeepsLockedItems(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	list := h.createList(t, "Groceries", "Milk", "Bread", "Eggs")

	items, err := list.Items()
	require.NoError(t, err)
	items[1].SetLocked(true)
	require.Equal(t, ResultSuccess, h.svc.StoreList(ctx, list, false))

	require.Equal(t, ResultSuccess, h.svc.EmptyList(ctx, list.ID(), false))
	require.Len(t, h.popup.asked, 1)
	assert.Equal(t, models.ConfirmEmptyList, h.popup.asked[0].Kind)
	assert.Equal(t, 2, h.popup.asked[0].Count)

	stored, err := h.svc.GetList(ctx, list.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"Bread"}, itemTexts(t, stored))
	assert.Equal(t, []int{0}, itemOrders(t, stored))

	trash, err := h.svc.GetListitemsTrash(ctx, list.ID())
	require.NoError(t, err)
	assert.Len(t, trash, 2)

	assert.Equal(t, ResultNone, h.svc.EmptyList(ctx, list.ID(), false), "only locked items left")
}

func TestListsService_DeleteListitem(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	list := h.createList(t, "Groceries", "Milk", "Bread", "Eggs")
	items, err := list.Items()
	require.NoError(t, err)

	require.Equal(t, ResultSuccess, h.svc.DeleteListitem(ctx, list.ID(), items[1].ID(), false))
	assert.Equal(t, "Bread", h.popup.asked[0].Subject)
	assert.Equal(t, app.MsgListitemDeleted, h.popup.lastToast(t).Message)

	stored, err := h.svc.GetList(ctx, list.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"Milk", "Eggs"}, itemTexts(t, stored))
	assert.Equal(t, []int{0, 1}, itemOrders(t, stored))

	last := h.trashEvents[len(h.trashEvents)-1]
	assert.Equal(t, models.TrashChanged{Action: models.ChangeDeleted, ListID: list.ID(), IDs: []string{items[1].ID()}}, last)
}

func TestListsService_DeleteListitem_NotInList(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	list := h.createList(t, "Groceries", "Milk")

	assert.Equal(t, ResultFailure, h.svc.DeleteListitem(context.Background(), list.ID(), "missing", true))
	assert.Equal(t, app.MsgListitemDeleteFailed, h.popup.lastToast(t).Message)
}

func TestListsService_DeleteListitems_Partial(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	list := h.createList(t, "Groceries", "Milk", "Bread", "Eggs")
	items, err := list.Items()
	require.NoError(t, err)

	res := h.svc.DeleteListitems(ctx, list.ID(), []string{items[0].ID(), "missing"}, true)

	assert.Equal(t, BatchResult{Succeeded: 1, Failed: 1}, res)
	assert.Equal(t, fmt.Sprintf(app.MsgListitemsDeletePartialf, 1, 2), h.popup.lastToast(t).Message)

	stored, err := h.svc.GetList(ctx, list.ID())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, itemOrders(t, stored))
}

func TestListsService_DeleteListitems_UnknownList(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})

	res := h.svc.DeleteListitems(context.Background(), "missing", []string{"a", "b"}, true)

	assert.Equal(t, BatchResult{Failed: 2}, res)
	assert.Equal(t, app.MsgListitemsDeleteFailed, h.popup.lastToast(t).Message)
}

func TestListsService_DeleteListitems_TrashDisabled(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	list := h.createList(t, "Groceries", "Milk", "Bread")
	require.NoError(t, h.prefs.Set(ctx, PrefTrashListitemsEnabled, false))
	items, err := list.Items()
	require.NoError(t, err)

	res := h.svc.DeleteListitems(ctx, list.ID(), []string{items[0].ID(), items[1].ID()}, true)
	assert.Equal(t, VariantAllSucceeded, res.Variant())

	trash, err := h.svc.GetListitemsTrash(ctx, list.ID())
	require.NoError(t, err)
	assert.Empty(t, trash)
}

// ── reordering ──────────────────────────────────────────────────────────────

func TestListsService_ReorderLists(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	a := h.createList(t, "A")
	b := h.createList(t, "B")
	c := h.createList(t, "C")

	require.Equal(t, ResultSuccess, h.svc.ReorderLists(ctx, []string{c.ID(), a.ID(), b.ID()}))

	lists, err := h.svc.GetLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, listNames(lists))
	for i, l := range lists {
		assert.Equal(t, i, l.Order())
	}

	last := h.listsEvents[len(h.listsEvents)-1]
	assert.Equal(t, models.ChangeReordered, last.Action)
	assert.ElementsMatch(t, []string{a.ID(), b.ID(), c.ID()}, last.IDs)

	assert.Equal(t, ResultNone, h.svc.ReorderLists(ctx, []string{c.ID(), a.ID(), b.ID()}), "same order changes nothing")
}

func TestListsService_ReorderLists_NotAPermutation(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	a := h.createList(t, "A")
	b := h.createList(t, "B")

	tests := []struct {
		name string
		ids  []string
	}{
		{name: "missing id", ids: []string{a.ID()}},
		{name: "duplicate id", ids: []string{a.ID(), a.ID()}},
		{name: "unknown id", ids: []string{a.ID(), "x"}},
		{name: "extra id", ids: []string{a.ID(), b.ID(), "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, ResultFailure, h.svc.ReorderLists(ctx, tt.ids))
			assert.Equal(t, app.MsgReorderFailed, h.popup.lastToast(t).Message)
		})
	}

	lists, err := h.svc.GetLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, listNames(lists))
}

func TestListsService_ReorderListitems(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	list := h.createList(t, "Groceries", "Milk", "Bread", "Eggs")
	items, err := list.Items()
	require.NoError(t, err)

	res := h.svc.ReorderListitems(ctx, list.ID(), []string{items[2].ID(), items[0].ID(), items[1].ID()})
	require.Equal(t, ResultSuccess, res)

	stored, err := h.svc.GetList(ctx, list.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"Eggs", "Milk", "Bread"}, itemTexts(t, stored))
	assert.Equal(t, []int{0, 1, 2}, itemOrders(t, stored))

	assert.Equal(t, ResultFailure, h.svc.ReorderListitems(ctx, list.ID(), []string{items[0].ID()}))
}

func TestCheckPermutation(t *testing.T) {
	current := []string{"a", "b", "c"}
	at := func(i int) string { return current[i] }

	require.NoError(t, checkPermutation(3, []string{"c", "b", "a"}, at))
	require.ErrorIs(t, checkPermutation(3, []string{"a", "b"}, at), ErrInvalidOrdering)
	require.ErrorIs(t, checkPermutation(3, []string{"a", "b", "b"}, at), ErrInvalidOrdering)
	require.ErrorIs(t, checkPermutation(3, []string{"a", "b", "d"}, at), ErrInvalidOrdering)
	require.NoError(t, checkPermutation(0, nil, at))
}

// ── progress ────────────────────────────────────────────────────────────────

func TestListsService_ProgressIsBalanced(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	a := h.createList(t, "A", "x")
	b := h.createList(t, "B")

	h.svc.DeleteLists(ctx, []string{a.ID(), b.ID()}, true)
	h.clock.Advance(time.Minute)
	h.svc.WipeTrash(ctx, true)

	assert.Zero(t, h.progress.depth)
	assert.Positive(t, h.progress.begun)
}
