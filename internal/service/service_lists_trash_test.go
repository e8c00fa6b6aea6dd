// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-list-keeper/internal/app"
	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/mock"
	"github.com/MKhiriev/go-list-keeper/internal/retention"
	"github.com/MKhiriev/go-list-keeper/internal/store"
	"github.com/MKhiriev/go-list-keeper/internal/utils"
	"github.com/MKhiriev/go-list-keeper/models"
)

// trashLists creates and trashes one list per name, a minute apart.
func (h *listsHarness) trashLists(t *testing.T, names ...string) []string {
	t.Helper()
	ids := make([]string, 0, len(names))
	for _, name := range names {
		list := h.createList(t, name)
		h.clock.Advance(time.Minute)
		require.Equal(t, ResultSuccess, h.svc.DeleteList(context.Background(), list.ID(), true))
		ids = append(ids, list.ID())
	}
	return ids
}

func trashNames(t *testing.T, h *listsHarness) []string {
	t.Helper()
	trash, err := h.svc.GetTrash(context.Background())
	require.NoError(t, err)
	return listNames(trash)
}

// ── list trash ──────────────────────────────────────────────────────────────

func TestListsService_GetTrash_MostRecentFirst(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	h.trashLists(t, "A", "B", "C")

	assert.Equal(t, []string{"C", "B", "A"}, trashNames(t, h))
}

func TestListsService_RestoreListFromTrash_NotInTrash(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	list := h.createList(t, "Groceries")

	assert.Equal(t, ResultFailure, h.svc.RestoreListFromTrash(context.Background(), list.ID()))
	assert.Equal(t, app.MsgListRestoreFailed, h.popup.lastToast(t).Message)
}

func TestListsService_EraseListFromTrash(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	ids := h.trashLists(t, "A", "B")

	require.Equal(t, ResultSuccess, h.svc.EraseListFromTrash(ctx, ids[0], false))
	assert.Equal(t, models.ConfirmEraseList, h.popup.asked[0].Kind)
	assert.Equal(t, "A", h.popup.asked[0].Subject)
	assert.Equal(t, []string{"B"}, trashNames(t, h))

	last := h.trashEvents[len(h.trashEvents)-1]
	assert.Equal(t, models.TrashChanged{Action: models.ChangeErased, IDs: []string{ids[0]}}, last)

	assert.Equal(t, ResultFailure, h.svc.EraseListFromTrash(ctx, ids[0], true), "already erased")
}

func TestListsService_EraseListFromTrash_ActiveList(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	list := h.createList(t, "Groceries")

	assert.Equal(t, ResultFailure, h.svc.EraseListFromTrash(context.Background(), list.ID(), true))

	lists, err := h.svc.GetLists(context.Background())
	require.NoError(t, err)
	assert.Len(t, lists, 1)
}

func TestListsService_WipeTrash(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	h.trashLists(t, "A", "B", "C")
	h.createList(t, "Active")

	res := h.svc.WipeTrash(ctx, false)

	assert.Equal(t, BatchResult{Succeeded: 3}, res)
	require.Len(t, h.popup.asked, 1)
	assert.Equal(t, models.Confirmation{Kind: models.ConfirmWipeTrash, Count: 3}, h.popup.asked[0])
	assert.Equal(t, fmt.Sprintf(app.MsgTrashWipedf, 3), h.popup.lastToast(t).Message)
	assert.Empty(t, trashNames(t, h))

	lists, err := h.svc.GetLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Active"}, listNames(lists))

	assert.Equal(t, BatchResult{}, h.svc.WipeTrash(ctx, false), "empty trash")
}

func TestListsService_WipeTrash_Declined(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	h.trashLists(t, "A")
	h.popup.answer = false

	res := h.svc.WipeTrash(context.Background(), false)

	assert.Equal(t, ResultNone, res.Result())
	assert.Equal(t, []string{"A"}, trashNames(t, h))
}

func TestListsService_WipeTrash_QueryFailureCountsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock.NewMockListStorage(ctrl)
	fs, err := store.NewFileStorage(store.InMemoryPath, utils.NewUUIDGenerator())
	require.NoError(t, err)
	popup := &fakePopup{answer: true}
	svc := NewListsService(storage, NewPreferencesService(fs), nil, ListsOptions{Popup: popup}, logger.Nop())

	storage.EXPECT().
		QueryLists(gomock.Any(), models.PartitionTrash, models.TrashOrdering).
		Return(nil, errors.New("db down"))

	res := svc.WipeTrash(context.Background(), true)

	assert.Equal(t, BatchResult{Failed: 1}, res)
	assert.Equal(t, VariantAllFailed, res.Variant())
	assert.Equal(t, app.MsgTrashWipeFailed, popup.lastToast(t).Message)
}

func TestListsService_WipeTrash_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock.NewMockListStorage(ctrl)
	fs, err := store.NewFileStorage(store.InMemoryPath, utils.NewUUIDGenerator())
	require.NoError(t, err)
	popup := &fakePopup{answer: true}
	svc := NewListsService(storage, NewPreferencesService(fs), nil, ListsOptions{Popup: popup}, logger.Nop())

	storage.EXPECT().
		QueryLists(gomock.Any(), models.PartitionTrash, models.TrashOrdering).
		Return([]models.ListRecord{{ID: "a"}, {ID: "b"}}, nil)
	storage.EXPECT().HardDeleteList(gomock.Any(), "a").Return(nil)
	storage.EXPECT().HardDeleteList(gomock.Any(), "b").Return(errors.New("locked"))

	res := svc.WipeTrash(context.Background(), true)

	assert.Equal(t, BatchResult{Succeeded: 1, Failed: 1}, res)
	assert.Equal(t, fmt.Sprintf(app.MsgTrashWipePartialf, 1, 2), popup.lastToast(t).Message)
}

// ── listitem trash ──────────────────────────────────────────────────────────

func TestListsService_ListitemTrash_RestoreAppends(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	list := h.createList(t, "Groceries", "Milk", "Bread", "Eggs")
	items, err := list.Items()
	require.NoError(t, err)

	require.Equal(t, ResultSuccess, h.svc.DeleteListitem(ctx, list.ID(), items[0].ID(), true))

	trash, err := h.svc.GetListitemsTrash(ctx, list.ID())
	require.NoError(t, err)
	require.Len(t, trash, 1)
	assert.Equal(t, "Milk", trash[0].Item())

	require.Equal(t, ResultSuccess, h.svc.RestoreListitemFromTrash(ctx, list.ID(), items[0].ID()))
	assert.Equal(t, app.MsgListitemRestored, h.popup.lastToast(t).Message)

	stored, err := h.svc.GetList(ctx, list.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"Bread", "Eggs", "Milk"}, itemTexts(t, stored))
	assert.Equal(t, []int{0, 1, 2}, itemOrders(t, stored))
}

func TestListsService_RestoreListitemFromTrash_ListInTrash(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	list := h.createList(t, "Groceries", "Milk", "Bread")
	items, err := list.Items()
	require.NoError(t, err)

	require.Equal(t, ResultSuccess, h.svc.DeleteListitem(ctx, list.ID(), items[0].ID(), true))
	require.Equal(t, ResultSuccess, h.svc.DeleteList(ctx, list.ID(), true))

	assert.Equal(t, ResultFailure, h.svc.RestoreListitemFromTrash(ctx, list.ID(), items[0].ID()))
	assert.Equal(t, app.MsgListitemRestoreFail, h.popup.lastToast(t).Message)
}

func TestListsService_EraseListitemFromTrash(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	list := h.createList(t, "Groceries", "Milk", "Bread")
	items, err := list.Items()
	require.NoError(t, err)

	assert.Equal(t, ResultFailure, h.svc.EraseListitemFromTrash(ctx, list.ID(), items[0].ID(), true), "active item")

	require.Equal(t, ResultSuccess, h.svc.DeleteListitem(ctx, list.ID(), items[0].ID(), true))
	require.Equal(t, ResultSuccess, h.svc.EraseListitemFromTrash(ctx, list.ID(), items[0].ID(), false))
	assert.Equal(t, models.Confirmation{Kind: models.ConfirmEraseListitem, Subject: "Milk", Count: 1}, h.popup.asked[len(h.popup.asked)-1])

	trash, err := h.svc.GetListitemsTrash(ctx, list.ID())
	require.NoError(t, err)
	assert.Empty(t, trash)
}

func TestListsService_WipeListitemsTrash(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	list := h.createList(t, "Groceries", "Milk", "Bread", "Eggs")

	require.Equal(t, ResultSuccess, h.svc.EmptyList(ctx, list.ID(), true))

	res := h.svc.WipeListitemsTrash(ctx, list.ID(), false)
	assert.Equal(t, BatchResult{Succeeded: 3}, res)
	assert.Equal(t, models.ConfirmWipeItemsTrash, h.popup.asked[len(h.popup.asked)-1].Kind)

	trash, err := h.svc.GetListitemsTrash(ctx, list.ID())
	require.NoError(t, err)
	assert.Empty(t, trash)
}

// ── retention ───────────────────────────────────────────────────────────────

func TestListsService_Retention_KeepLastEntries(t *testing.T) {
	h := newListsHarness(t, ListsOptions{MaxTrashEntries: 2})
	ctx := context.Background()

	require.NoError(t, h.svc.SetTrashRetention(ctx, models.KeepLastEntries))
	setting, strategy := h.svc.TrashRetention(ctx)
	assert.Equal(t, models.KeepLastEntries, setting)
	assert.Equal(t, retention.Strategy{Kind: retention.KindCount, Max: 2}, strategy)

	h.trashLists(t, "A", "B", "C")

	assert.Equal(t, []string{"C", "B"}, trashNames(t, h))
}

func TestListsService_Retention_CapCountsListitemTrashPerList(t *testing.T) {
	h := newListsHarness(t, ListsOptions{MaxTrashEntries: 1})
	ctx := context.Background()
	require.NoError(t, h.svc.SetTrashRetention(ctx, models.KeepLastEntries))

	list := h.createList(t, "Groceries", "Milk", "Bread")
	items, err := list.Items()
	require.NoError(t, err)

	require.Equal(t, ResultSuccess, h.svc.DeleteListitem(ctx, list.ID(), items[0].ID(), true))
	h.clock.Advance(time.Minute)
	require.Equal(t, ResultSuccess, h.svc.DeleteListitem(ctx, list.ID(), items[1].ID(), true))

	trash, err := h.svc.GetListitemsTrash(ctx, list.ID())
	require.NoError(t, err)
	require.Len(t, trash, 1)
	assert.Equal(t, "Bread", trash[0].Item())
}

func TestListsService_Retention_AgeIsIdempotent(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()

	h.trashLists(t, "Old")
	h.clock.Advance(3 * 24 * time.Hour)
	h.trashLists(t, "Fresh")

	require.NoError(t, h.prefs.Set(ctx, PrefTrashKeep, int(models.KeepDay)))
	// the preference change already applied the new strategy
	assert.Equal(t, []string{"Fresh"}, trashNames(t, h))

	n, err := h.svc.ApplyTrashRetention(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "second pass erases nothing")
}

func TestListsService_Retention_AgeCountsErased(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	require.NoError(t, h.svc.SetTrashRetention(ctx, models.KeepWeek))

	h.trashLists(t, "A", "B")
	list := h.createList(t, "Groceries", "Milk")
	items, err := list.Items()
	require.NoError(t, err)
	require.Equal(t, ResultSuccess, h.svc.DeleteListitem(ctx, list.ID(), items[0].ID(), true))

	h.clock.Advance(8 * 24 * time.Hour)

	n, err := h.svc.ApplyTrashRetention(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Empty(t, trashNames(t, h))

	n, err = h.svc.ApplyTrashRetention(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListsService_Retention_UnlimitedKeepsEverything(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	h.trashLists(t, "A")
	h.clock.Advance(365 * 24 * time.Hour)

	n, err := h.svc.ApplyTrashRetention(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, []string{"A"}, trashNames(t, h))
}

func TestListsService_Retention_UnknownSettingIsUnlimited(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	require.NoError(t, h.prefs.Set(ctx, PrefTrashKeep, 42))

	_, strategy := h.svc.TrashRetention(ctx)
	assert.Equal(t, retention.KindUnlimited, strategy.Kind)
}

func TestListsService_Retention_StorageErrorsAreJoined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock.NewMockListStorage(ctrl)
	prefStorage := mock.NewMockPreferenceStorage(ctrl)
	prefStorage.EXPECT().GetPreference(gomock.Any(), PrefTrashKeep).Return("1", true, nil).AnyTimes()

	svc := NewListsService(storage, NewPreferencesService(prefStorage), nil, ListsOptions{}, logger.Nop())

	storage.EXPECT().
		QueryLists(gomock.Any(), models.PartitionTrash, models.TrashOrdering).
		Return(nil, errors.New("trash unreadable"))
	storage.EXPECT().
		QueryLists(gomock.Any(), models.PartitionActive, models.DefaultOrdering).
		Return([]models.ListRecord{{ID: "l1"}}, nil)
	storage.EXPECT().
		QueryListitems(gomock.Any(), "l1", models.PartitionTrash, models.TrashOrdering).
		Return(nil, errors.New("items unreadable"))

	n, err := svc.ApplyTrashRetention(context.Background())

	assert.Zero(t, n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trash unreadable")
	assert.Contains(t, err.Error(), "items unreadable")
}

// ── lifecycle ───────────────────────────────────────────────────────────────

func TestListsService_StartSchedulesOnlyTimedStrategies(t *testing.T) {
	h := newListsHarness(t, ListsOptions{PurgeInterval: time.Hour})
	ctx := context.Background()
	job := h.svc.job.(*trashRetentionJob)

	h.svc.Start(ctx)
	assert.False(t, job.running(), "unlimited needs no schedule")

	require.NoError(t, h.svc.SetTrashRetention(ctx, models.KeepWeek))
	assert.True(t, job.running())

	require.NoError(t, h.svc.SetTrashRetention(ctx, models.KeepLastEntries))
	assert.False(t, job.running(), "count strategy is enforced on insert")

	require.NoError(t, h.svc.SetTrashRetention(ctx, models.KeepMonth))
	assert.True(t, job.running())

	h.svc.Stop()
	assert.False(t, job.running())

	require.NoError(t, h.svc.SetTrashRetention(ctx, models.KeepDay))
	assert.False(t, job.running(), "stopped service does not schedule")
}

func TestListsService_ConcurrentRetentionChanges(t *testing.T) {
	h := newListsHarness(t, ListsOptions{PurgeInterval: time.Hour})
	ctx := context.Background()
	job := h.svc.job.(*trashRetentionJob)
	h.svc.Start(ctx)

	settings := []models.KeepInTrash{models.KeepDay, models.KeepWeek, models.KeepMonth, models.KeepDay}
	for round := 0; round < 10; round++ {
		var wg sync.WaitGroup
		for _, setting := range settings {
			wg.Add(1)
			go func(setting models.KeepInTrash) {
				defer wg.Done()
				assert.NoError(t, h.svc.SetTrashRetention(ctx, setting))
			}(setting)
		}
		wg.Wait()

		require.True(t, job.running(), "round %d", round)
		require.Equal(t, 1, job.liveLoops(), "round %d", round)
	}

	// последнее изменение снимает расписание
	require.NoError(t, h.svc.SetTrashRetention(ctx, models.KeepUnlimited))
	assert.False(t, job.running())
	assert.Zero(t, job.liveLoops())

	h.svc.Stop()
	assert.Zero(t, job.liveLoops())
}

func TestListsService_StartAppliesCurrentStrategy(t *testing.T) {
	h := newListsHarness(t, ListsOptions{})
	ctx := context.Background()
	h.trashLists(t, "Old")

	require.NoError(t, h.prefs.Set(ctx, PrefTrashKeep, int(models.KeepUnlimited)))
	h.clock.Advance(2 * 24 * time.Hour)
	// write the setting behind the service's back
	raw, err := json.Marshal(int(models.KeepDay))
	require.NoError(t, err)
	require.NoError(t, h.storage.SetPreference(ctx, PrefTrashKeep, string(raw)))

	h.svc.Start(ctx)

	assert.Empty(t, trashNames(t, h))
}

// ── device ──────────────────────────────────────────────────────────────────

func TestListsService_SyncList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fs, err := store.NewFileStorage(store.InMemoryPath, utils.NewUUIDGenerator())
	require.NoError(t, err)
	prefs := NewPreferencesService(fs)
	transport := mock.NewMockDeviceTransport(ctrl)
	devices := NewDeviceService(transport, prefs, time.Minute, time.Hour, logger.Nop())
	t.Cleanup(devices.Stop)
	popup := &fakePopup{answer: true}

	svc := NewListsService(fs, prefs, devices, ListsOptions{Popup: popup}, logger.Nop())
	ctx := context.Background()

	list, res := svc.CreateList(ctx, "Groceries")
	require.Equal(t, ResultSuccess, res)
	require.Equal(t, ResultSuccess, svc.AddListitem(ctx, list.ID(), models.NewListitem("Milk")))

	devices.HandleEvent(ctx, models.DeviceEvent{DeviceID: "watch-1", Name: "Watch", State: models.DeviceReady})

	var sent models.DeviceEnvelope
	transport.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, env models.DeviceEnvelope) error {
			sent = env
			go func() {
				body := fmt.Sprintf(`{"tid":%d,"status":"stored"}`, *env.TransactionID)
				_ = devices.HandleMessage(context.Background(), models.DeviceMessage{DeviceID: env.DeviceID, Body: json.RawMessage(body)})
			}()
			return nil
		})

	resp, err := svc.SyncList(ctx, list.ID(), "")
	require.NoError(t, err)

	assert.True(t, resp.OK())
	assert.Equal(t, "watch-1", resp.DeviceID)
	assert.Equal(t, "watch-1", sent.DeviceID)

	var pairs []string
	require.NoError(t, json.Unmarshal(sent.Payload, &pairs))
	assert.Contains(t, pairs, "t=Groceries")
	assert.Contains(t, pairs, "item0_item=Milk")
	assert.Empty(t, devices.Outstanding())
}

func TestListsService_SyncList_Echo(t *testing.T) {
	tests := []struct {
		name    string
		echo    func(listID string) []string
		wantLog string
	}{
		{
			name:    "matching echo",
			echo:    func(id string) []string { return []string{"uuid=" + id, "t=Groceries", "n=1", "item0_uuid=x", "item0_item=Milk"} },
			wantLog: "",
		},
		{
			name:    "different list",
			echo:    func(string) []string { return []string{"uuid=someone-else", "n=0"} },
			wantLog: "device echoed a different list",
		},
		{
			name:    "unreadable",
			echo:    func(string) []string { return []string{"garbage"} },
			wantLog: "device echoed an unreadable list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			fs, err := store.NewFileStorage(store.InMemoryPath, utils.NewUUIDGenerator())
			require.NoError(t, err)
			prefs := NewPreferencesService(fs)
			transport := mock.NewMockDeviceTransport(ctrl)
			devices := NewDeviceService(transport, prefs, time.Minute, time.Hour, logger.Nop())
			t.Cleanup(devices.Stop)

			svc := NewListsService(fs, prefs, devices, ListsOptions{Popup: &fakePopup{answer: true}}, logger.Nop())

			var buf bytes.Buffer
			ctx := zerolog.New(&buf).WithContext(context.Background())

			list, res := svc.CreateList(ctx, "Groceries")
			require.Equal(t, ResultSuccess, res)
			require.Equal(t, ResultSuccess, svc.AddListitem(ctx, list.ID(), models.NewListitem("Milk")))
			devices.HandleEvent(ctx, models.DeviceEvent{DeviceID: "watch-1", State: models.DeviceReady})

			transport.EXPECT().Send(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, env models.DeviceEnvelope) error {
					body, err := json.Marshal(map[string]any{"tid": *env.TransactionID, "list": tt.echo(list.ID())})
					require.NoError(t, err)
					go func() {
						_ = devices.HandleMessage(context.Background(), models.DeviceMessage{DeviceID: env.DeviceID, Body: body})
					}()
					return nil
				})

			resp, err := svc.SyncList(ctx, list.ID(), "")
			require.NoError(t, err)
			assert.True(t, resp.OK())

			if tt.wantLog == "" {
				assert.NotContains(t, buf.String(), "device echoed")
				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), `"device_id":"watch-1"`)
		})
	}
}

func TestListsService_SyncList_NoDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fs, err := store.NewFileStorage(store.InMemoryPath, utils.NewUUIDGenerator())
	require.NoError(t, err)
	prefs := NewPreferencesService(fs)
	devices := NewDeviceService(mock.NewMockDeviceTransport(ctrl), prefs, time.Minute, time.Hour, logger.Nop())
	popup := &fakePopup{}

	svc := NewListsService(fs, prefs, devices, ListsOptions{Popup: popup}, logger.Nop())
	ctx := context.Background()
	list, res := svc.CreateList(ctx, "Groceries")
	require.Equal(t, ResultSuccess, res)

	_, err = svc.SyncList(ctx, list.ID(), "")

	require.ErrorIs(t, err, ErrDeviceSelectionRequired)
	assert.Equal(t, app.MsgDeviceSyncFailed, popup.lastToast(t).Message)
}

func TestListsService_SyncList_NotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fs, err := store.NewFileStorage(store.InMemoryPath, utils.NewUUIDGenerator())
	require.NoError(t, err)
	prefs := NewPreferencesService(fs)
	devices := NewDeviceService(mock.NewMockDeviceTransport(ctrl), prefs, time.Minute, time.Hour, logger.Nop())
	popup := &fakePopup{}

	svc := NewListsService(fs, prefs, devices, ListsOptions{Popup: popup}, logger.Nop())
	ctx := context.Background()
	list, res := svc.CreateList(ctx, "Groceries")
	require.Equal(t, ResultSuccess, res)
	devices.HandleEvent(ctx, models.DeviceEvent{DeviceID: "watch-1", State: models.DeviceAppNotInstalled})

	resp, err := svc.SyncList(ctx, list.ID(), "watch-1")

	require.NoError(t, err)
	assert.Equal(t, models.DeviceNotReady, resp.Status)
	assert.Equal(t, app.MsgDeviceNotReady, popup.lastToast(t).Message)
}

func TestListsService_StoreList_SyncsFlaggedLists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fs, err := store.NewFileStorage(store.InMemoryPath, utils.NewUUIDGenerator())
	require.NoError(t, err)
	prefs := NewPreferencesService(fs)
	transport := mock.NewMockDeviceTransport(ctrl)
	devices := NewDeviceService(transport, prefs, time.Minute, time.Hour, logger.Nop())
	t.Cleanup(devices.Stop)

	svc := NewListsService(fs, prefs, devices, ListsOptions{}, logger.Nop())
	ctx := context.Background()
	require.NoError(t, prefs.Set(ctx, PrefDefaultDevice, "watch-1"))

	list, res := svc.CreateList(ctx, "Groceries")
	require.Equal(t, ResultSuccess, res)

	transport.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, env models.DeviceEnvelope) error {
			assert.Equal(t, "watch-1", env.DeviceID)
			return nil
		})

	list.SetSync(true)
	require.Equal(t, ResultSuccess, svc.StoreList(ctx, list, false))
	assert.Len(t, devices.Outstanding(), 1)
}
