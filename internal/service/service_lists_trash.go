// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-list-keeper/internal/app"
	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/retention"
	"github.com/MKhiriev/go-list-keeper/models"
)

// ── list trash ──────────────────────────────────────────────────────────────

func (s *listsService) GetTrash(ctx context.Context) ([]*models.List, error) {
	recs, err := s.storage.QueryLists(ctx, models.PartitionTrash, models.TrashOrdering)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "listsService.GetTrash").Msg("failed to query trash")
		return nil, fmt.Errorf("get trash: %w", err)
	}

	out := make([]*models.List, 0, len(recs))
	for _, rec := range recs {
		out = append(out, models.ListFromRecord(rec))
	}
	return out, nil
}

// RestoreListFromTrash brings a list back to the end of the active lists.
func (s *listsService) RestoreListFromTrash(ctx context.Context, id string) Result {
	log := logger.FromContext(ctx)

	s.writeMu.Lock()
	list, err := s.restoreListLocked(ctx, id)
	s.writeMu.Unlock()

	if err != nil {
		log.Err(err).Str("func", "listsService.RestoreListFromTrash").Str("list_id", id).Msg("failed to restore list")
		s.toast(ctx, models.ToastError, app.MsgListRestoreFailed)
		return ResultFailure
	}

	s.indexPut(list)
	s.listsChanged.Publish(models.ListsChanged{Action: models.ChangeRestored, IDs: []string{id}})
	s.trashChanged.Publish(models.TrashChanged{Action: models.ChangeRestored, IDs: []string{id}})
	s.toast(ctx, models.ToastSuccess, app.MsgListRestored)
	return ResultSuccess
}

func (s *listsService) restoreListLocked(ctx context.Context, id string) (*models.List, error) {
	n, err := s.storage.CountLists(ctx, models.PartitionActive)
	if err != nil {
		return nil, err
	}
	if err = s.storage.RestoreList(ctx, id, n); err != nil {
		return nil, err
	}

	rec, err := s.storage.GetList(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Deleted != nil {
		return nil, fmt.Errorf("list %s is still in trash after restore", id)
	}
	return models.ListFromRecord(rec), nil
}

func (s *listsService) EraseListFromTrash(ctx context.Context, id string, force bool) Result {
	log := logger.FromContext(ctx)

	rec, err := s.storage.GetList(ctx, id)
	if err == nil && rec.Deleted == nil {
		err = fmt.Errorf("list %s is not in trash", id)
	}
	if err != nil {
		log.Err(err).Str("func", "listsService.EraseListFromTrash").Str("list_id", id).Msg("cannot erase list")
		s.toast(ctx, models.ToastError, app.MsgListEraseFailed)
		return ResultFailure
	}

	if !s.confirm(ctx, models.ConfirmEraseList, rec.Name, 1, force) {
		return ResultNone
	}

	s.writeMu.Lock()
	err = s.storage.HardDeleteList(ctx, id)
	s.writeMu.Unlock()

	if err != nil {
		log.Err(err).Str("func", "listsService.EraseListFromTrash").Str("list_id", id).Msg("failed to erase list")
		s.toast(ctx, models.ToastError, app.MsgListEraseFailed)
		return ResultFailure
	}

	s.trashChanged.Publish(models.TrashChanged{Action: models.ChangeErased, IDs: []string{id}})
	s.toast(ctx, models.ToastSuccess, app.MsgListErased)
	return ResultSuccess
}

// WipeTrash erases every trashed list. A trash that cannot be read counts
// as a single failure.
func (s *listsService) WipeTrash(ctx context.Context, force bool) BatchResult {
	log := logger.FromContext(ctx)

	recs, err := s.storage.QueryLists(ctx, models.PartitionTrash, models.TrashOrdering)
	if err != nil {
		log.Err(err).Str("func", "listsService.WipeTrash").Msg("failed to query trash")
		res := BatchResult{Failed: 1}
		s.toastBatch(ctx, res, app.MsgTrashWipedf, app.MsgTrashWipeFailed, app.MsgTrashWipePartialf)
		return res
	}
	if len(recs) == 0 {
		return BatchResult{}
	}

	if !s.confirm(ctx, models.ConfirmWipeTrash, "", len(recs), force) {
		return BatchResult{}
	}

	s.progress.Begin()
	defer s.progress.End()

	var (
		res    BatchResult
		erased []string
	)
	s.writeMu.Lock()
	for _, rec := range recs {
		if err = s.storage.HardDeleteList(ctx, rec.ID); err != nil {
			log.Err(err).Str("func", "listsService.WipeTrash").Str("list_id", rec.ID).Msg("failed to erase list")
			res.add(false)
			continue
		}
		res.add(true)
		erased = append(erased, rec.ID)
	}
	s.writeMu.Unlock()

	if len(erased) > 0 {
		s.trashChanged.Publish(models.TrashChanged{Action: models.ChangeErased, IDs: erased})
	}
	s.toastBatch(ctx, res, app.MsgTrashWipedf, app.MsgTrashWipeFailed, app.MsgTrashWipePartialf)
	return res
}

// ── listitem trash ──────────────────────────────────────────────────────────

func (s *listsService) GetListitemsTrash(ctx context.Context, listID string) ([]*models.Listitem, error) {
	recs, err := s.storage.QueryListitems(ctx, listID, models.PartitionTrash, models.TrashOrdering)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "listsService.GetListitemsTrash").
			Str("list_id", listID).
			Msg("failed to query listitems trash")
		return nil, fmt.Errorf("get listitems trash: %w", err)
	}

	out := make([]*models.Listitem, 0, len(recs))
	for _, rec := range recs {
		out = append(out, models.ListitemFromRecord(rec))
	}
	return out, nil
}

// RestoreListitemFromTrash brings an item back to the end of its list. The
// list itself must be active.
func (s *listsService) RestoreListitemFromTrash(ctx context.Context, listID, itemID string) Result {
	log := logger.FromContext(ctx)

	s.writeMu.Lock()
	err := s.restoreListitemLocked(ctx, listID, itemID)
	if err == nil {
		s.refreshIndexLocked(ctx, listID)
	}
	s.writeMu.Unlock()

	if err != nil {
		log.Err(err).
			Str("func", "listsService.RestoreListitemFromTrash").
			Str("list_id", listID).
			Str("item_id", itemID).
			Msg("failed to restore listitem")
		s.toast(ctx, models.ToastError, app.MsgListitemRestoreFail)
		return ResultFailure
	}

	s.listsChanged.Publish(models.ListsChanged{Action: models.ChangeUpdated, IDs: []string{listID}})
	s.trashChanged.Publish(models.TrashChanged{Action: models.ChangeRestored, ListID: listID, IDs: []string{itemID}})
	s.toast(ctx, models.ToastSuccess, app.MsgListitemRestored)
	return ResultSuccess
}

func (s *listsService) restoreListitemLocked(ctx context.Context, listID, itemID string) error {
	list, err := s.storage.GetList(ctx, listID)
	if err != nil {
		return err
	}
	if list.Deleted != nil {
		return fmt.Errorf("%w: list %s is in trash", ErrListNotFound, listID)
	}

	n, err := s.storage.CountListitems(ctx, listID, models.PartitionActive)
	if err != nil {
		return err
	}
	if err = s.storage.RestoreListitem(ctx, listID, itemID, n); err != nil {
		return err
	}

	rec, err := s.storage.GetListitem(ctx, listID, itemID)
	if err != nil {
		return err
	}
	if rec.Deleted != nil {
		return fmt.Errorf("listitem %s is still in trash after restore", itemID)
	}
	return nil
}

func (s *listsService) EraseListitemFromTrash(ctx context.Context, listID, itemID string, force bool) Result {
	log := logger.FromContext(ctx)

	rec, err := s.storage.GetListitem(ctx, listID, itemID)
	if err == nil && rec.Deleted == nil {
		err = fmt.Errorf("listitem %s is not in trash", itemID)
	}
	if err != nil {
		log.Err(err).
			Str("func", "listsService.EraseListitemFromTrash").
			Str("list_id", listID).
			Str("item_id", itemID).
			Msg("cannot erase listitem")
		s.toast(ctx, models.ToastError, app.MsgListitemEraseFailed)
		return ResultFailure
	}

	if !s.confirm(ctx, models.ConfirmEraseListitem, rec.Item, 1, force) {
		return ResultNone
	}

	s.writeMu.Lock()
	err = s.storage.HardDeleteListitems(ctx, listID, []string{itemID})
	s.writeMu.Unlock()

	if err != nil {
		log.Err(err).
			Str("func", "listsService.EraseListitemFromTrash").
			Str("list_id", listID).
			Str("item_id", itemID).
			Msg("failed to erase listitem")
		s.toast(ctx, models.ToastError, app.MsgListitemEraseFailed)
		return ResultFailure
	}

	s.trashChanged.Publish(models.TrashChanged{Action: models.ChangeErased, ListID: listID, IDs: []string{itemID}})
	s.toast(ctx, models.ToastSuccess, app.MsgListitemErased)
	return ResultSuccess
}

func (s *listsService) WipeListitemsTrash(ctx context.Context, listID string, force bool) BatchResult {
	log := logger.FromContext(ctx)

	recs, err := s.storage.QueryListitems(ctx, listID, models.PartitionTrash, models.TrashOrdering)
	if err != nil {
		log.Err(err).Str("func", "listsService.WipeListitemsTrash").Str("list_id", listID).Msg("failed to query listitems trash")
		res := BatchResult{Failed: 1}
		s.toastBatch(ctx, res, app.MsgTrashWipedf, app.MsgTrashWipeFailed, app.MsgTrashWipePartialf)
		return res
	}
	if len(recs) == 0 {
		return BatchResult{}
	}

	if !s.confirm(ctx, models.ConfirmWipeItemsTrash, "", len(recs), force) {
		return BatchResult{}
	}

	s.progress.Begin()
	defer s.progress.End()

	var (
		res    BatchResult
		erased []string
	)
	s.writeMu.Lock()
	for _, rec := range recs {
		if err = s.storage.HardDeleteListitems(ctx, listID, []string{rec.ID}); err != nil {
			log.Err(err).
				Str("func", "listsService.WipeListitemsTrash").
				Str("list_id", listID).
				Str("item_id", rec.ID).
				Msg("failed to erase listitem")
			res.add(false)
			continue
		}
		res.add(true)
		erased = append(erased, rec.ID)
	}
	s.writeMu.Unlock()

	if len(erased) > 0 {
		s.trashChanged.Publish(models.TrashChanged{Action: models.ChangeErased, ListID: listID, IDs: erased})
	}
	s.toastBatch(ctx, res, app.MsgTrashWipedf, app.MsgTrashWipeFailed, app.MsgTrashWipePartialf)
	return res
}

// ── retention ───────────────────────────────────────────────────────────────

func (s *listsService) SetTrashRetention(ctx context.Context, setting models.KeepInTrash) error {
	return s.prefs.Set(ctx, PrefTrashKeep, int(setting))
}

func (s *listsService) TrashRetention(ctx context.Context) (models.KeepInTrash, retention.Strategy) {
	setting := GetPreference(ctx, s.prefs, PrefTrashKeep, models.KeepUnlimited)
	return setting, s.policy.Resolve(setting)
}

func (s *listsService) strategy(ctx context.Context) retention.Strategy {
	_, strategy := s.TrashRetention(ctx)
	return strategy
}

// ApplyTrashRetention erases whatever the active strategy expires from the
// list trash and from the item trash of every active list. It returns the
// number of erased entries. Running it twice in a row erases nothing the
// second time.
func (s *listsService) ApplyTrashRetention(ctx context.Context) (int, error) {
	strategy := s.strategy(ctx)
	if strategy.Kind == retention.KindUnlimited {
		return 0, nil
	}
	log := logger.FromContext(ctx)
	now := s.now()

	var (
		errs       []error
		erased     []string
		itemEvents []models.TrashChanged
		total      int
	)

	s.writeMu.Lock()
	trash, err := s.storage.QueryLists(ctx, models.PartitionTrash, models.TrashOrdering)
	if err != nil {
		errs = append(errs, fmt.Errorf("query list trash: %w", err))
	} else {
		entries := make([]retention.Entry, 0, len(trash))
		for _, rec := range trash {
			entries = append(entries, retention.Entry{ID: rec.ID, Deleted: deletedAt(rec.Deleted)})
		}
		for _, id := range strategy.Expired(entries, now) {
			if err = s.storage.HardDeleteList(ctx, id); err != nil {
				errs = append(errs, fmt.Errorf("erase list %s: %w", id, err))
				continue
			}
			erased = append(erased, id)
		}
	}

	active, err := s.storage.QueryLists(ctx, models.PartitionActive, models.DefaultOrdering)
	if err != nil {
		errs = append(errs, fmt.Errorf("query lists: %w", err))
	}
	for _, list := range active {
		recs, err := s.storage.QueryListitems(ctx, list.ID, models.PartitionTrash, models.TrashOrdering)
		if err != nil {
			errs = append(errs, fmt.Errorf("query trash of list %s: %w", list.ID, err))
			continue
		}
		entries := make([]retention.Entry, 0, len(recs))
		for _, rec := range recs {
			entries = append(entries, retention.Entry{ID: rec.ID, Deleted: deletedAt(rec.Deleted)})
		}
		expired := strategy.Expired(entries, now)
		if len(expired) == 0 {
			continue
		}
		if err = s.storage.HardDeleteListitems(ctx, list.ID, expired); err != nil {
			errs = append(errs, fmt.Errorf("erase trash of list %s: %w", list.ID, err))
			continue
		}
		total += len(expired)
		itemEvents = append(itemEvents, models.TrashChanged{Action: models.ChangeErased, ListID: list.ID, IDs: expired})
	}
	s.writeMu.Unlock()

	total += len(erased)
	if len(erased) > 0 {
		s.trashChanged.Publish(models.TrashChanged{Action: models.ChangeErased, IDs: erased})
	}
	for _, ev := range itemEvents {
		s.trashChanged.Publish(ev)
	}

	err = errors.Join(errs...)
	if err != nil {
		log.Err(err).
			Str("func", "listsService.ApplyTrashRetention").
			Str("strategy", string(strategy.Kind)).
			Int("erased", total).
			Msg("trash retention finished with errors")
	} else if total > 0 {
		log.Info().Str("strategy", string(strategy.Kind)).Int("erased", total).Msg("trash retention applied")
	}
	return total, err
}

// enforceCap applies a count strategy right after something was trashed.
func (s *listsService) enforceCap(ctx context.Context) {
	if !s.strategy(ctx).Capped() {
		return
	}
	_, _ = s.ApplyTrashRetention(ctx)
}

func deletedAt(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// ── lifecycle ───────────────────────────────────────────────────────────────

// Start applies the current retention strategy and schedules periodic
// purges while an age strategy is active.
func (s *listsService) Start(ctx context.Context) {
	s.lifecycleMu.Lock()
	s.runCtx = ctx
	s.started = true
	s.lifecycleMu.Unlock()

	s.reconfigureRetention(ctx)
}

func (s *listsService) Stop() {
	s.retentionMu.Lock()
	defer s.retentionMu.Unlock()

	s.lifecycleMu.Lock()
	s.started = false
	s.lifecycleMu.Unlock()

	s.job.Stop()
}

func (s *listsService) onPreferenceChanged(ev models.PreferenceChanged) {
	if ev.Key != PrefTrashKeep {
		return
	}
	s.reconfigureRetention(s.lifecycleContext())
}

func (s *listsService) lifecycleContext() context.Context {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()
	return s.runCtx
}

// reconfigureRetention replaces the purge schedule with the one the current
// strategy needs and applies the strategy once. Concurrent changes are
// applied one after another, so the last one decides the schedule.
func (s *listsService) reconfigureRetention(ctx context.Context) {
	s.retentionMu.Lock()
	defer s.retentionMu.Unlock()

	s.lifecycleMu.Lock()
	started := s.started
	s.lifecycleMu.Unlock()

	if started && s.strategy(ctx).Timed() {
		s.job.Start(ctx, s.purgeInterval)
	} else {
		s.job.Stop()
	}
	s.applyFromJob(ctx)
}

func (s *listsService) applyFromJob(ctx context.Context) {
	n, err := s.ApplyTrashRetention(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "listsService.applyFromJob").Msg("trash retention failed")
		return
	}
	if n > 0 {
		s.logger.Debug().Int("erased", n).Msg("trash retention pass")
	}
}

// ── device ──────────────────────────────────────────────────────────────────

// SyncList sends a list to a device and waits for the answer. An empty
// deviceID selects the default device.
func (s *listsService) SyncList(ctx context.Context, id, deviceID string) (models.DeviceResponse, error) {
	log := logger.FromContext(ctx)

	if s.devices == nil {
		s.toast(ctx, models.ToastError, app.MsgDeviceSyncFailed)
		return models.DeviceResponse{}, ErrDeviceSend
	}

	list, err := s.load(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "listsService.SyncList").Str("list_id", id).Msg("failed to load list")
		s.toast(ctx, models.ToastError, app.MsgDeviceSyncFailed)
		return models.DeviceResponse{}, err
	}

	payload, err := devicePayload(list)
	if err != nil {
		log.Err(err).Str("func", "listsService.SyncList").Str("list_id", id).Msg("failed to encode list")
		s.toast(ctx, models.ToastError, app.MsgDeviceSyncFailed)
		return models.DeviceResponse{}, err
	}

	resp, err := s.devices.Request(ctx, deviceID, payload, 0)
	if err != nil {
		log.Err(err).
			Str("func", "listsService.SyncList").
			Str("list_id", id).
			Str("device_id", deviceID).
			Msg("device request failed")
		s.toast(ctx, models.ToastError, app.MsgDeviceSyncFailed)
		return resp, err
	}

	switch resp.Status {
	case models.DeviceResponseOK:
		checkEcho(ctx, list, resp)
	case models.DeviceNotReady:
		s.toast(ctx, models.ToastWarning, app.MsgDeviceNotReady)
	case models.DeviceNoResponse:
		s.toast(ctx, models.ToastWarning, app.MsgDeviceNoResponse)
	}
	return resp, nil
}

// checkEcho compares the list a device echoes back in the "list" field of
// its answer with what was sent. A mismatch is only logged.
func checkEcho(ctx context.Context, list *models.List, resp models.DeviceResponse) {
	var echo struct {
		List []string `json:"list"`
	}
	if err := json.Unmarshal(resp.Body, &echo); err != nil || len(echo.List) == 0 {
		return
	}

	log := logger.FromContext(ctx).WithDevice(resp.DeviceID)
	got, err := models.ParseDeviceObject(echo.List)
	if err != nil {
		log.Warn().Err(err).Str("func", "listsService.SyncList").Str("list_id", list.ID()).Msg("device echoed an unreadable list")
		return
	}

	sent, err := list.ToDeviceObject()
	if err != nil {
		return
	}
	count, _ := sent.Get("n")
	if got.UUID != list.ID() || strconv.Itoa(len(got.Items)) != count {
		log.Warn().
			Str("func", "listsService.SyncList").
			Str("list_id", list.ID()).
			Str("echo_uuid", got.UUID).
			Int("echo_items", len(got.Items)).
			Msg("device echoed a different list")
	}
}
