// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-list-keeper/internal/app"
	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/models"
)

// ── lists ───────────────────────────────────────────────────────────────────

func (s *listsService) DeleteList(ctx context.Context, id string, force bool) Result {
	rec, err := s.storage.GetList(ctx, id)
	if err != nil || rec.Deleted != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "listsService.DeleteList").
			Str("list_id", id).
			Msg("list is not active")
		s.toast(ctx, models.ToastError, app.MsgListDeleteFailed)
		return ResultFailure
	}

	if !s.confirm(ctx, models.ConfirmDeleteList, rec.Name, 1, force) {
		return ResultNone
	}
	toTrash := s.trashEnabled(ctx, PrefTrashListsEnabled)

	s.progress.Begin()
	defer s.progress.End()

	s.writeMu.Lock()
	ok := s.deleteListLocked(ctx, id, toTrash)
	if ok {
		s.compactListsLocked(ctx)
	}
	s.writeMu.Unlock()

	if !ok {
		s.toast(ctx, models.ToastError, app.MsgListDeleteFailed)
		return ResultFailure
	}

	s.publishListsRemoved(ctx, []string{id}, toTrash)
	if toTrash {
		s.toast(ctx, models.ToastSuccess, app.MsgListTrashed)
	} else {
		s.toast(ctx, models.ToastSuccess, app.MsgListDeleted)
	}
	return ResultSuccess
}

// DeleteLists asks once for the whole batch and then deletes the lists one
// by one so every failure is counted.
func (s *listsService) DeleteLists(ctx context.Context, ids []string, force bool) BatchResult {
	if len(ids) == 0 {
		return BatchResult{}
	}
	if !s.confirm(ctx, models.ConfirmDeleteList, "", len(ids), force) {
		return BatchResult{}
	}
	toTrash := s.trashEnabled(ctx, PrefTrashListsEnabled)

	s.progress.Begin()
	defer s.progress.End()

	var (
		res     BatchResult
		removed []string
	)
	s.writeMu.Lock()
	for _, id := range ids {
		ok := s.deleteListLocked(ctx, id, toTrash)
		res.add(ok)
		if ok {
			removed = append(removed, id)
		}
	}
	if len(removed) > 0 {
		s.compactListsLocked(ctx)
	}
	s.writeMu.Unlock()

	if len(removed) > 0 {
		s.publishListsRemoved(ctx, removed, toTrash)
	}
	s.toastBatch(ctx, res, app.MsgListsDeletedf, app.MsgListsDeleteFailed, app.MsgListsDeletePartialf)
	return res
}

// deleteListLocked moves an active list to trash or erases it.
func (s *listsService) deleteListLocked(ctx context.Context, id string, toTrash bool) bool {
	log := logger.FromContext(ctx)

	rec, err := s.storage.GetList(ctx, id)
	if err == nil && rec.Deleted != nil {
		err = fmt.Errorf("list %s is already in trash", id)
	}
	if err == nil {
		if toTrash {
			err = s.storage.SoftDeleteList(ctx, id, s.now().UTC())
		} else {
			err = s.storage.HardDeleteList(ctx, id)
		}
	}
	if err != nil {
		log.Err(err).
			Str("func", "listsService.deleteListLocked").
			Str("list_id", id).
			Bool("to_trash", toTrash).
			Msg("failed to delete list")
		return false
	}

	s.indexRemove(id)
	return true
}

// compactListsLocked renumbers the active lists 0..n-1, writing only the
// ones whose order changed.
func (s *listsService) compactListsLocked(ctx context.Context) {
	log := logger.FromContext(ctx)

	recs, err := s.storage.QueryLists(ctx, models.PartitionActive, models.DefaultOrdering)
	if err != nil {
		log.Err(err).Str("func", "listsService.compactListsLocked").Msg("failed to query lists")
		return
	}
	for i, rec := range recs {
		if rec.Order == i {
			continue
		}
		list := models.ListFromRecord(rec)
		list.SetOrder(i)
		if _, err = s.storage.UpsertList(ctx, list.ToBackend()); err != nil {
			log.Err(err).Str("func", "listsService.compactListsLocked").Str("list_id", rec.ID).Msg("failed to renumber list")
			continue
		}
		s.indexPut(list)
	}
}

func (s *listsService) publishListsRemoved(ctx context.Context, ids []string, toTrash bool) {
	s.listsChanged.Publish(models.ListsChanged{Action: models.ChangeDeleted, IDs: ids})
	if toTrash {
		s.trashChanged.Publish(models.TrashChanged{Action: models.ChangeDeleted, IDs: ids})
		s.enforceCap(ctx)
	}
}

// ── listitems ───────────────────────────────────────────────────────────────

// EmptyList removes every unlocked item in one storage call; the locked
// ones are renumbered to stay contiguous.
func (s *listsService) EmptyList(ctx context.Context, listID string, force bool) Result {
	list, err := s.load(ctx, listID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "listsService.EmptyList").Str("list_id", listID).Msg("failed to load list")
		s.toast(ctx, models.ToastError, app.MsgListEmptyFailed)
		return ResultFailure
	}

	items, _ := list.Items()
	var targets []string
	for _, item := range items {
		if !item.Locked() {
			targets = append(targets, item.ID())
		}
	}
	if len(targets) == 0 {
		return ResultNone
	}

	if !s.confirm(ctx, models.ConfirmEmptyList, list.Name(), len(targets), force) {
		return ResultNone
	}
	toTrash := s.trashEnabled(ctx, PrefTrashListitemsEnabled)

	s.progress.Begin()
	defer s.progress.End()

	s.writeMu.Lock()
	err = s.deleteListitemsLocked(ctx, listID, targets, toTrash)
	if err == nil {
		s.compactListitemsLocked(ctx, listID)
		s.refreshIndexLocked(ctx, listID)
	}
	s.writeMu.Unlock()

	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "listsService.EmptyList").
			Str("list_id", listID).
			Bool("to_trash", toTrash).
			Msg("failed to empty list")
		s.toast(ctx, models.ToastError, app.MsgListEmptyFailed)
		return ResultFailure
	}

	s.publishListitemsRemoved(ctx, listID, targets, toTrash)
	s.toast(ctx, models.ToastSuccess, app.MsgListEmptied)
	return ResultSuccess
}

func (s *listsService) DeleteListitem(ctx context.Context, listID, itemID string, force bool) Result {
	list, err := s.load(ctx, listID)
	var item *models.Listitem
	if err == nil {
		item, err = list.Item(itemID)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "listsService.DeleteListitem").
			Str("list_id", listID).
			Str("item_id", itemID).
			Msg("listitem is not active")
		s.toast(ctx, models.ToastError, app.MsgListitemDeleteFailed)
		return ResultFailure
	}

	if !s.confirm(ctx, models.ConfirmDeleteListitem, item.Item(), 1, force) {
		return ResultNone
	}
	toTrash := s.trashEnabled(ctx, PrefTrashListitemsEnabled)

	s.writeMu.Lock()
	err = s.deleteListitemsLocked(ctx, listID, []string{itemID}, toTrash)
	if err == nil {
		s.compactListitemsLocked(ctx, listID)
		s.refreshIndexLocked(ctx, listID)
	}
	s.writeMu.Unlock()

	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "listsService.DeleteListitem").
			Str("list_id", listID).
			Str("item_id", itemID).
			Bool("to_trash", toTrash).
			Msg("failed to delete listitem")
		s.toast(ctx, models.ToastError, app.MsgListitemDeleteFailed)
		return ResultFailure
	}

	s.publishListitemsRemoved(ctx, listID, []string{itemID}, toTrash)
	s.toast(ctx, models.ToastSuccess, app.MsgListitemDeleted)
	return ResultSuccess
}

func (s *listsService) DeleteListitems(ctx context.Context, listID string, itemIDs []string, force bool) BatchResult {
	if len(itemIDs) == 0 {
		return BatchResult{}
	}
	log := logger.FromContext(ctx)

	list, err := s.load(ctx, listID)
	if err != nil {
		log.Err(err).Str("func", "listsService.DeleteListitems").Str("list_id", listID).Msg("failed to load list")
		res := BatchResult{Failed: len(itemIDs)}
		s.toastBatch(ctx, res, app.MsgListitemsDeletedf, app.MsgListitemsDeleteFailed, app.MsgListitemsDeletePartialf)
		return res
	}

	if !s.confirm(ctx, models.ConfirmDeleteListitem, "", len(itemIDs), force) {
		return BatchResult{}
	}
	toTrash := s.trashEnabled(ctx, PrefTrashListitemsEnabled)

	s.progress.Begin()
	defer s.progress.End()

	var (
		res     BatchResult
		removed []string
	)
	s.writeMu.Lock()
	for _, id := range itemIDs {
		_, err = list.Item(id)
		if err == nil {
			err = s.deleteListitemsLocked(ctx, listID, []string{id}, toTrash)
		}
		if err != nil {
			log.Err(err).
				Str("func", "listsService.DeleteListitems").
				Str("list_id", listID).
				Str("item_id", id).
				Msg("failed to delete listitem")
		}
		res.add(err == nil)
		if err == nil {
			removed = append(removed, id)
		}
	}
	if len(removed) > 0 {
		s.compactListitemsLocked(ctx, listID)
		s.refreshIndexLocked(ctx, listID)
	}
	s.writeMu.Unlock()

	if len(removed) > 0 {
		s.publishListitemsRemoved(ctx, listID, removed, toTrash)
	}
	s.toastBatch(ctx, res, app.MsgListitemsDeletedf, app.MsgListitemsDeleteFailed, app.MsgListitemsDeletePartialf)
	return res
}

func (s *listsService) deleteListitemsLocked(ctx context.Context, listID string, ids []string, toTrash bool) error {
	if toTrash {
		return s.storage.SoftDeleteListitems(ctx, listID, ids, s.now().UTC())
	}
	return s.storage.HardDeleteListitems(ctx, listID, ids)
}

// compactListitemsLocked renumbers the active items of a list 0..n-1,
// writing only the ones whose order changed.
func (s *listsService) compactListitemsLocked(ctx context.Context, listID string) {
	log := logger.FromContext(ctx)

	recs, err := s.storage.QueryListitems(ctx, listID, models.PartitionActive, models.DefaultOrdering)
	if err != nil {
		log.Err(err).Str("func", "listsService.compactListitemsLocked").Str("list_id", listID).Msg("failed to query listitems")
		return
	}
	for i, rec := range recs {
		if rec.Order == i {
			continue
		}
		item := models.ListitemFromRecord(rec)
		item.SetOrder(i)
		if _, err = s.storage.UpsertListitem(ctx, item.ToBackend()); err != nil {
			log.Err(err).
				Str("func", "listsService.compactListitemsLocked").
				Str("list_id", listID).
				Str("item_id", rec.ID).
				Msg("failed to renumber listitem")
		}
	}
}

func (s *listsService) publishListitemsRemoved(ctx context.Context, listID string, ids []string, toTrash bool) {
	s.listsChanged.Publish(models.ListsChanged{Action: models.ChangeUpdated, IDs: []string{listID}})
	if toTrash {
		s.trashChanged.Publish(models.TrashChanged{Action: models.ChangeDeleted, ListID: listID, IDs: ids})
		s.enforceCap(ctx)
	}
}

// ── reordering ──────────────────────────────────────────────────────────────

func (s *listsService) ReorderLists(ctx context.Context, ids []string) Result {
	log := logger.FromContext(ctx)

	s.progress.Begin()
	defer s.progress.End()

	s.writeMu.Lock()
	recs, err := s.storage.QueryLists(ctx, models.PartitionActive, models.DefaultOrdering)
	if err == nil {
		err = checkPermutation(len(recs), ids, func(i int) string { return recs[i].ID })
	}
	if err != nil {
		s.writeMu.Unlock()
		log.Err(err).Str("func", "listsService.ReorderLists").Msg("cannot reorder lists")
		s.toast(ctx, models.ToastError, app.MsgReorderFailed)
		return ResultFailure
	}

	byID := make(map[string]models.ListRecord, len(recs))
	for _, rec := range recs {
		byID[rec.ID] = rec
	}

	var (
		changed []string
		failed  bool
	)
	for i, id := range ids {
		rec := byID[id]
		if rec.Order == i {
			continue
		}
		list := models.ListFromRecord(rec)
		list.SetOrder(i)
		if _, err = s.storage.UpsertList(ctx, list.ToBackend()); err != nil {
			log.Err(err).Str("func", "listsService.ReorderLists").Str("list_id", id).Msg("failed to store order")
			failed = true
			continue
		}
		s.indexPut(list)
		changed = append(changed, id)
	}
	s.writeMu.Unlock()

	if len(changed) > 0 {
		s.listsChanged.Publish(models.ListsChanged{Action: models.ChangeReordered, IDs: changed})
	}
	switch {
	case failed:
		s.toast(ctx, models.ToastError, app.MsgReorderFailed)
		return ResultFailure
	case len(changed) == 0:
		return ResultNone
	default:
		return ResultSuccess
	}
}

func (s *listsService) ReorderListitems(ctx context.Context, listID string, itemIDs []string) Result {
	log := logger.FromContext(ctx)

	s.writeMu.Lock()
	recs, err := s.storage.QueryListitems(ctx, listID, models.PartitionActive, models.DefaultOrdering)
	if err == nil {
		err = checkPermutation(len(recs), itemIDs, func(i int) string { return recs[i].ID })
	}
	if err != nil {
		s.writeMu.Unlock()
		log.Err(err).Str("func", "listsService.ReorderListitems").Str("list_id", listID).Msg("cannot reorder listitems")
		s.toast(ctx, models.ToastError, app.MsgReorderFailed)
		return ResultFailure
	}

	byID := make(map[string]models.ListitemRecord, len(recs))
	for _, rec := range recs {
		byID[rec.ID] = rec
	}

	var (
		changed []string
		failed  bool
	)
	for i, id := range itemIDs {
		rec := byID[id]
		if rec.Order == i {
			continue
		}
		item := models.ListitemFromRecord(rec)
		item.SetOrder(i)
		if _, err = s.storage.UpsertListitem(ctx, item.ToBackend()); err != nil {
			log.Err(err).
				Str("func", "listsService.ReorderListitems").
				Str("list_id", listID).
				Str("item_id", id).
				Msg("failed to store order")
			failed = true
			continue
		}
		changed = append(changed, id)
	}
	if len(changed) > 0 {
		s.refreshIndexLocked(ctx, listID)
	}
	s.writeMu.Unlock()

	if len(changed) > 0 {
		s.listsChanged.Publish(models.ListsChanged{Action: models.ChangeReordered, IDs: []string{listID}})
	}
	switch {
	case failed:
		s.toast(ctx, models.ToastError, app.MsgReorderFailed)
		return ResultFailure
	case len(changed) == 0:
		return ResultNone
	default:
		return ResultSuccess
	}
}

// checkPermutation verifies that ids names each of the n current entries
// exactly once.
func checkPermutation(n int, ids []string, idAt func(int) string) error {
	if len(ids) != n {
		return fmt.Errorf("%w: got %d ids for %d entries", ErrInvalidOrdering, len(ids), n)
	}
	current := make(map[string]bool, n)
	for i := range n {
		current[idAt(i)] = false
	}
	for _, id := range ids {
		used, ok := current[id]
		if !ok {
			return fmt.Errorf("%w: unknown id %s", ErrInvalidOrdering, id)
		}
		if used {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidOrdering, id)
		}
		current[id] = true
	}
	return nil
}
