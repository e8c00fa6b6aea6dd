// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-list-keeper/internal/app"
	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/notify"
	"github.com/MKhiriev/go-list-keeper/internal/retention"
	"github.com/MKhiriev/go-list-keeper/internal/store"
	"github.com/MKhiriev/go-list-keeper/internal/validators"
	"github.com/MKhiriev/go-list-keeper/models"
)

// ListsOptions carries the optional collaborators and tunables of the
// lists service. Zero values fall back to [DeclinePopup], [NopProgress],
// the default list validator, [retention.DefaultMaxEntries] and an hourly
// purge.
type ListsOptions struct {
	Popup           Popup
	Progress        ProgressReporter
	Validator       validators.Validator
	MaxTrashEntries int
	PurgeInterval   time.Duration
}

type listsService struct {
	storage   store.ListStorage
	prefs     PreferencesService
	devices   DeviceService
	validator validators.Validator
	popup     Popup
	progress  ProgressReporter

	policy        retention.Policy
	purgeInterval time.Duration
	job           TrashRetentionJob
	now           func() time.Time

	// writeMu serializes mutations; mu guards index. writeMu is always
	// taken first.
	writeMu sync.Mutex
	mu      sync.RWMutex
	index   map[string]*models.List

	listsChanged notify.Stream[models.ListsChanged]
	trashChanged notify.Stream[models.TrashChanged]

	lifecycleMu sync.Mutex
	runCtx      context.Context
	started     bool

	// retentionMu serializes purge schedule changes.
	retentionMu sync.Mutex

	logger *logger.Logger
}

// NewListsService constructs the [ListsService]. devices may be nil, in
// which case lists are never sent to a device.
func NewListsService(storage store.ListStorage, prefs PreferencesService, devices DeviceService, opts ListsOptions, log *logger.Logger) ListsService {
	s := &listsService{
		storage:       storage,
		prefs:         prefs,
		devices:       devices,
		validator:     opts.Validator,
		popup:         opts.Popup,
		progress:      opts.Progress,
		policy:        retention.Policy{MaxEntries: opts.MaxTrashEntries},
		purgeInterval: opts.PurgeInterval,
		now:           time.Now,
		index:         make(map[string]*models.List),
		runCtx:        context.Background(),
		logger:        log,
	}
	if s.validator == nil {
		s.validator = validators.NewListValidator()
	}
	if s.popup == nil {
		s.popup = DeclinePopup{}
	}
	if s.progress == nil {
		s.progress = NopProgress{}
	}
	s.job = NewTrashRetentionJob(s.applyFromJob)

	prefs.Changes().Subscribe(s.onPreferenceChanged)
	return s
}

func (s *listsService) ListsChanged() *notify.Stream[models.ListsChanged] { return &s.listsChanged }
func (s *listsService) TrashChanged() *notify.Stream[models.TrashChanged] { return &s.trashChanged }

// ── reads ───────────────────────────────────────────────────────────────────

// GetLists reconciles the index with storage: known lists are updated in
// place, new ones added and vanished ones dropped.
func (s *listsService) GetLists(ctx context.Context) ([]*models.List, error) {
	recs, err := s.storage.QueryLists(ctx, models.PartitionActive, models.DefaultOrdering)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "listsService.GetLists").Msg("failed to query lists")
		return nil, fmt.Errorf("get lists: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(recs))
	out := make([]*models.List, 0, len(recs))
	for _, rec := range recs {
		fresh := models.ListFromRecord(rec)
		cur, ok := s.index[rec.ID]
		if ok {
			cur.CopyFrom(fresh)
		} else {
			cur = fresh
			s.index[rec.ID] = cur
		}
		seen[rec.ID] = struct{}{}
		out = append(out, cur.Clone())
	}
	for id := range s.index {
		if _, ok := seen[id]; !ok {
			delete(s.index, id)
		}
	}
	return out, nil
}

func (s *listsService) GetList(ctx context.Context, id string) (*models.List, error) {
	list, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	s.indexPut(list)
	return list, nil
}

// load reads an active list with its active items.
func (s *listsService) load(ctx context.Context, id string) (*models.List, error) {
	rec, err := s.storage.GetList(ctx, id)
	if errors.Is(err, store.ErrListNotFound) || (err == nil && rec.Deleted != nil) {
		return nil, fmt.Errorf("%w: %s", ErrListNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load list %s: %w", id, err)
	}

	recs, err := s.storage.QueryListitems(ctx, id, models.PartitionActive, models.DefaultOrdering)
	if err != nil {
		return nil, fmt.Errorf("load items of list %s: %w", id, err)
	}

	list := models.ListFromRecord(rec)
	items := make([]*models.Listitem, 0, len(recs))
	for _, r := range recs {
		items = append(items, models.ListitemFromRecord(r))
	}
	list.LoadItems(items)
	return list, nil
}

// ── writes ──────────────────────────────────────────────────────────────────

func (s *listsService) CreateList(ctx context.Context, name string) (*models.List, Result) {
	list := models.NewList(name)

	n, err := s.storage.CountLists(ctx, models.PartitionActive)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "listsService.CreateList").Msg("failed to count lists")
		s.toast(ctx, models.ToastError, app.MsgListSaveFailed)
		return nil, ResultFailure
	}
	list.SetOrder(n)

	res := s.StoreList(ctx, list, false)
	if res != ResultSuccess {
		return nil, res
	}
	return list, res
}

func (s *listsService) StoreList(ctx context.Context, list *models.List, force bool) Result {
	if list == nil || (!list.Dirty() && !force) {
		return ResultNone
	}
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, list); err != nil {
		log.Warn().Err(err).Str("func", "listsService.StoreList").Str("list_id", list.ID()).Msg("invalid list")
		s.toast(ctx, models.ToastError, app.MsgListSaveFailed)
		return ResultFailure
	}

	s.progress.Begin()
	defer s.progress.End()

	s.writeMu.Lock()
	created, ok := s.storeLocked(ctx, list, force)
	s.writeMu.Unlock()

	if !ok {
		s.toast(ctx, models.ToastError, app.MsgListSaveFailed)
		return ResultFailure
	}

	action := models.ChangeUpdated
	if created {
		action = models.ChangeCreated
	}
	s.listsChanged.Publish(models.ListsChanged{Action: action, IDs: []string{list.ID()}})

	s.syncBestEffort(ctx, list)
	return ResultSuccess
}

// storeLocked writes the list's own record when needed and every dirty
// item. Whatever fails to persist is marked dirty again.
func (s *listsService) storeLocked(ctx context.Context, list *models.List, force bool) (created, ok bool) {
	log := logger.FromContext(ctx)
	created = list.IsVirtual()

	if created || force || list.FieldsDirty() {
		saved, err := s.storage.UpsertList(ctx, list.ToBackend())
		if err != nil {
			list.MarkDirty()
			log.Err(err).
				Str("func", "listsService.StoreList").
				Str("list_id", list.ID()).
				Str("operation", "upsert_list").
				Msg("failed to store list")
			return created, false
		}
		list.BindID(saved.ID)
	}

	ok = true
	if list.State() == models.ListStateFull {
		items, _ := list.Items()
		for _, item := range items {
			if !item.Dirty() && !force {
				continue
			}
			saved, err := s.storage.UpsertListitem(ctx, item.ToBackend())
			if err != nil {
				item.MarkDirty()
				log.Err(err).
					Str("func", "listsService.StoreList").
					Str("list_id", list.ID()).
					Str("item_id", item.ID()).
					Str("operation", "upsert_listitem").
					Msg("failed to store listitem")
				ok = false
				continue
			}
			item.BindID(saved.ID)
		}
	}

	if list.IsDeleted() {
		s.indexRemove(list.ID())
	} else {
		s.indexPut(list)
	}
	return created, ok
}

func (s *listsService) AddListitem(ctx context.Context, listID string, item *models.Listitem) Result {
	if item == nil {
		return ResultNone
	}

	list, err := s.load(ctx, listID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "listsService.AddListitem").
			Str("list_id", listID).
			Msg("failed to load list")
		s.toast(ctx, models.ToastError, app.MsgListSaveFailed)
		return ResultFailure
	}
	if err = list.AddItem(item); err != nil {
		return ResultFailure
	}

	return s.StoreList(ctx, list, false)
}

func (s *listsService) StoreListitem(ctx context.Context, item *models.Listitem, force bool) Result {
	if item == nil || (!item.Dirty() && !force) {
		return ResultNone
	}
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, item); err != nil {
		log.Warn().Err(err).Str("func", "listsService.StoreListitem").Str("item_id", item.ID()).Msg("invalid listitem")
		s.toast(ctx, models.ToastError, app.MsgListSaveFailed)
		return ResultFailure
	}

	s.writeMu.Lock()
	// a new item goes after the active ones
	if item.IsVirtual() && item.ListID() != "" {
		n, err := s.storage.CountListitems(ctx, item.ListID(), models.PartitionActive)
		if err != nil {
			s.writeMu.Unlock()
			log.Err(err).
				Str("func", "listsService.StoreListitem").
				Str("list_id", item.ListID()).
				Msg("failed to count listitems")
			s.toast(ctx, models.ToastError, app.MsgListSaveFailed)
			return ResultFailure
		}
		item.SetOrder(n)
	}
	saved, err := s.storage.UpsertListitem(ctx, item.ToBackend())
	if err != nil {
		s.writeMu.Unlock()
		item.MarkDirty()
		log.Err(err).
			Str("func", "listsService.StoreListitem").
			Str("list_id", item.ListID()).
			Str("item_id", item.ID()).
			Msg("failed to store listitem")
		s.toast(ctx, models.ToastError, app.MsgListSaveFailed)
		return ResultFailure
	}
	item.BindID(saved.ID)

	s.mu.Lock()
	if l := s.index[item.ListID()]; l != nil {
		if item.IsDeleted() {
			l.RemoveItem(item.ID())
		} else {
			l.PutItem(item.Clone())
		}
	}
	s.mu.Unlock()
	s.writeMu.Unlock()

	s.listsChanged.Publish(models.ListsChanged{Action: models.ChangeUpdated, IDs: []string{item.ListID()}})

	if l := s.indexGet(item.ListID()); l != nil && l.Sync() {
		if full, err := s.load(ctx, l.ID()); err == nil {
			s.syncBestEffort(ctx, full)
		}
	}
	return ResultSuccess
}

// ── index ───────────────────────────────────────────────────────────────────

// indexPut stores a copy of list, updating an existing entry in place.
func (s *listsService) indexPut(list *models.List) {
	if list.ID() == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.index[list.ID()]; ok {
		cur.CopyFrom(list)
		return
	}
	s.index[list.ID()] = list.Clone()
}

func (s *listsService) indexRemove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.index, id)
}

func (s *listsService) indexGet(id string) *models.List {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l, ok := s.index[id]; ok {
		return l.Clone()
	}
	return nil
}

// refreshIndexLocked reloads an indexed list after its items changed.
func (s *listsService) refreshIndexLocked(ctx context.Context, listID string) {
	if s.indexGet(listID) == nil {
		return
	}
	list, err := s.load(ctx, listID)
	if err != nil {
		s.indexRemove(listID)
		return
	}
	s.indexPut(list)
}

// ── collaborators ───────────────────────────────────────────────────────────

func (s *listsService) confirm(ctx context.Context, kind models.ConfirmKind, subject string, count int, force bool) bool {
	if force {
		return true
	}
	if !GetPreference(ctx, s.prefs, PrefConfirm(kind), true) {
		return true
	}
	return popupFrom(ctx, s.popup).Confirm(ctx, models.Confirmation{Kind: kind, Subject: subject, Count: count})
}

func (s *listsService) toast(ctx context.Context, level models.ToastLevel, msg string) {
	popupFrom(ctx, s.popup).Toast(ctx, models.Toast{Level: level, Message: msg})
}

// toastBatch picks the message variant of a finished batch.
func (s *listsService) toastBatch(ctx context.Context, res BatchResult, succeededf, failed, partialf string) {
	switch res.Variant() {
	case VariantAllSucceeded:
		s.toast(ctx, models.ToastSuccess, fmt.Sprintf(succeededf, res.Succeeded))
	case VariantAllFailed:
		s.toast(ctx, models.ToastError, failed)
	case VariantPartial:
		s.toast(ctx, models.ToastWarning, fmt.Sprintf(partialf, res.Failed, res.Total()))
	}
}

func (s *listsService) trashEnabled(ctx context.Context, key string) bool {
	return GetPreference(ctx, s.prefs, key, true)
}

// syncBestEffort dispatches the list to the default device. Failures are
// only logged.
func (s *listsService) syncBestEffort(ctx context.Context, list *models.List) {
	if s.devices == nil || !list.Sync() || list.IsDeleted() {
		return
	}
	log := logger.FromContext(ctx)

	if list.State() != models.ListStateFull {
		full, err := s.load(ctx, list.ID())
		if err != nil {
			log.Warn().Err(err).Str("list_id", list.ID()).Msg("device sync skipped, list not loadable")
			return
		}
		list = full
	}

	payload, err := devicePayload(list)
	if err != nil {
		log.Warn().Err(err).Str("list_id", list.ID()).Msg("device sync skipped")
		return
	}

	listID := list.ID()
	_, err = s.devices.Dispatch(ctx, "", payload, 0, func(resp models.DeviceResponse) {
		if !resp.OK() {
			s.logger.Warn().
				Str("list_id", listID).
				Str("device_id", resp.DeviceID).
				Str("status", string(resp.Status)).
				Msg("device sync did not complete")
		}
	})
	if err != nil {
		log.Warn().Err(err).Str("func", "listsService.syncBestEffort").Str("list_id", listID).Msg("device sync failed")
	}
}

// devicePayload encodes the list as the JSON array of "key=value" pairs the
// device expects.
func devicePayload(list *models.List) (json.RawMessage, error) {
	obj, err := list.ToDeviceObject()
	if err != nil {
		return nil, err
	}
	return json.Marshal(obj.Pairs())
}
