// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-list-keeper/models"
)

// InMemoryPath keeps the file backend in memory only.
const InMemoryPath = ":memory:"

// FileStorage keeps every list, listitem and preference in a single JSON
// file. It implements both [ListStorage] and [PreferenceStorage].
//
// Every mutation is applied to a copy of the state which replaces the
// current one only after it was written to disk, so a failed write leaves
// memory and file in agreement.
type FileStorage struct {
	path     string
	inMemory bool
	ids      IDGenerator

	mu    sync.RWMutex
	state fileState
}

type fileState struct {
	Lists       map[string]models.ListRecord     `json:"lists"`
	Listitems   map[string]models.ListitemRecord `json:"listitems"`
	Preferences map[string]string                `json:"preferences"`
}

func newFileState() fileState {
	return fileState{
		Lists:       make(map[string]models.ListRecord),
		Listitems:   make(map[string]models.ListitemRecord),
		Preferences: make(map[string]string),
	}
}

func (s fileState) clone() fileState {
	return fileState{
		Lists:       maps.Clone(s.Lists),
		Listitems:   maps.Clone(s.Listitems),
		Preferences: maps.Clone(s.Preferences),
	}
}

// NewFileStorage opens the JSON file at path, or starts empty when it does
// not exist. An empty path or [InMemoryPath] never touches the disk.
func NewFileStorage(path string, ids IDGenerator) (*FileStorage, error) {
	if path == "" {
		path = InMemoryPath
	}

	s := &FileStorage{
		path:     path,
		inMemory: path == InMemoryPath,
		ids:      ids,
		state:    newFileState(),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read %s: %w", ErrFileStorage, s.path, err)
	}

	st := newFileState()
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrFileStorage, s.path, err)
	}
	if st.Lists == nil {
		st.Lists = make(map[string]models.ListRecord)
	}
	if st.Listitems == nil {
		st.Listitems = make(map[string]models.ListitemRecord)
	}
	if st.Preferences == nil {
		st.Preferences = make(map[string]string)
	}

	s.state = st
	return nil
}

func (s *FileStorage) persist(st fileState) error {
	if s.inMemory {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create dir: %w", ErrFileStorage, err)
		}
	}

	payload, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrFileStorage, err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrFileStorage, tmp, err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: replace %s: %w", ErrFileStorage, s.path, err)
	}
	return nil
}

// mutate applies fn to a copy of the state and commits it once persisted.
func (s *FileStorage) mutate(fn func(st *fileState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *FileStorage) UpsertList(_ context.Context, rec models.ListRecord) (models.ListRecord, error) {
	if rec.ID == "" {
		rec.ID = s.ids.Generate()
	}
	rec.ItemCount = 0

	err := s.mutate(func(st *fileState) error {
		if old, ok := st.Lists[rec.ID]; ok {
			rec.Created = old.Created
		}
		st.Lists[rec.ID] = rec
		return nil
	})
	if err != nil {
		return models.ListRecord{}, err
	}
	return rec, nil
}

func (s *FileStorage) UpsertListitem(_ context.Context, rec models.ListitemRecord) (models.ListitemRecord, error) {
	if rec.ListID == "" {
		return models.ListitemRecord{}, ErrMissingListID
	}
	if rec.ID == "" {
		rec.ID = s.ids.Generate()
	}

	err := s.mutate(func(st *fileState) error {
		if _, ok := st.Lists[rec.ListID]; !ok {
			return ErrListNotFound
		}
		if old, ok := st.Listitems[rec.ID]; ok {
			rec.Created = old.Created
		}
		st.Listitems[rec.ID] = rec
		return nil
	})
	if err != nil {
		return models.ListitemRecord{}, err
	}
	return rec, nil
}

func (s *FileStorage) QueryLists(_ context.Context, partition models.Partition, ordering models.Ordering) ([]models.ListRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lists := make([]models.ListRecord, 0, len(s.state.Lists))
	for _, rec := range s.state.Lists {
		if inPartition(rec.Deleted, partition) {
			rec.ItemCount = s.itemCount(rec)
			lists = append(lists, rec)
		}
	}

	slices.SortFunc(lists, func(a, b models.ListRecord) int {
		return compareRecords(ordering, a.ID, b.ID, a.Created, b.Created, a.Updated, b.Updated, a.Deleted, b.Deleted, a.Order, b.Order)
	})
	return lists, nil
}

func (s *FileStorage) GetList(_ context.Context, id string) (models.ListRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.state.Lists[id]
	if !ok {
		return models.ListRecord{}, ErrListNotFound
	}
	rec.ItemCount = s.itemCount(rec)
	return rec, nil
}

func (s *FileStorage) QueryListitems(_ context.Context, listID string, partition models.Partition, ordering models.Ordering) ([]models.ListitemRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.ListitemRecord, 0)
	for _, rec := range s.state.Listitems {
		if rec.ListID == listID && inPartition(rec.Deleted, partition) {
			items = append(items, rec)
		}
	}

	slices.SortFunc(items, func(a, b models.ListitemRecord) int {
		return compareRecords(ordering, a.ID, b.ID, a.Created, b.Created, a.Updated, b.Updated, a.Deleted, b.Deleted, a.Order, b.Order)
	})
	return items, nil
}

func (s *FileStorage) GetListitem(_ context.Context, listID, id string) (models.ListitemRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.state.Listitems[id]
	if !ok || rec.ListID != listID {
		return models.ListitemRecord{}, ErrListitemNotFound
	}
	return rec, nil
}

func (s *FileStorage) SoftDeleteList(_ context.Context, id string, at time.Time) error {
	at = at.UTC()
	return s.mutate(func(st *fileState) error {
		rec, ok := st.Lists[id]
		if !ok || rec.Deleted != nil {
			return ErrListNotFound
		}
		rec.Deleted = &at
		st.Lists[id] = rec

		for itemID, item := range st.Listitems {
			if item.ListID == id && item.Deleted == nil {
				item.Deleted = &at
				st.Listitems[itemID] = item
			}
		}
		return nil
	})
}

func (s *FileStorage) SoftDeleteListitems(_ context.Context, listID string, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	at = at.UTC()
	return s.mutate(func(st *fileState) error {
		for _, id := range ids {
			item, ok := st.Listitems[id]
			if !ok || item.ListID != listID || item.Deleted != nil {
				return ErrListitemNotFound
			}
			item.Deleted = &at
			st.Listitems[id] = item
		}
		return nil
	})
}

func (s *FileStorage) RestoreList(_ context.Context, id string, order int) error {
	return s.mutate(func(st *fileState) error {
		rec, ok := st.Lists[id]
		if !ok || rec.Deleted == nil {
			return ErrListNotFound
		}

		for itemID, item := range st.Listitems {
			if item.ListID == id && item.Deleted != nil && item.Deleted.Equal(*rec.Deleted) {
				item.Deleted = nil
				st.Listitems[itemID] = item
			}
		}

		rec.Deleted = nil
		rec.Order = order
		st.Lists[id] = rec
		return nil
	})
}

func (s *FileStorage) RestoreListitem(_ context.Context, listID, id string, order int) error {
	return s.mutate(func(st *fileState) error {
		item, ok := st.Listitems[id]
		if !ok || item.ListID != listID || item.Deleted == nil {
			return ErrListitemNotFound
		}
		item.Deleted = nil
		item.Order = order
		st.Listitems[id] = item
		return nil
	})
}

func (s *FileStorage) HardDeleteList(_ context.Context, id string) error {
	return s.mutate(func(st *fileState) error {
		if _, ok := st.Lists[id]; !ok {
			return ErrListNotFound
		}
		for itemID, item := range st.Listitems {
			if item.ListID == id {
				delete(st.Listitems, itemID)
			}
		}
		delete(st.Lists, id)
		return nil
	})
}

func (s *FileStorage) HardDeleteListitems(_ context.Context, listID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.mutate(func(st *fileState) error {
		for _, id := range ids {
			item, ok := st.Listitems[id]
			if !ok || item.ListID != listID {
				return ErrListitemNotFound
			}
			delete(st.Listitems, id)
		}
		return nil
	})
}

func (s *FileStorage) CountLists(_ context.Context, partition models.Partition) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, rec := range s.state.Lists {
		if inPartition(rec.Deleted, partition) {
			n++
		}
	}
	return n, nil
}

func (s *FileStorage) CountListitems(_ context.Context, listID string, partition models.Partition) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, rec := range s.state.Listitems {
		if rec.ListID == listID && inPartition(rec.Deleted, partition) {
			n++
		}
	}
	return n, nil
}

func (s *FileStorage) GetPreference(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.state.Preferences[key]
	return v, ok, nil
}

func (s *FileStorage) SetPreference(_ context.Context, key, value string) error {
	return s.mutate(func(st *fileState) error {
		st.Preferences[key] = value
		return nil
	})
}

// itemCount mirrors the SQL item_count column. Callers hold s.mu.
func (s *FileStorage) itemCount(list models.ListRecord) int {
	n := 0
	for _, item := range s.state.Listitems {
		if item.ListID != list.ID {
			continue
		}
		if item.Deleted == nil || (list.Deleted != nil && item.Deleted.Equal(*list.Deleted)) {
			n++
		}
	}
	return n
}

func inPartition(deleted *time.Time, p models.Partition) bool {
	if p == models.PartitionTrash {
		return deleted != nil
	}
	return deleted == nil
}

func compareRecords(o models.Ordering, aID, bID string, aCreated, bCreated time.Time, aUpdated, bUpdated, aDeleted, bDeleted *time.Time, aOrder, bOrder int) int {
	var c int
	switch o.Field {
	case models.OrderByCreated:
		c = aCreated.Compare(bCreated)
	case models.OrderByUpdated:
		c = compareTimePtr(aUpdated, bUpdated)
	case models.OrderByDeleted:
		c = compareTimePtr(aDeleted, bDeleted)
	default:
		c = cmp.Compare(aOrder, bOrder)
	}
	if c == 0 {
		c = cmp.Compare(aID, bID)
	}
	if o.Desc {
		return -c
	}
	return c
}

// compareTimePtr sorts nil first, like NULL in ascending SQLite order.
func compareTimePtr(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}
