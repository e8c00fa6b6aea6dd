// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-list-keeper/internal/notify"
	"github.com/MKhiriev/go-list-keeper/internal/retention"
	"github.com/MKhiriev/go-list-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// ListsService is the single source of truth for lists and their trash.
//
// Lists handed out are copies; mutating them changes nothing until they are
// passed back to StoreList. Mutating operations return a [Result] (or a
// [BatchResult] for batches) and never an error: storage failures are
// logged, toasted and reported as [ResultFailure], a declined confirmation
// as [ResultNone].
type ListsService interface {
	// GetLists returns the active lists in peek state, ordered.
	GetLists(ctx context.Context) ([]*models.List, error)
	// GetList returns an active list with its items loaded.
	GetList(ctx context.Context, id string) (*models.List, error)

	CreateList(ctx context.Context, name string) (*models.List, Result)
	// StoreList persists list when it is dirty or force is set. On success
	// list and its items are clean and carry their backend identifiers.
	StoreList(ctx context.Context, list *models.List, force bool) Result
	// AddListitem appends item to the end of the list and persists it.
	AddListitem(ctx context.Context, listID string, item *models.Listitem) Result
	StoreListitem(ctx context.Context, item *models.Listitem, force bool) Result

	DeleteList(ctx context.Context, id string, force bool) Result
	DeleteLists(ctx context.Context, ids []string, force bool) BatchResult
	// EmptyList removes every unlocked item of the list.
	EmptyList(ctx context.Context, listID string, force bool) Result
	DeleteListitem(ctx context.Context, listID, itemID string, force bool) Result
	DeleteListitems(ctx context.Context, listID string, itemIDs []string, force bool) BatchResult

	// ReorderLists assigns each list its position in ids. ids must list
	// every active list exactly once.
	ReorderLists(ctx context.Context, ids []string) Result
	ReorderListitems(ctx context.Context, listID string, itemIDs []string) Result

	// GetTrash returns the trashed lists, most recently deleted first.
	GetTrash(ctx context.Context) ([]*models.List, error)
	RestoreListFromTrash(ctx context.Context, id string) Result
	EraseListFromTrash(ctx context.Context, id string, force bool) Result
	WipeTrash(ctx context.Context, force bool) BatchResult

	GetListitemsTrash(ctx context.Context, listID string) ([]*models.Listitem, error)
	RestoreListitemFromTrash(ctx context.Context, listID, itemID string) Result
	EraseListitemFromTrash(ctx context.Context, listID, itemID string, force bool) Result
	WipeListitemsTrash(ctx context.Context, listID string, force bool) BatchResult

	// SetTrashRetention stores the setting; the new strategy is applied to
	// the existing trash right away.
	SetTrashRetention(ctx context.Context, setting models.KeepInTrash) error
	TrashRetention(ctx context.Context) (models.KeepInTrash, retention.Strategy)
	// ApplyTrashRetention erases what the active strategy expires and
	// returns the number of erased entries.
	ApplyTrashRetention(ctx context.Context) (int, error)

	// SyncList sends the list to deviceID, or to the default device when
	// deviceID is empty, and waits for the answer.
	SyncList(ctx context.Context, id, deviceID string) (models.DeviceResponse, error)

	ListsChanged() *notify.Stream[models.ListsChanged]
	TrashChanged() *notify.Stream[models.TrashChanged]

	// Start installs the retention strategy and follows its preference.
	Start(ctx context.Context)
	Stop()
}

// DeviceService correlates requests to paired devices with their
// asynchronous responses.
type DeviceService interface {
	// Dispatch sends payload to deviceID and returns the transaction id.
	// cb is invoked exactly once with the response, or with
	// [models.DeviceNoResponse] after timeout, unless the transaction is
	// cancelled. A known device that is not ready gets
	// [models.DeviceNotReady] synchronously and a zero id.
	Dispatch(ctx context.Context, deviceID string, payload json.RawMessage, timeout time.Duration, cb func(models.DeviceResponse)) (uint64, error)
	// Request is the blocking form of Dispatch. When ctx ends first the
	// transaction is cancelled.
	Request(ctx context.Context, deviceID string, payload json.RawMessage, timeout time.Duration) (models.DeviceResponse, error)
	// CancelRequest drops an outstanding transaction without invoking its
	// callback. It reports false when the transaction already ended.
	CancelRequest(tid uint64) bool
	Outstanding() []uint64

	HandleMessage(ctx context.Context, msg models.DeviceMessage) error
	HandleEvent(ctx context.Context, ev models.DeviceEvent)
	// Refresh reloads the registry from the transport.
	Refresh(ctx context.Context) error

	Devices() []models.Device
	DefaultDevice(ctx context.Context) (models.Device, error)
	DeviceChanged() *notify.Stream[models.Device]

	Stop()
}

// PreferencesService is the generic key-value preference store. Values are
// JSON encoded; read them with [GetPreference].
type PreferencesService interface {
	Raw(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value any) error
	Changes() *notify.Stream[models.PreferenceChanged]
}

// Popup asks the user to confirm destructive actions and shows toasts.
type Popup interface {
	Confirm(ctx context.Context, c models.Confirmation) bool
	Toast(ctx context.Context, t models.Toast)
}

// ProgressReporter is told when a long running operation begins and ends.
// Calls nest.
type ProgressReporter interface {
	Begin()
	End()
}

// TrashRetentionJob runs the age-based purge on a ticker.
type TrashRetentionJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// AppInfoService reports the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
