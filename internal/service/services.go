// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-list-keeper/internal/adapter"
	"github.com/MKhiriev/go-list-keeper/internal/config"
	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/store"
	"github.com/MKhiriev/go-list-keeper/models"
)

// Settings carries what [NewServices] needs beyond storage and transport.
type Settings struct {
	App     config.App
	Device  config.Device
	Trash   config.Trash
	Workers config.Workers
	Build   models.AppBuildInfo

	// Popup and Progress default to [DeclinePopup] and [NopProgress].
	Popup    Popup
	Progress ProgressReporter
}

type Services struct {
	AppInfo     AppInfoService
	Preferences PreferencesService
	Devices     DeviceService
	Lists       ListsService
}

func NewServices(storages *store.Storages, transport adapter.DeviceTransport, settings Settings, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(settings.App, settings.Build, logger)
	if err != nil {
		return nil, err
	}

	prefs := NewPreferencesService(storages.Preferences)
	devices := NewDeviceService(transport, prefs, settings.Device.DefaultTimeout, settings.Workers.DevicePollInterval, logger)
	lists := NewListsService(storages.Lists, prefs, devices, ListsOptions{
		Popup:           settings.Popup,
		Progress:        settings.Progress,
		MaxTrashEntries: settings.Trash.MaxEntries,
		PurgeInterval:   settings.Workers.TrashPurgeInterval,
	}, logger)

	return &Services{
		AppInfo:     appInfo,
		Preferences: prefs,
		Devices:     devices,
		Lists:       lists,
	}, nil
}
