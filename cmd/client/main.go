// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-list-keeper/internal/adapter"
	"github.com/MKhiriev/go-list-keeper/internal/client"
	"github.com/MKhiriev/go-list-keeper/internal/config"
	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/service"
	"github.com/MKhiriev/go-list-keeper/internal/store"
	"github.com/MKhiriev/go-list-keeper/internal/tui"
	"github.com/MKhiriev/go-list-keeper/internal/utils"
	"github.com/MKhiriev/go-list-keeper/internal/workers"
	"github.com/MKhiriev/go-list-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-list-keeper-client")

	if err := run(log); err != nil {
		log.Err(err).Strs("args", os.Args[1:]).Msg("client command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, utils.NewUUIDGenerator(), log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	transport, err := adapter.NewDeviceTransport(cfg.Adapter, cfg.App, log)
	if err != nil {
		return fmt.Errorf("create device transport: %w", err)
	}

	terminal := tui.New(os.Stdin, os.Stdout, log)
	services, err := service.NewServices(storages, transport, service.Settings{
		App:      cfg.App,
		Device:   cfg.Device,
		Trash:    cfg.Trash,
		Workers:  config.Workers{DevicePollInterval: cfg.Workers.DevicePollInterval},
		Build:    models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		Popup:    terminal,
		Progress: terminal,
	}, log)
	if err != nil {
		return fmt.Errorf("create client services: %w", err)
	}
	defer services.Devices.Stop()

	bg := workers.NewWorkers(log, workers.NewListsWorker(services.Lists))
	return client.NewApp(services, bg, os.Stdout, log).Run(ctx, os.Args[1:])
}
