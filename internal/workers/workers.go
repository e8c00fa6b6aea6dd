// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-list-keeper/internal/config"
	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/service"
)

type Workers struct {
	mu      sync.Mutex
	workers []Worker
	started int
	logger  *logger.Logger
}

// NewWorkers groups ws. They start in the given order.
func NewWorkers(log *logger.Logger, ws ...Worker) *Workers {
	return &Workers{workers: ws, logger: log}
}

// NewServiceWorkers builds the workers the server runs: the lists service
// lifecycle (trash retention) and the device registry refresh.
func NewServiceWorkers(services *service.Services, cfg config.Workers, log *logger.Logger) *Workers {
	return NewWorkers(log,
		NewListsWorker(services.Lists),
		NewDeviceRefresher(services.Devices, cfg.DeviceRefreshInterval, log),
	)
}

// Start starts every worker that is not running yet.
func (w *Workers) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for ; w.started < len(w.workers); w.started++ {
		w.workers[w.started].Start(ctx)
	}
	w.logger.Info().Int("workers", w.started).Msg("background workers started")
}

// Stop stops the started workers in reverse order.
func (w *Workers) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for ; w.started > 0; w.started-- {
		w.workers[w.started-1].Stop()
	}
	w.logger.Info().Msg("background workers stopped")
}

type listsWorker struct {
	lists service.ListsService
}

// NewListsWorker ties the lists service lifecycle to the worker group. Its
// Start installs the trash retention strategy of the stored preference.
func NewListsWorker(lists service.ListsService) Worker {
	return &listsWorker{lists: lists}
}

func (w *listsWorker) Start(ctx context.Context) { w.lists.Start(ctx) }
func (w *listsWorker) Stop()                     { w.lists.Stop() }
