// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/service"
)

const defaultDeviceRefreshInterval = time.Minute

type deviceRefresher struct {
	devices  service.DeviceService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDeviceRefresher reloads the device registry from the transport once on
// Start and then every interval. Stop also ends the device transaction poll
// and resolves outstanding transactions as unanswered.
func NewDeviceRefresher(devices service.DeviceService, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultDeviceRefreshInterval
	}
	return &deviceRefresher{devices: devices, interval: interval, logger: log}
}

func (r *deviceRefresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.refresh(ctx)

		t := time.NewTicker(r.interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				r.refresh(ctx)
			}
		}
	}()
}

func (r *deviceRefresher) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
	r.devices.Stop()
}

func (r *deviceRefresher) refresh(ctx context.Context) {
	if err := r.devices.Refresh(ctx); err != nil && ctx.Err() == nil {
		r.logger.Warn().Err(err).Str("func", "deviceRefresher.refresh").Msg("device registry refresh failed")
		return
	}
	r.logger.Debug().Int("devices", len(r.devices.Devices())).Msg("device registry refreshed")
}
