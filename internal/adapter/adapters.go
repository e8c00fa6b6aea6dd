// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/go-list-keeper/internal/config"
	"github.com/MKhiriev/go-list-keeper/internal/logger"
)

// NewDeviceTransport picks the HTTP bridge transport when a bridge URL is
// configured and the nop transport otherwise.
func NewDeviceTransport(adapterCfg config.Adapter, appCfg config.App, log *logger.Logger) (DeviceTransport, error) {
	if adapterCfg.BridgeURL == "" {
		log.Info().Msg("device bridge is not configured, device sync disabled")
		return NewNopDeviceTransport(), nil
	}
	return NewHTTPDeviceTransport(adapterCfg, appCfg, log)
}
