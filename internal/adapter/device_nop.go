// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-list-keeper/models"
)

type nopDeviceTransport struct{}

// NewNopDeviceTransport returns a [DeviceTransport] for deployments without
// a bridge: Send fails with [ErrBridgeDisabled] and no devices are known.
func NewNopDeviceTransport() DeviceTransport {
	return nopDeviceTransport{}
}

func (nopDeviceTransport) Send(context.Context, models.DeviceEnvelope) error {
	return ErrBridgeDisabled
}

func (nopDeviceTransport) Devices(context.Context) ([]models.Device, error) {
	return nil, nil
}
