// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport to the wearable device
// bridge.
//
// The primary abstraction is [DeviceTransport], which decouples the device
// transaction protocol from the channel that carries messages. The package
// ships an HTTP implementation ([NewHTTPDeviceTransport]) talking to the
// companion bridge, and [NewNopDeviceTransport] for deployments without a
// bridge.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for an unknown device).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-list-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/device_transport_mock.go -package=mock

// DeviceTransport delivers envelopes to paired devices. Delivery is
// fire-and-forget: responses come back asynchronously through the inbound
// webhook and are correlated by transaction id, never by the return value
// of Send.
type DeviceTransport interface {
	// Send hands env to the bridge. A nil error only means the bridge
	// accepted the envelope.
	Send(ctx context.Context, env models.DeviceEnvelope) error

	// Devices returns the bridge's current view of the paired devices. It
	// seeds the device registry on startup; later changes arrive as events.
	Devices(ctx context.Context) ([]models.Device, error)
}
