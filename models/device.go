// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// DeviceState is the connection state reported for a paired wearable.
type DeviceState string

const (
	DeviceReady           DeviceState = "ready"
	DeviceNotConnected    DeviceState = "not_connected"
	DeviceAppNotInstalled DeviceState = "app_not_installed"
	DeviceUnknown         DeviceState = "unknown"
)

// Device is an entry of the device registry.
type Device struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	State   DeviceState `json:"state"`
	Updated time.Time   `json:"updated"`
}

// Ready reports whether the device can receive requests.
func (d Device) Ready() bool { return d.State == DeviceReady }

// DeviceEvent is a device state change delivered by the bridge. It is keyed
// by device, never by transaction.
type DeviceEvent struct {
	DeviceID string      `json:"deviceId"`
	Name     string      `json:"name,omitempty"`
	State    DeviceState `json:"state"`
}

// DeviceEnvelope is the outbound message handed to the device transport.
type DeviceEnvelope struct {
	DeviceID      string          `json:"deviceId"`
	Payload       json.RawMessage `json:"payload"`
	TransactionID *uint64         `json:"transactionId,omitempty"`
}

// DeviceMessage is an inbound message from a device. Responses echo the
// transaction id as "tid" inside Body.
type DeviceMessage struct {
	DeviceID string          `json:"deviceId"`
	Body     json.RawMessage `json:"body"`
}

// DeviceResponseStatus classifies how a transaction ended.
type DeviceResponseStatus string

const (
	DeviceResponseOK DeviceResponseStatus = "ok"
	// DeviceNoResponse means the transaction timed out.
	DeviceNoResponse DeviceResponseStatus = "no_response"
	// DeviceNotReady means the request could not be dispatched because the
	// device is not in the ready state.
	DeviceNotReady DeviceResponseStatus = "not_ready"
	// DeviceCancelled is only observed by blocking callers whose context
	// ended; callbacks of cancelled transactions are never invoked.
	DeviceCancelled DeviceResponseStatus = "cancelled"
)

// DeviceResponse is delivered to the completion callback of a transaction.
type DeviceResponse struct {
	TransactionID uint64               `json:"transactionId"`
	DeviceID      string               `json:"deviceId"`
	Status        DeviceResponseStatus `json:"status"`
	Body          json.RawMessage      `json:"body,omitempty"`
}

// OK reports whether a matching response was received.
func (r DeviceResponse) OK() bool { return r.Status == DeviceResponseOK }
