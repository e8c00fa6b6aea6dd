// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/utils"
	"github.com/MKhiriev/go-list-keeper/models"
)

func (h *Handler) getDevices(w http.ResponseWriter, r *http.Request) {
	writeData(w, r, h.services.Devices.Devices(), http.StatusOK)
}

// deviceMessage receives a message a device sent through the bridge. A
// message matching an outstanding transaction completes it; anything else
// is dropped by the service.
func (h *Handler) deviceMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var msg models.DeviceMessage
	if err := decodeBody(r, &msg, false); err != nil {
		writeErr(w, r, "*Handler.deviceMessage", err)
		return
	}

	bridgeID, _ := utils.GetBridgeIDFromContext(ctx)
	log.Debug().Str("bridge_id", bridgeID).Str("device_id", msg.DeviceID).Msg("device message received")

	if err := h.services.Devices.HandleMessage(ctx, msg); err != nil {
		writeErr(w, r, "*Handler.deviceMessage", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// deviceEvent receives a device state change reported by the bridge.
func (h *Handler) deviceEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var ev models.DeviceEvent
	if err := decodeBody(r, &ev, false); err != nil {
		writeErr(w, r, "*Handler.deviceEvent", err)
		return
	}
	if ev.DeviceID == "" {
		writeErr(w, r, "*Handler.deviceEvent", ErrMissingDeviceID)
		return
	}

	bridgeID, _ := utils.GetBridgeIDFromContext(ctx)
	log.Debug().
		Str("bridge_id", bridgeID).
		Str("device_id", ev.DeviceID).
		Str("state", string(ev.State)).
		Msg("device event received")

	h.services.Devices.HandleEvent(ctx, ev)
	w.WriteHeader(http.StatusAccepted)
}
