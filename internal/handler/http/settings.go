// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-list-keeper/models"
)

func (h *Handler) getTrashRetention(w http.ResponseWriter, r *http.Request) {
	h.writeTrashRetention(w, r)
}

// setTrashRetention stores the setting; the service applies it to the
// existing trash when the preference changes.
func (h *Handler) setTrashRetention(w http.ResponseWriter, r *http.Request) {
	var req models.TrashRetentionRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeErr(w, r, "*Handler.setTrashRetention", err)
		return
	}

	setting, ok := models.ParseKeepInTrash(req.Setting)
	if !ok {
		writeErr(w, r, "*Handler.setTrashRetention", fmt.Errorf("%w: %q", ErrUnknownRetention, req.Setting))
		return
	}

	if err := h.services.Lists.SetTrashRetention(r.Context(), setting); err != nil {
		writeErr(w, r, "*Handler.setTrashRetention", err)
		return
	}
	h.writeTrashRetention(w, r)
}

func (h *Handler) writeTrashRetention(w http.ResponseWriter, r *http.Request) {
	setting, strategy := h.services.Lists.TrashRetention(r.Context())
	writeData(w, r, models.TrashRetentionResponse{
		Setting:  setting.String(),
		Strategy: string(strategy.Kind),
		Days:     strategy.Days,
		Max:      strategy.Max,
	}, http.StatusOK)
}
