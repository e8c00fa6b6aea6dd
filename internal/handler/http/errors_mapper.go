// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-list-keeper/internal/adapter"
	"github.com/MKhiriev/go-list-keeper/internal/app"
	"github.com/MKhiriev/go-list-keeper/internal/service"
	"github.com/MKhiriev/go-list-keeper/internal/store"
	"github.com/MKhiriev/go-list-keeper/internal/validators"
	"github.com/MKhiriev/go-list-keeper/models"
)

// errorStatuses is checked in order; wrapped errors match their first
// listed sentinel. Entries with a message replace the error text in the
// response body.
var errorStatuses = []struct {
	target  error
	status  int
	message string
}{
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrMissingItemText, http.StatusBadRequest, ""},
	{ErrUnknownRetention, http.StatusBadRequest, app.MsgUnknownRetentionSetting},
	{ErrMissingDeviceID, http.StatusBadRequest, ""},

	{service.ErrListNotFound, http.StatusNotFound, app.MsgListNotFound},
	{service.ErrInvalidOrdering, http.StatusBadRequest, ""},
	{service.ErrInvalidDeviceMessage, http.StatusBadRequest, ""},
	{service.ErrDeviceSelectionRequired, http.StatusConflict, app.MsgDeviceSelectionRequired},

	{validators.ErrEmptyListName, http.StatusBadRequest, ""},
	{validators.ErrListNameTooLong, http.StatusBadRequest, ""},
	{validators.ErrInvalidReset, http.StatusBadRequest, ""},
	{validators.ErrEmptyListitemText, http.StatusBadRequest, ""},
	{validators.ErrListitemTooLong, http.StatusBadRequest, ""},
	{validators.ErrMissingListID, http.StatusBadRequest, ""},
	{validators.ErrInvalidListitem, http.StatusBadRequest, ""},

	{models.ErrListitemNotFound, http.StatusNotFound, app.MsgListitemNotFound},
	{store.ErrListNotFound, http.StatusNotFound, app.MsgListNotFound},
	{store.ErrListitemNotFound, http.StatusNotFound, app.MsgListitemNotFound},

	{adapter.ErrBridgeDisabled, http.StatusServiceUnavailable, ""},
	{adapter.ErrRateLimited, http.StatusTooManyRequests, ""},
	{adapter.ErrNotFound, http.StatusNotFound, ""},
	{service.ErrDeviceSend, http.StatusBadGateway, ""},
}

func statusFromError(err error) int {
	status, _ := responseFromError(err)
	return status
}

// responseFromError returns the status and the body message for err.
// Internal failures never expose the error text.
func responseFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			if e.message != "" {
				return e.status, e.message
			}
			return e.status, err.Error()
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
