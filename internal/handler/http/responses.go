// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/service"
	"github.com/MKhiriev/go-list-keeper/internal/utils"
	"github.com/MKhiriev/go-list-keeper/models"
)

// confirmationRequiredHeader names the confirmations a no-op response was
// waiting for, so the client can repeat the call with "X-Confirm: yes".
const confirmationRequiredHeader = "X-Confirmation-Required"

// writeResult maps a three-valued result onto the response: 200 on
// success, 500 on failure, 204 when nothing happened.
func writeResult(w http.ResponseWriter, r *http.Request, res service.Result) {
	switch res {
	case service.ResultSuccess:
		writeOperation(w, r, models.OperationResponse{Result: res.String()}, http.StatusOK)
	case service.ResultFailure:
		writeOperation(w, r, models.OperationResponse{Result: res.String()}, http.StatusInternalServerError)
	default:
		writeNoContent(w, r)
	}
}

// writeBatch is writeResult for batches; the counts are part of the body.
func writeBatch(w http.ResponseWriter, r *http.Request, res service.BatchResult) {
	resp := models.OperationResponse{
		Result:    res.Result().String(),
		Succeeded: res.Succeeded,
		Failed:    res.Failed,
	}
	switch res.Result() {
	case service.ResultSuccess:
		writeOperation(w, r, resp, http.StatusOK)
	case service.ResultFailure:
		writeOperation(w, r, resp, http.StatusInternalServerError)
	default:
		writeNoContent(w, r)
	}
}

func writeOperation(w http.ResponseWriter, r *http.Request, resp models.OperationResponse, status int) {
	resp.Toasts = requestPopup(r).Toasts()
	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeOperation").Msg("failed to write response")
	}
}

func writeNoContent(w http.ResponseWriter, r *http.Request) {
	p := requestPopup(r)
	if p.Declined() {
		kinds := make([]string, 0, len(p.Asked()))
		for _, c := range p.Asked() {
			kinds = append(kinds, string(c.Kind))
		}
		w.Header().Set(confirmationRequiredHeader, strings.Join(kinds, ","))
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeData writes data as JSON with statusCode.
func writeData(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeData").Msg("failed to write response")
	}
}

// writeErr logs err and answers with the status it maps to.
func writeErr(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status, message := responseFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Send()
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", status).Send()
	}
	utils.WriteError(w, message, status)
}

// decodeBody decodes the JSON request body into v. An empty body leaves v
// untouched when optional is set.
func decodeBody(r *http.Request, v any, optional bool) error {
	if r.Body == nil || r.Body == http.NoBody {
		if optional {
			return nil
		}
		return fmt.Errorf("%w: empty body", ErrInvalidJSON)
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
