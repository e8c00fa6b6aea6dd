// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-list-keeper/internal/utils"
)

const traceIDHeader = utils.TraceIDHeader

// withTraceID puts the trace id and a logger tagged with it into the
// request context, and echoes the id in the response header. Devices
// reached while serving the request get the same id.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := requestTraceID(r)
		w.Header().Set(traceIDHeader, traceID)

		ctx := utils.WithTraceID(r.Context(), traceID)
		ctx = h.logger.WithTraceID(traceID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestTraceID(r *http.Request) string {
	if id := r.Header.Get(traceIDHeader); id != "" {
		return id
	}
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
