// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-list-keeper/internal/popup"
	"github.com/MKhiriev/go-list-keeper/internal/service"
)

const forceParam = "force"

type requestPopupKey struct{}

// withRequestPopup answers the confirmations of the request from its
// X-Confirm header and collects its toasts for the response.
func (h *Handler) withRequestPopup(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := popup.FromRequest(r)

		ctx := service.WithPopup(r.Context(), p)
		ctx = context.WithValue(ctx, requestPopupKey{}, p)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestPopup(r *http.Request) *popup.Request {
	if p, ok := r.Context().Value(requestPopupKey{}).(*popup.Request); ok {
		return p
	}
	return popup.NewRequest(popup.DecisionUnset)
}

// forceFromRequest reports whether ?force=true skips confirmations.
func forceFromRequest(r *http.Request) bool {
	force, err := strconv.ParseBool(r.URL.Query().Get(forceParam))
	return err == nil && force
}
