// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-list-keeper/models"
)

type popupCtxKey struct{}

// WithPopup returns a copy of ctx whose operations use p instead of the
// service's default popup. The HTTP API uses it to answer confirmations
// from the request.
func WithPopup(ctx context.Context, p Popup) context.Context {
	return context.WithValue(ctx, popupCtxKey{}, p)
}

func popupFrom(ctx context.Context, def Popup) Popup {
	if p, ok := ctx.Value(popupCtxKey{}).(Popup); ok && p != nil {
		return p
	}
	return def
}

// DeclinePopup declines every confirmation and drops toasts. It is the
// default when nothing can ask the user.
type DeclinePopup struct{}

func (DeclinePopup) Confirm(context.Context, models.Confirmation) bool { return false }
func (DeclinePopup) Toast(context.Context, models.Toast)               {}

// NopProgress ignores progress.
type NopProgress struct{}

func (NopProgress) Begin() {}
func (NopProgress) End()   {}
