// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-list-keeper/internal/service"
	"github.com/MKhiriev/go-list-keeper/internal/validators"
	"github.com/MKhiriev/go-list-keeper/models"
)

func (h *Handler) addListitem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ListitemRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeErr(w, r, "*Handler.addListitem", err)
		return
	}
	if req.Item == nil {
		writeErr(w, r, "*Handler.addListitem", ErrMissingItemText)
		return
	}

	item := models.NewListitem(*req.Item)
	req.Apply(item)
	if err := h.validator.Validate(ctx, item, validators.FieldText); err != nil {
		writeErr(w, r, "*Handler.addListitem", err)
		return
	}

	res := h.services.Lists.AddListitem(ctx, chi.URLParam(r, "id"), item)
	if res != service.ResultSuccess {
		writeResult(w, r, res)
		return
	}
	writeData(w, r, item.Clone().ToBackend(), http.StatusOK)
}

func (h *Handler) updateListitem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ListitemRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeErr(w, r, "*Handler.updateListitem", err)
		return
	}

	list, err := h.services.Lists.GetList(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, "*Handler.updateListitem", err)
		return
	}
	item, err := list.Item(chi.URLParam(r, "itemID"))
	if err != nil {
		writeErr(w, r, "*Handler.updateListitem", err)
		return
	}

	req.Apply(item)
	if err = h.validator.Validate(ctx, item, validators.FieldText); err != nil {
		writeErr(w, r, "*Handler.updateListitem", err)
		return
	}

	res := h.services.Lists.StoreListitem(ctx, item, false)
	if res != service.ResultSuccess {
		writeResult(w, r, res)
		return
	}
	writeData(w, r, item.Clone().ToBackend(), http.StatusOK)
}

func (h *Handler) deleteListitem(w http.ResponseWriter, r *http.Request) {
	res := h.services.Lists.DeleteListitem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemID"), forceFromRequest(r))
	writeResult(w, r, res)
}

func (h *Handler) deleteListitems(w http.ResponseWriter, r *http.Request) {
	var req models.IDsRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeErr(w, r, "*Handler.deleteListitems", err)
		return
	}
	res := h.services.Lists.DeleteListitems(r.Context(), chi.URLParam(r, "id"), req.IDs, forceFromRequest(r))
	writeBatch(w, r, res)
}

func (h *Handler) reorderListitems(w http.ResponseWriter, r *http.Request) {
	var req models.IDsRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeErr(w, r, "*Handler.reorderListitems", err)
		return
	}
	writeResult(w, r, h.services.Lists.ReorderListitems(r.Context(), chi.URLParam(r, "id"), req.IDs))
}
