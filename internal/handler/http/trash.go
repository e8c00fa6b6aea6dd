// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-list-keeper/models"
)

func (h *Handler) getTrash(w http.ResponseWriter, r *http.Request) {
	lists, err := h.services.Lists.GetTrash(r.Context())
	if err != nil {
		writeErr(w, r, "*Handler.getTrash", err)
		return
	}
	writeData(w, r, models.NewListViews(lists, h.now()), http.StatusOK)
}

func (h *Handler) restoreList(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, h.services.Lists.RestoreListFromTrash(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handler) eraseList(w http.ResponseWriter, r *http.Request) {
	res := h.services.Lists.EraseListFromTrash(r.Context(), chi.URLParam(r, "id"), forceFromRequest(r))
	writeResult(w, r, res)
}

func (h *Handler) wipeTrash(w http.ResponseWriter, r *http.Request) {
	writeBatch(w, r, h.services.Lists.WipeTrash(r.Context(), forceFromRequest(r)))
}

func (h *Handler) getListitemsTrash(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.Lists.GetListitemsTrash(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, "*Handler.getListitemsTrash", err)
		return
	}
	writeData(w, r, models.NewListitemViews(items), http.StatusOK)
}

func (h *Handler) restoreListitem(w http.ResponseWriter, r *http.Request) {
	res := h.services.Lists.RestoreListitemFromTrash(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemID"))
	writeResult(w, r, res)
}

func (h *Handler) eraseListitem(w http.ResponseWriter, r *http.Request) {
	res := h.services.Lists.EraseListitemFromTrash(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemID"), forceFromRequest(r))
	writeResult(w, r, res)
}

func (h *Handler) wipeListitemsTrash(w http.ResponseWriter, r *http.Request) {
	writeBatch(w, r, h.services.Lists.WipeListitemsTrash(r.Context(), chi.URLParam(r, "id"), forceFromRequest(r)))
}
