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

func (h *Handler) getLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.services.Lists.GetLists(r.Context())
	if err != nil {
		writeErr(w, r, "*Handler.getLists", err)
		return
	}
	writeData(w, r, models.NewListViews(lists, h.now()), http.StatusOK)
}

func (h *Handler) getList(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.Lists.GetList(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, "*Handler.getList", err)
		return
	}
	writeData(w, r, models.NewListView(list, h.now()), http.StatusOK)
}

func (h *Handler) createList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.CreateListRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeErr(w, r, "*Handler.createList", err)
		return
	}
	if err := h.validator.Validate(ctx, models.NewList(req.Name), validators.FieldName); err != nil {
		writeErr(w, r, "*Handler.createList", err)
		return
	}

	list, res := h.services.Lists.CreateList(ctx, req.Name)
	if res != service.ResultSuccess {
		writeResult(w, r, res)
		return
	}
	writeData(w, r, models.NewListView(list, h.now()), http.StatusOK)
}

func (h *Handler) updateList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.UpdateListRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeErr(w, r, "*Handler.updateList", err)
		return
	}

	list, err := h.services.Lists.GetList(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, "*Handler.updateList", err)
		return
	}
	req.Apply(list)
	if err = h.validator.Validate(ctx, list, validators.FieldName, validators.FieldReset); err != nil {
		writeErr(w, r, "*Handler.updateList", err)
		return
	}

	res := h.services.Lists.StoreList(ctx, list, false)
	if res != service.ResultSuccess {
		writeResult(w, r, res)
		return
	}
	writeData(w, r, models.NewListView(list, h.now()), http.StatusOK)
}

func (h *Handler) deleteList(w http.ResponseWriter, r *http.Request) {
	res := h.services.Lists.DeleteList(r.Context(), chi.URLParam(r, "id"), forceFromRequest(r))
	writeResult(w, r, res)
}

func (h *Handler) deleteLists(w http.ResponseWriter, r *http.Request) {
	var req models.IDsRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeErr(w, r, "*Handler.deleteLists", err)
		return
	}
	writeBatch(w, r, h.services.Lists.DeleteLists(r.Context(), req.IDs, forceFromRequest(r)))
}

func (h *Handler) reorderLists(w http.ResponseWriter, r *http.Request) {
	var req models.IDsRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeErr(w, r, "*Handler.reorderLists", err)
		return
	}
	writeResult(w, r, h.services.Lists.ReorderLists(r.Context(), req.IDs))
}

func (h *Handler) emptyList(w http.ResponseWriter, r *http.Request) {
	res := h.services.Lists.EmptyList(r.Context(), chi.URLParam(r, "id"), forceFromRequest(r))
	writeResult(w, r, res)
}

// syncList answers with the device response: 200 when the device
// answered, 503 when it was not ready and 504 when it never answered.
func (h *Handler) syncList(w http.ResponseWriter, r *http.Request) {
	var req models.SyncListRequest
	if err := decodeBody(r, &req, true); err != nil {
		writeErr(w, r, "*Handler.syncList", err)
		return
	}

	resp, err := h.services.Lists.SyncList(r.Context(), chi.URLParam(r, "id"), req.DeviceID)
	if err != nil {
		writeErr(w, r, "*Handler.syncList", err)
		return
	}

	status := http.StatusOK
	switch resp.Status {
	case models.DeviceNotReady:
		status = http.StatusServiceUnavailable
	case models.DeviceNoResponse, models.DeviceCancelled:
		status = http.StatusGatewayTimeout
	}
	writeData(w, r, resp, status)
}
