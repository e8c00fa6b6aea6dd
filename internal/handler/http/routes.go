// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getVersion)
	router.Get("/api/devices", h.getDevices)

	// lists API, confirmations answered by the request
	router.Group(func(r chi.Router) {
		r.Use(h.withRequestPopup)

		r.Get("/api/lists", h.getLists)
		r.Post("/api/lists", h.createList)
		r.Post("/api/lists/delete", h.deleteLists)
		r.Post("/api/lists/reorder", h.reorderLists)
		r.Get("/api/lists/{id}", h.getList)
		r.Put("/api/lists/{id}", h.updateList)
		r.Delete("/api/lists/{id}", h.deleteList)
		r.Post("/api/lists/{id}/empty", h.emptyList)
		r.Post("/api/lists/{id}/sync", h.syncList)

		r.Post("/api/lists/{id}/items", h.addListitem)
		r.Post("/api/lists/{id}/items/delete", h.deleteListitems)
		r.Post("/api/lists/{id}/items/reorder", h.reorderListitems)
		r.Put("/api/lists/{id}/items/{itemID}", h.updateListitem)
		r.Delete("/api/lists/{id}/items/{itemID}", h.deleteListitem)

		r.Get("/api/trash", h.getTrash)
		r.Delete("/api/trash", h.wipeTrash)
		r.Post("/api/trash/{id}/restore", h.restoreList)
		r.Delete("/api/trash/{id}", h.eraseList)

		r.Get("/api/lists/{id}/trash", h.getListitemsTrash)
		r.Delete("/api/lists/{id}/trash", h.wipeListitemsTrash)
		r.Post("/api/lists/{id}/trash/{itemID}/restore", h.restoreListitem)
		r.Delete("/api/lists/{id}/trash/{itemID}", h.eraseListitem)

		r.Get("/api/settings/trash-retention", h.getTrashRetention)
		r.Put("/api/settings/trash-retention", h.setTrashRetention)
	})

	// device bridge webhooks
	router.Group(func(r chi.Router) {
		r.Use(h.bridgeAuth)

		r.Post("/api/device/messages", h.deviceMessage)
		r.Post("/api/device/events", h.deviceEvent)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(hideMethodNotAllowed)

	return router
}
