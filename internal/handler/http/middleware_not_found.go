// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-list-keeper/internal/utils"
)

// notFound answers unknown paths with a JSON error body.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

// hideMethodNotAllowed is installed as the router's MethodNotAllowed
// handler: a path served with an unregistered method answers 404, the same
// as a path that does not exist, so callers cannot probe which methods a
// route supports.
func hideMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	notFound(w, r)
}
