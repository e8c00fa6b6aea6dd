// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the list keeper and the webhooks
// the device bridge calls.
//
// Request tracing, access logging, response compression, confirmation
// handling and bridge authentication are middleware of this package; the
// handlers themselves only translate between JSON and the service layer.
package http
