// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle of the transport servers of this package.
type Server interface {
	// RunServer serves until ctx ends or SIGTERM/SIGINT/SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops serving, waiting for in-flight requests until ctx
	// ends.
	Shutdown(ctx context.Context) error
}
