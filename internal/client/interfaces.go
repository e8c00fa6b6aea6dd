// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line args and blocks until it is done.
	Run(ctx context.Context, args []string) error
}

// Worker is the background part the client starts around a command.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
