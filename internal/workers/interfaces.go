// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the list keeper as one unit.
// The server starts them after the services are built and stops them, in
// reverse order, during shutdown.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block: long running work belongs in goroutines owned by
// the worker and bound to ctx. Stop waits until those goroutines exit and
// is safe to call on a worker that was never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
