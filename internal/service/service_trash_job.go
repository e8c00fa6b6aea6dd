// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const defaultTrashPurgeInterval = time.Hour

// purgeRun is one installed purge loop. done is closed when the loop exits.
type purgeRun struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (r *purgeRun) halt() {
	r.cancel()
	<-r.done
}

type trashRetentionJob struct {
	apply func(ctx context.Context)

	// mu is held across stop-and-install, so at most one run exists.
	mu  sync.Mutex
	run *purgeRun

	live atomic.Int32
}

// NewTrashRetentionJob creates a job that calls apply on a ticker. The job
// is idle until Start is called.
func NewTrashRetentionJob(apply func(ctx context.Context)) TrashRetentionJob {
	return &trashRetentionJob{apply: apply}
}

// Start replaces the running loop, if any, with one that calls apply every
// interval until ctx ends or Stop is called. A non-positive interval
// defaults to one hour. Concurrent calls are serialized.
func (j *trashRetentionJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultTrashPurgeInterval
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.run != nil {
		j.run.halt()
	}

	runCtx, cancel := context.WithCancel(ctx)
	run := &purgeRun{cancel: cancel, done: make(chan struct{})}
	j.run = run

	j.live.Add(1)
	go j.loop(runCtx, interval, run.done)
}

func (j *trashRetentionJob) loop(ctx context.Context, interval time.Duration, done chan<- struct{}) {
	defer close(done)
	defer j.live.Add(-1)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.apply(ctx)
		}
	}
}

// Stop cancels the loop and waits for it to exit. It is a no-op when the
// job is not running.
func (j *trashRetentionJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.run == nil {
		return
	}
	j.run.halt()
	j.run = nil
}

// running reports whether a loop is installed.
func (j *trashRetentionJob) running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.run != nil
}

// liveLoops counts loop goroutines that have not exited yet.
func (j *trashRetentionJob) liveLoops() int {
	return int(j.live.Load())
}
