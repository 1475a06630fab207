// Copyright (c) 2026 The lshindex Authors. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package workpool bounds the fan-out of the index's batch
// operations (insert, retrieve, top-k) across goroutines.
package workpool

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Weighted wraps golang.org/x/sync/semaphore.Weighted and additionally
// tracks the currently available weight, so callers can introspect
// how saturated the pool is without racing the semaphore itself.
type Weighted struct {
	sem           *semaphore.Weighted
	currentWeight int64
	mu            sync.Mutex
}

// NewWeighted creates a weighted semaphore with the given capacity.
func NewWeighted(maxWeight int64) *Weighted {
	return &Weighted{
		sem:           semaphore.NewWeighted(maxWeight),
		currentWeight: maxWeight,
	}
}

// Acquire acquires the given weight, blocking until it is available or
// ctx is done.
func (w *Weighted) Acquire(ctx context.Context, weight int64) error {
	if err := w.sem.Acquire(ctx, weight); err != nil {
		return err
	}
	w.mu.Lock()
	w.currentWeight -= weight
	w.mu.Unlock()
	return nil
}

// Release returns the given weight to the semaphore.
func (w *Weighted) Release(weight int64) {
	w.mu.Lock()
	w.currentWeight += weight
	w.mu.Unlock()
	w.sem.Release(weight)
}

// Available returns the currently unacquired weight.
func (w *Weighted) Available() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.currentWeight
}

// Parallel splits the half-open range [0, n) into contiguous shards
// and runs fn once per shard, with each shard's [start, end) bounds
// passed in. The number of shards in flight at once is capped at
// GOMAXPROCS, matching the "data-parallel over the outer dimension"
// model the batch operations need: many items/queries, each handled
// sequentially within its shard, but shards run concurrently.
//
// Parallel blocks until every shard has completed. fn must not panic;
// Parallel does not recover on its behalf.
func Parallel(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	shards := runtime.GOMAXPROCS(0)
	if shards > n {
		shards = n
	}
	if shards <= 1 {
		fn(0, n)
		return
	}
	chunk := (n + shards - 1) / shards
	sem := NewWeighted(int64(shards))
	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		start := start
		end := start + chunk
		if end > n {
			end = n
		}
		// Acquire is bounded by `shards` weight total, so this never
		// blocks longer than it takes a running shard to finish.
		_ = sem.Acquire(context.Background(), 1)
		g.Go(func() error {
			defer sem.Release(1)
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait()
}
