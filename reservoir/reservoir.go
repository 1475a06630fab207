// Copyright (c) 2026 The lshindex Authors. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package reservoir implements a fixed-capacity, concurrency-safe
// reservoir sampler: a bounded uniform random sample over a stream of
// ids of unknown length, offered one at a time via Add.
package reservoir

import (
	"fmt"
	"strings"
	"sync"

	"github.com/lshgrid/lshindex/internal/randpool"
)

// Empty is the sentinel id for unfilled slots, fixed to the maximum
// value of the id domain so that ascending sorts push it to the end
// of a block.
const Empty uint32 = 1<<32 - 1

// Reservoir is a fixed-capacity bounded sample of ids, realized via
// classical reservoir sampling. The zero value is not usable; build
// one with New or Init.
//
// All exported methods except Reset are safe for concurrent use. Reset is a quiescent-only operation: callers must not call it
// concurrently with Add or Retrieve on the same Reservoir.
type Reservoir struct {
	mu       sync.Mutex
	capacity uint32
	attempts uint32
	slots    []uint32
}

// New allocates a Reservoir with its own backing storage of the given
// capacity. capacity must be positive; this is a precondition, not a
// checked invariant.
func New(capacity uint32) *Reservoir {
	r := &Reservoir{}
	Init(r, make([]uint32, capacity))
	return r
}

// Init initializes r in place using slots as its backing storage,
// whose length becomes the reservoir's capacity. Init lets a caller
// (notably the lshindex package) carve many reservoirs out of one
// contiguous allocation instead of allocating each one separately.
//
// Init must be called exactly once, before any other use of r, and r
// must not already be in use by another goroutine.
func Init(r *Reservoir, slots []uint32) {
	r.capacity = uint32(len(slots))
	r.attempts = 0
	r.slots = slots
	for i := range slots {
		slots[i] = Empty
	}
}

// Add offers id to the reservoir. Each id ever offered has
// probability capacity/attempts of being present once attempts
// reaches capacity; attempts is incremented on every call, including
// calls whose sampled slot is rejected. Add never fails and is atomic
// with respect to other Add and Retrieve calls on the same Reservoir.
func (r *Reservoir) Add(id uint32) {
	r.mu.Lock()
	if r.attempts < r.capacity {
		r.slots[r.attempts] = id
		r.attempts++
		r.mu.Unlock()
		return
	}
	rng := randpool.Get()
	loc := rng.Int63n(int64(r.attempts))
	randpool.Put(rng)
	if uint32(loc) < r.capacity {
		r.slots[loc] = id
	}
	r.attempts++
	r.mu.Unlock()
}

// Retrieve copies all capacity slot values, including Empty padding,
// into buf, atomically with respect to concurrent Add calls. buf must
// have length equal to Capacity().
func (r *Reservoir) Retrieve(buf []uint32) {
	r.mu.Lock()
	copy(buf, r.slots)
	r.mu.Unlock()
}

// Reset sets all slots back to Empty and attempts back to 0. Callers
// must ensure no concurrent Add or Retrieve is in flight.
func (r *Reservoir) Reset() {
	r.mu.Lock()
	for i := range r.slots {
		r.slots[i] = Empty
	}
	r.attempts = 0
	r.mu.Unlock()
}

// Capacity returns the reservoir's fixed capacity.
func (r *Reservoir) Capacity() uint32 {
	return r.capacity
}

// Attempts returns the total number of Add calls ever made on r, not
// the number of ids currently stored.
func (r *Reservoir) Attempts() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempts
}

// View renders a debug pretty-print of the reservoir's contents. It
// is not part of the semantic contract and its format may change.
func (r *Reservoir) View() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	filled := r.attempts
	if filled > r.capacity {
		filled = r.capacity
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Reservoir [%d/%d] ", r.attempts, r.capacity)
	for i := uint32(0); i < filled; i++ {
		fmt.Fprintf(&b, "%d ", r.slots[i])
	}
	return b.String()
}
