// Copyright (c) 2026 The lshindex Authors. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package randpool hands out per-goroutine pseudo-random sources for
// the reservoir sampler's draws. A shared global generator would
// serialize every reservoir in the index behind one lock; a
// thread-local generator, recycled through a sync.Pool, lets draws in
// different reservoirs proceed without contending on one generator.
// The draw itself still runs inside the calling reservoir's own
// critical section.
package randpool

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

var pool = sync.Pool{
	New: func() any {
		return rand.New(rand.NewSource(seed()))
	},
}

// Get returns a *rand.Rand for exclusive use by the calling goroutine.
// The Rand must be returned with Put once the goroutine is done with
// it; it must not be retained or shared across goroutines.
func Get() *rand.Rand {
	return pool.Get().(*rand.Rand)
}

// Put returns a *rand.Rand obtained from Get back to the pool.
func Put(r *rand.Rand) {
	pool.Put(r)
}

// seed produces a fresh seed for a newly minted generator. It prefers
// crypto/rand for cross-goroutine decorrelation and falls back to the
// wall clock if the system entropy source is unavailable.
func seed() uint64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err == nil {
		return binary.LittleEndian.Uint64(b[:])
	}
	return uint64(time.Now().UnixNano())
}
