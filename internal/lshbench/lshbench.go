// Copyright (c) 2026 The lshindex Authors. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package lshbench generates synthetic items and hash vectors for
// benchmarking and fuzz/property testing of lshindex. It is
// deliberately not part of the library's public surface, since a
// synthetic-workload generator has no place in an index's production
// API; it lives in internal/ and is reachable only from this module's
// own tests and benchmarks.
package lshbench

import "github.com/lshgrid/lshindex/internal/randpool"

// RandomHashes fills hashes (length n*l) with uniformly random bucket
// indices in [0, r), one per item per table, mirroring the reference
// C++ add_random_items helper's synthetic workload generator.
func RandomHashes(n, l, r int, hashes []uint32) {
	rng := randpool.Get()
	defer randpool.Put(rng)
	for i := 0; i < n*l; i++ {
		hashes[i] = uint32(rng.Intn(r))
	}
}

// Items returns the identity item assignment 0..n-1, the simplest
// item universe for a smoke test or benchmark.
func Items(n int) []uint32 {
	items := make([]uint32, n)
	for i := range items {
		items[i] = uint32(i)
	}
	return items
}
