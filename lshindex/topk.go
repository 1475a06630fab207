// Copyright (c) 2026 The lshindex Authors. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package lshindex

import (
	"slices"
	"sort"

	"github.com/lshgrid/lshindex/internal/workpool"
	"github.com/lshgrid/lshindex/reservoir"
)

// TopK estimates, for each of numQueries queries, the k ids that
// collided most often across the L reservoirs the query's hash
// vector routes to. out[q*k+j] is the j-th most frequent id for query
// q, or Empty if fewer than j+1 unique ids collided.
//
// Ties in collision count are broken deterministically by ascending
// id, a rule chosen and documented here rather than left to whatever
// order an unstable sort happens to produce.
//
// Queries are processed in parallel; the per-query sort-and-group
// work is sequential.
func (idx *Index) TopK(hashes []uint32, numQueries int, k int) []uint32 {
	scratch := idx.Retrieve(hashes, numQueries)
	block := int(idx.l) * int(idx.capacity)

	out := make([]uint32, numQueries*k)
	workpool.Parallel(numQueries, func(start, end int) {
		for q := start; q < end; q++ {
			topKBlock(scratch[q*block:(q+1)*block], k, out[q*k:(q+1)*k])
		}
	})

	if idx.metrics != nil {
		idx.metrics.ObserveTopK(numQueries, k)
	}
	return out
}

// topKBlock computes the top-k ids by collision count within a single
// query's retrieved block b, writing exactly k ids (padded with
// Empty) into out. b is sorted in place; it is scratch space owned
// exclusively by the caller for the duration of this call.
func topKBlock(b []uint32, k int, out []uint32) {
	slices.Sort(b) // Empty == MaxUint32 sorts last.

	type run struct {
		id    uint32
		count int
	}
	var runs []run
	for i := 0; i < len(b); {
		j := i + 1
		for j < len(b) && b[j] == b[i] {
			j++
		}
		if b[i] != reservoir.Empty {
			runs = append(runs, run{id: b[i], count: j - i})
		}
		i = j
	}

	sort.SliceStable(runs, func(a, c int) bool {
		if runs[a].count != runs[c].count {
			return runs[a].count > runs[c].count
		}
		return runs[a].id < runs[c].id
	})

	n := len(runs)
	if n > k {
		n = k
	}
	for i := 0; i < n; i++ {
		out[i] = runs[i].id
	}
	for i := n; i < k; i++ {
		out[i] = reservoir.Empty
	}
}
