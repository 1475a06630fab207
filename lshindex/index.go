// Copyright (c) 2026 The lshindex Authors. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package lshindex

import (
	"fmt"
	"strings"

	"github.com/lshgrid/lshindex/internal/workpool"
	"github.com/lshgrid/lshindex/lshlog"
	"github.com/lshgrid/lshindex/lshmetrics"
	"github.com/lshgrid/lshindex/reservoir"
)

// Empty is the id sentinel used for unfilled reservoir slots and for
// TopK padding. It equals the maximum value of the uint32 id domain.
const Empty = reservoir.Empty

// Index is a rectangular L x R grid of reservoirs, where L is the
// number of hash tables and R = 2^RangePow is the number of buckets
// per table. The grid is a single contiguous allocation, owned
// exclusively by the Index, indexed as table*R+bucket.
//
// The zero value is not usable; construct an Index with New.
type Index struct {
	l          uint32
	r          uint32
	capacity   uint32
	reservoirs []reservoir.Reservoir
	logger     lshlog.Logger
	metrics    *lshmetrics.Collector
}

// New constructs an empty Index with the given shape. The shape
// (L, R, ReservoirCapacity) is fixed for the index's lifetime.
func New(opts Options) (*Index, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	r := uint32(1) << opts.RangePow
	buckets := int(opts.L) * int(r)
	flat := make([]uint32, buckets*int(opts.ReservoirCapacity))
	reservoirs := make([]reservoir.Reservoir, buckets)
	for i := range reservoirs {
		off := i * int(opts.ReservoirCapacity)
		reservoir.Init(&reservoirs[i], flat[off:off+int(opts.ReservoirCapacity)])
	}

	logger := opts.Logger
	if logger == nil {
		logger = lshlog.Noop{}
	}

	idx := &Index{
		l:          opts.L,
		r:          r,
		capacity:   opts.ReservoirCapacity,
		reservoirs: reservoirs,
		logger:     logger,
	}

	if opts.Registerer != nil {
		m, err := lshmetrics.New(opts.Registerer)
		if err != nil {
			return nil, fmt.Errorf("lshindex: registering metrics: %w", err)
		}
		idx.metrics = m
	}

	logger.Infof("lshindex: constructed index L=%d R=%d reservoir_capacity=%d", opts.L, r, opts.ReservoirCapacity)
	return idx, nil
}

// L returns the number of hash tables.
func (idx *Index) L() int { return int(idx.l) }

// R returns the number of buckets per table.
func (idx *Index) R() int { return int(idx.r) }

// ReservoirCapacity returns the maximum number of ids retained per
// bucket.
func (idx *Index) ReservoirCapacity() int { return int(idx.capacity) }

// bucket returns the reservoir for the given table and bucket index.
// Callers must ensure bucket < idx.r; out-of-range hashes are a
// contract violation, not a checked error.
func (idx *Index) bucket(table, bucket uint32) *reservoir.Reservoir {
	return &idx.reservoirs[int(table)*int(idx.r)+int(bucket)]
}

// InsertOne inserts item into the bucket each of the L tables routes
// it to, per hashes. len(hashes) must equal L().
func (idx *Index) InsertOne(item uint32, hashes []uint32) {
	for t := uint32(0); t < idx.l; t++ {
		idx.bucket(t, hashes[t]).Add(item)
	}
	if idx.metrics != nil {
		idx.metrics.ObserveInsert(1, int(idx.l))
	}
}

// InsertBatch inserts N items, items[n] routed per
// hashes[n*L : n*L+L]. Items are processed in parallel; per-item work
// (L reservoir adds) is sequential.
func (idx *Index) InsertBatch(items []uint32, hashes []uint32) {
	n := len(items)
	if n == 0 {
		return
	}
	l := int(idx.l)
	workpool.Parallel(n, func(start, end int) {
		for i := start; i < end; i++ {
			row := hashes[i*l : i*l+l]
			for t := 0; t < l; t++ {
				idx.bucket(uint32(t), row[t]).Add(items[i])
			}
		}
	})
	if idx.metrics != nil {
		idx.metrics.ObserveInsert(n, l)
	}
}

// Retrieve returns a flat buffer holding, for each of numQueries
// queries, the L reservoir snapshots the query's hash vector routes
// to. Query q's data occupies
// out[q*L*C : (q+1)*L*C] as L consecutive C-length reservoir
// snapshots, where C is ReservoirCapacity(). hashes must have length
// numQueries*L.
func (idx *Index) Retrieve(hashes []uint32, numQueries int) []uint32 {
	l := int(idx.l)
	c := int(idx.capacity)
	block := l * c
	out := make([]uint32, numQueries*block)
	workpool.Parallel(numQueries, func(start, end int) {
		for q := start; q < end; q++ {
			row := hashes[q*l : q*l+l]
			base := q * block
			for t := 0; t < l; t++ {
				off := base + t*c
				idx.bucket(uint32(t), row[t]).Retrieve(out[off : off+c])
			}
		}
	})
	return out
}

// Reset restores every reservoir to its construction-time state.
// Callers must ensure no concurrent InsertBatch/InsertOne/Retrieve/TopK
// is in flight.
func (idx *Index) Reset() {
	for i := range idx.reservoirs {
		idx.reservoirs[i].Reset()
	}
	idx.logger.Info("lshindex: reset")
}

// View renders a debug pretty-print of every table and bucket. It is
// not part of the semantic contract.
func (idx *Index) View() string {
	var b strings.Builder
	for t := uint32(0); t < idx.l; t++ {
		fmt.Fprintf(&b, "Table %d\n", t)
		for bk := uint32(0); bk < idx.r; bk++ {
			b.WriteString(idx.bucket(t, bk).View())
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
