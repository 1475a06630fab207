// Copyright (c) 2026 The lshindex Authors. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package lshindex

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lshgrid/lshindex/lshlog"
)

// Options configures a new Index. L, RangePow, and ReservoirCapacity
// are fixed for the lifetime of the index they create.
type Options struct {
	// L is the number of independent hash tables. Must be positive.
	L uint32
	// RangePow determines the number of buckets per table,
	// R = 1<<RangePow. Must be less than 32.
	RangePow uint32
	// ReservoirCapacity is the maximum number of ids retained per
	// bucket. Must be positive.
	ReservoirCapacity uint32

	// Logger receives construction and reset notices. If nil, logging
	// is a no-op.
	Logger lshlog.Logger

	// Registerer, if non-nil, receives the index's Prometheus metrics.
	// Leaving it nil disables metrics collection entirely.
	Registerer prometheus.Registerer
}

func (o Options) validate() error {
	if o.L == 0 {
		return fmt.Errorf("lshindex: L must be positive")
	}
	if o.ReservoirCapacity == 0 {
		return fmt.Errorf("lshindex: ReservoirCapacity must be positive")
	}
	if o.RangePow >= 32 {
		return fmt.Errorf("lshindex: RangePow must be less than 32, got %d", o.RangePow)
	}
	return nil
}
