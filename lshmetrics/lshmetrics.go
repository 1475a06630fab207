// Copyright (c) 2026 The lshindex Authors. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package lshmetrics optionally instruments an Index with Prometheus
// counters and histograms. It registers no HTTP handler and exposes
// no scrape endpoint; wiring a metrics server, if any, is the
// caller's responsibility, consistent with lshindex carrying no RPC
// surface of its own.
package lshmetrics

import "github.com/prometheus/client_golang/prometheus"

// Collector holds the metrics an Index reports when constructed with
// a non-nil prometheus.Registerer.
type Collector struct {
	addTotal    prometheus.Counter
	insertTotal prometheus.Counter
	topKQueries prometheus.Counter
	topKSize    prometheus.Histogram
}

// New creates a Collector and registers its metrics with reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		addTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lshindex",
			Name:      "reservoir_add_total",
			Help:      "Total number of Reservoir.Add calls across all buckets.",
		}),
		insertTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lshindex",
			Name:      "items_inserted_total",
			Help:      "Total number of items passed to InsertOne/InsertBatch.",
		}),
		topKQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lshindex",
			Name:      "topk_queries_total",
			Help:      "Total number of queries served by TopK.",
		}),
		topKSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lshindex",
			Name:      "topk_k",
			Help:      "Distribution of the k requested in TopK calls.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
	for _, collector := range []prometheus.Collector{c.addTotal, c.insertTotal, c.topKQueries, c.topKSize} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ObserveInsert records that n items were inserted, each touching L
// reservoirs.
func (c *Collector) ObserveInsert(n int, l int) {
	c.insertTotal.Add(float64(n))
	c.addTotal.Add(float64(n * l))
}

// ObserveTopK records that a TopK call served numQueries queries
// asking for k neighbors each.
func (c *Collector) ObserveTopK(numQueries, k int) {
	c.topKQueries.Add(float64(numQueries))
	c.topKSize.Observe(float64(k))
}
