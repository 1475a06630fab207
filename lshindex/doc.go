// Copyright (c) 2026 The lshindex Authors. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package lshindex implements an in-memory approximate-nearest-neighbor
// index built on locality-sensitive hashing with reservoir sampling
// per bucket.
//
// Callers supply item identifiers together with pre-computed hash
// code vectors, one code per hash table. The index stores, for each
// table and bucket, a bounded random sample of item ids that collided
// in that bucket. Given a query's hash-code vector, the index
// estimates the most frequent colliding ids across the tables: the
// top-k approximate nearest neighbors.
//
// The hash-function family that maps items to codes, any vector
// similarity re-ranking, persistence, and any RPC/CLI surface are all
// external to this package; the index only ever stores identifiers it
// is given.
//
// # Concurrency
//
// InsertBatch, InsertOne, Retrieve, and TopK are safe for concurrent
// use with each other and with themselves. Reset is not: callers must
// ensure no other method is in flight on the same Index while Reset
// runs.
package lshindex
