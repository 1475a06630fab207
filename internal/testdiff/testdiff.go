// Copyright (c) 2026 The lshindex Authors. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package testdiff provides readable failure messages for the
// []uint32-shaped comparisons this module's tests make constantly
// (reservoir snapshots, retrieve blocks, top-k output), skipping
// reflection in favor of an explicit index-by-index diff.
package testdiff

import "fmt"

// Uint32Slices returns a human-readable description of how a and b
// differ, or "" if they are equal.
func Uint32Slices(a, b []uint32) string {
	if len(a) != len(b) {
		return fmt.Sprintf("lengths differ: %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			return fmt.Sprintf("index %d differs: %d != %d", i, a[i], b[i])
		}
	}
	return ""
}

// ContainsUint32 reports whether the elements of a and b are equal as
// multisets, ignoring order. On mismatch it reports the first element
// found in one side but not accounted for in the other.
func ContainsUint32(a, b []uint32) string {
	counts := make(map[uint32]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
	}
	for v, c := range counts {
		if c != 0 {
			return fmt.Sprintf("multiset mismatch at id %d: count diff %d", v, c)
		}
	}
	if len(a) != len(b) {
		return fmt.Sprintf("lengths differ: %d != %d", len(a), len(b))
	}
	return ""
}
