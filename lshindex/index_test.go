// Copyright (c) 2026 The lshindex Authors. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package lshindex

import (
	"strings"
	"testing"
)

func TestNewValidatesShape(t *testing.T) {
	cases := []struct {
		name string
		opts Options
		ok   bool
	}{
		{"valid", Options{L: 2, RangePow: 2, ReservoirCapacity: 3}, true},
		{"zero L", Options{L: 0, RangePow: 2, ReservoirCapacity: 3}, false},
		{"zero capacity", Options{L: 2, RangePow: 2, ReservoirCapacity: 0}, false},
		{"range pow too large", Options{L: 2, RangePow: 32, ReservoirCapacity: 3}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			idx, err := New(c.opts)
			if c.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !c.ok && err == nil {
				t.Fatalf("expected an error, got none")
			}
			if c.ok && idx == nil {
				t.Fatalf("expected a non-nil index")
			}
		})
	}
}

func TestShapeAccessors(t *testing.T) {
	idx, err := New(Options{L: 3, RangePow: 4, ReservoirCapacity: 7})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if idx.L() != 3 {
		t.Fatalf("L() = %d, want 3", idx.L())
	}
	if idx.R() != 16 {
		t.Fatalf("R() = %d, want 16", idx.R())
	}
	if idx.ReservoirCapacity() != 7 {
		t.Fatalf("ReservoirCapacity() = %d, want 7", idx.ReservoirCapacity())
	}
}

// TestResetReturnsToConstructionState checks that after Reset, every
// bucket retrieves as all-Empty, and a fresh insert still shows up in
// a later TopK.
func TestResetReturnsToConstructionState(t *testing.T) {
	idx, err := New(Options{L: 2, RangePow: 2, ReservoirCapacity: 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	idx.InsertOne(7, []uint32{1, 2})
	idx.Reset()

	snapshot := idx.Retrieve([]uint32{1, 2}, 1)
	for i, v := range snapshot {
		if v != Empty {
			t.Fatalf("slot %d = %d after Reset, want Empty", i, v)
		}
	}

	idx.InsertOne(99, []uint32{0, 0})
	got := idx.TopK([]uint32{0, 0}, 1, 1)
	if got[0] != 99 {
		t.Fatalf("TopK after Reset+Insert = %v, want [99]", got)
	}
}

func TestViewMentionsEveryTable(t *testing.T) {
	idx, err := New(Options{L: 2, RangePow: 1, ReservoirCapacity: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	idx.InsertOne(5, []uint32{0, 1})

	view := idx.View()
	if !strings.Contains(view, "Table 0") || !strings.Contains(view, "Table 1") {
		t.Fatalf("View() missing a table header: %q", view)
	}
	if !strings.Contains(view, "5") {
		t.Fatalf("View() does not mention inserted id: %q", view)
	}
}
