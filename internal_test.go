// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"math/bits"
	"testing"
)

func TestGrowth_AmortizedDoublingBoundsReallocations(t *testing.T) {
	b, err := NewSized(Mutable, 0)
	if err != nil {
		t.Fatalf("NewSized: %v", err)
	}
	const n = 1 << 14
	reallocs := 0
	lastCap := cap(b.bytes)
	for i := 0; i < n; i++ {
		if err := b.Set(i, i); err != nil {
			t.Fatalf("Set(%d): %v", i, err)
		}
		if c := cap(b.bytes); c != lastCap {
			reallocs++
			lastCap = c
		}
	}
	// Doubling growth from the 8-byte floor: at most log2(n)+1 reallocations.
	bound := bits.Len(uint(n)) + 1
	if reallocs > bound {
		t.Fatalf("reallocations=%d exceeds O(log n) bound %d", reallocs, bound)
	}
	if len(b.bytes) != n {
		t.Fatalf("length=%d want %d", len(b.bytes), n)
	}
}

func TestGrowth_CapacityNeverBelowLength(t *testing.T) {
	b, err := NewSized(Mutable, 3)
	if err != nil {
		t.Fatalf("NewSized: %v", err)
	}
	for _, n := range []int{100, 7, 0, 1 << 10} {
		b.setLenLocked(n)
		if cap(b.bytes) < len(b.bytes) {
			t.Fatalf("capacity %d < length %d after setLen(%d)", cap(b.bytes), len(b.bytes), n)
		}
	}
}

func TestGrowth_WithinCapacityDoesNotReallocate(t *testing.T) {
	b, err := NewSized(Mutable, 0)
	if err != nil {
		t.Fatalf("NewSized: %v", err)
	}
	b.setLenLocked(64)
	before := cap(b.bytes)
	b.setLenLocked(16)
	b.setLenLocked(64)
	if cap(b.bytes) != before {
		t.Fatalf("grow within capacity reallocated: cap %d -> %d", before, cap(b.bytes))
	}
}

func TestSizedConstruction_AllocationFloor(t *testing.T) {
	b, err := NewSized(Mutable, 1)
	if err != nil {
		t.Fatalf("NewSized: %v", err)
	}
	if cap(b.bytes) != minCapacity {
		t.Fatalf("cap=%d want floor %d", cap(b.bytes), minCapacity)
	}
	if len(b.bytes) != 1 {
		t.Fatalf("len=%d want 1", len(b.bytes))
	}
}

func TestBytes_NormalizesStorageInPlace(t *testing.T) {
	b, err := NewSized(Mutable, 1)
	if err != nil {
		t.Fatalf("NewSized: %v", err)
	}
	if cap(b.bytes) == len(b.bytes) {
		t.Fatalf("precondition: buffer should carry slack")
	}
	b.Bytes()
	if cap(b.bytes) != len(b.bytes) {
		t.Fatalf("Bytes did not normalize: len=%d cap=%d", len(b.bytes), cap(b.bytes))
	}
}

func TestShrink_ZeroesSlackInsideCapacity(t *testing.T) {
	b, err := FromBytes(Mutable, []byte{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	b.setLenLocked(2)
	slack := b.bytes[2:cap(b.bytes)]
	for i, c := range slack {
		if c != 0 {
			t.Fatalf("slack[%d]=%d want 0", i, c)
		}
	}
}
