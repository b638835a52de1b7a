// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf_test

import (
	"bytes"
	"testing"

	"code.hybscloud.com/bytebuf"
)

// --- Indexed access ---

func TestSetGet_RoundTripWithTruncation(t *testing.T) {
	b, err := bytebuf.NewSized(bytebuf.Mutable, 4)
	if err != nil {
		t.Fatalf("NewSized: %v", err)
	}
	if err := b.Set(1, 0x1FF); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := b.Get(1)
	if !ok {
		t.Fatalf("Get(1): absent, want present")
	}
	if got != 0xFF {
		t.Fatalf("Get(1)=%#x want %#x (value truncated to one byte)", got, 0xFF)
	}
}

func TestGet_OutOfRangeIsAbsentNotError(t *testing.T) {
	b, err := bytebuf.FromBytes(bytebuf.Immutable, []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	for _, i := range []int{-1, 3, 1 << 20} {
		if _, ok := b.Get(i); ok {
			t.Fatalf("Get(%d): present, want absent", i)
		}
	}
}

func TestSet_ImmutableIsSilentNoop(t *testing.T) {
	b, err := bytebuf.FromBytes(bytebuf.Immutable, []byte{7})
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if err := b.Set(0, 42); err != nil {
		t.Fatalf("Set on Immutable: err=%v want nil (no-op)", err)
	}
	got, _ := b.Get(0)
	if got != 7 {
		t.Fatalf("content changed: got %d want 7", got)
	}
	if err := b.Set(-5, 1); err != nil {
		t.Fatalf("Set(-5) on Immutable: err=%v want nil (kind gate precedes index check)", err)
	}
}

func TestSet_GrowsZeroFilled(t *testing.T) {
	b, err := bytebuf.NewSized(bytebuf.Mutable, 0)
	if err != nil {
		t.Fatalf("NewSized: %v", err)
	}
	if err := b.Set(3, 65); err != nil {
		t.Fatalf("Set(3, 65): %v", err)
	}
	if b.Len() != 4 {
		t.Fatalf("Len=%d want 4", b.Len())
	}
	if got := b.Bytes(); !bytes.Equal(got, []byte{0, 0, 0, 65}) {
		t.Fatalf("content=%v want [0 0 0 65]", got)
	}
}

func TestByteAt_WindowsSameKind(t *testing.T) {
	b, err := bytebuf.FromBytes(bytebuf.Immutable, []byte{0x41, 0x42, 0x43})
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	one := b.ByteAt(1)
	if one.Kind() != bytebuf.Immutable {
		t.Fatalf("kind=%v want Immutable", one.Kind())
	}
	if got := one.Bytes(); !bytes.Equal(got, []byte{0x42}) {
		t.Fatalf("content=%v want [0x42]", got)
	}
	if out := b.ByteAt(17); out.Len() != 0 {
		t.Fatalf("out-of-range ByteAt: Len=%d want 0", out.Len())
	}
}

// --- Length & growth ---

func TestSetLen_ShrinkZeroesDiscardedTail(t *testing.T) {
	b, err := bytebuf.FromBytes(bytebuf.Mutable, []byte{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if err := b.SetLen(2); err != nil {
		t.Fatalf("SetLen(2): %v", err)
	}
	if err := b.SetLen(5); err != nil {
		t.Fatalf("SetLen(5): %v", err)
	}
	if got := b.Bytes(); !bytes.Equal(got, []byte{1, 2, 0, 0, 0}) {
		t.Fatalf("stale bytes resurfaced: %v want [1 2 0 0 0]", got)
	}
}

func TestSetLen_ImmutableIsSilentNoop(t *testing.T) {
	b, err := bytebuf.FromBytes(bytebuf.Immutable, []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if err := b.SetLen(0); err != nil {
		t.Fatalf("SetLen on Immutable: err=%v want nil", err)
	}
	if b.Len() != 3 {
		t.Fatalf("Len=%d want 3 (unchanged)", b.Len())
	}
}

// --- Raw handoff ---

func TestBytes_ReturnsOwnedCopy(t *testing.T) {
	b, err := bytebuf.FromBytes(bytebuf.Mutable, []byte{9, 9, 9})
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	out := b.Bytes()
	out[0] = 0
	if got, _ := b.Get(0); got != 9 {
		t.Fatalf("external write leaked into buffer: got %d want 9", got)
	}
	if len(out) != cap(out) {
		t.Fatalf("handed-off region not length-exact: len=%d cap=%d", len(out), cap(out))
	}
}

func TestFromBytes_CopiesInput(t *testing.T) {
	src := []byte{1, 2, 3}
	b, err := bytebuf.FromBytes(bytebuf.Mutable, src)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	src[0] = 99
	if got, _ := b.Get(0); got != 1 {
		t.Fatalf("buffer aliases caller slice: got %d want 1", got)
	}
}

// --- Stringification ---

func TestString_DiagnosticLabel(t *testing.T) {
	b, err := bytebuf.NewSized(bytebuf.Mutable, 12)
	if err != nil {
		t.Fatalf("NewSized: %v", err)
	}
	if got := b.String(); got != "[Mutable 12]" {
		t.Fatalf("String=%q want %q", got, "[Mutable 12]")
	}
	s, err := bytebuf.FromBytes(bytebuf.Immutable, nil)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if got := s.String(); got != "[Immutable 0]" {
		t.Fatalf("String=%q want %q", got, "[Immutable 0]")
	}
}

func TestString_ZeroValueIsUninitialized(t *testing.T) {
	var b bytebuf.Buffer
	if got := b.String(); got != "[object Binary]" {
		t.Fatalf("String=%q want %q", got, "[object Binary]")
	}
}

func TestKind_String(t *testing.T) {
	if bytebuf.Mutable.String() != "Mutable" || bytebuf.Immutable.String() != "Immutable" || bytebuf.Binary.String() != "Binary" {
		t.Fatalf("Kind.String mismatch: %s/%s/%s", bytebuf.Mutable, bytebuf.Immutable, bytebuf.Binary)
	}
}
