// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bytebuf provides a byte-buffer value family: a growable, in-place
// writable buffer (kind Mutable) and a fixed byte sequence (kind Immutable)
// sharing one representation and one algorithm set.
//
// Semantics and design:
//   - Value semantics: every constructor copies its input and every derived
//     buffer (slice, concat, split segment, conversion) owns independent
//     storage. Aliasing between instances is impossible by construction.
//   - Forgiving reads: out-of-range indexed reads and empty slice ranges are
//     not errors. Get reports absence via its second result, Slice yields a
//     zero-length buffer. Only malformed inputs fail (ErrInvalidArgument,
//     ErrUnsupportedEncoding, ErrAbstractKind).
//   - Kind gating, not hierarchy: Mutable and Immutable are a closed pair of
//     behaviors over the same struct. Mutations on an Immutable buffer are
//     silent no-ops; size-changing operations return new buffers instead.
//   - Amortized growth: capacity doubles on reallocation, so N sequential
//     appends cost O(N) copied bytes overall. Shrinking zero-fills the
//     discarded tail so stale bytes can never resurface through a later grow.
//   - Normalized handoff: Bytes trims capacity to logical length before
//     copying out, so external owners only ever see length-exact regions.
//   - Single-writer discipline: a per-instance mutex guards every operation
//     that reads length and storage together. Snapshots are taken under the
//     lock and worked on outside it; no operation holds two instance locks.
//
// Construction from an io.Reader honors iox.ErrWouldBlock as a control-flow
// signal (yield-and-retry by default, configurable via ReadOption) and always
// closes the source when it is an io.Closer, on success and failure alike.
package bytebuf

import (
	"fmt"
	"sync"
)

// Kind selects the behavioral variant of a Buffer.
type Kind uint8

const (
	// Binary is the abstract base kind. It exists only as the zero value
	// and cannot be instantiated.
	Binary Kind = iota
	// Mutable buffers permit in-place indexed writes and resizing.
	Mutable
	// Immutable buffers have fixed content; size-changing operations
	// produce new instances instead.
	Immutable
)

func (k Kind) String() string {
	switch k {
	case Mutable:
		return "Mutable"
	case Immutable:
		return "Immutable"
	default:
		return "Binary"
	}
}

// valid reports whether k names a constructible kind.
func (k Kind) valid() bool { return k == Mutable || k == Immutable }

// minCapacity is the allocation floor for sized construction.
const minCapacity = 8

// Buffer is an owned contiguous byte region plus a logical length.
//
// The region beyond the logical length (the slack) is never observable:
// reads are bounded to the logical length and Bytes normalizes before
// copying out. The zero value is an uninitialized buffer of the abstract
// kind; use the constructors.
type Buffer struct {
	mu    sync.Mutex
	bytes []byte // len(bytes) == logical length, cap(bytes) == capacity
	kind  Kind
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// newBuffer wraps b without copying. Callers must pass ownership.
func newBuffer(kind Kind, b []byte) *Buffer {
	return &Buffer{kind: kind, bytes: b}
}

// Kind returns the buffer's behavioral kind.
func (b *Buffer) Kind() Kind { return b.kind }

// Len returns the current logical length in bytes.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.bytes)
}

// SetLen resizes a Mutable buffer to n bytes.
//
// Shrinking zero-fills the discarded tail before truncating. Growing
// reallocates with capacity doubling only when n exceeds the current
// capacity. On an Immutable buffer SetLen is a silent no-op. A negative n
// fails with ErrInvalidArgument.
func (b *Buffer) SetLen(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidArgument, n)
	}
	if b.kind != Mutable {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.setLenLocked(n)
	return nil
}

// setLenLocked implements resize. Callers hold b.mu.
func (b *Buffer) setLenLocked(n int) {
	switch {
	case n < len(b.bytes):
		// Zero the tail before it becomes slack so a later grow within
		// the same capacity cannot resurface stale data.
		clear(b.bytes[n:])
		b.bytes = b.bytes[:n]
	case n <= cap(b.bytes):
		// Slack is kept zeroed (initial allocation and the shrink path
		// above), so growing within capacity is a reslice.
		b.bytes = b.bytes[:n]
	default:
		newCap := cap(b.bytes) * 2
		if newCap < n {
			newCap = n
		}
		grown := make([]byte, n, newCap)
		copy(grown, b.bytes)
		b.bytes = grown
	}
}

// Get returns the byte at index i and whether i is in range. An
// out-of-range read is not an error; it reports absence.
func (b *Buffer) Get(i int) (byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i >= len(b.bytes) {
		return 0, false
	}
	return b.bytes[i], true
}

// Set stores v&0xFF at index i of a Mutable buffer, growing (zero-filled)
// to i+1 when i is beyond the current length. On an Immutable buffer Set
// is a silent no-op. A negative index fails with ErrInvalidArgument; a
// value outside 0..255 is truncated to one byte, never an error.
func (b *Buffer) Set(i, v int) error {
	if b.kind != Mutable {
		return nil
	}
	if i < 0 {
		return fmt.Errorf("%w: negative index %d", ErrInvalidArgument, i)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if i >= len(b.bytes) {
		b.setLenLocked(i + 1)
	}
	b.bytes[i] = byte(v)
	return nil
}

// ByteAt returns a new buffer of the receiver's kind holding the single
// byte at index i, or a zero-length buffer when i is out of range.
func (b *Buffer) ByteAt(i int) *Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i >= len(b.bytes) {
		return newBuffer(b.kind, make([]byte, 0, minCapacity))
	}
	return newBuffer(b.kind, []byte{b.bytes[i]})
}

// Bytes returns an owned, length-exact copy of the content. Internal
// storage is normalized (capacity trimmed to length) first, so slack
// never leaves the instance.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.normalizeLocked()
	return cloneBytes(b.bytes)
}

// normalizeLocked trims capacity down to the logical length. Callers hold b.mu.
func (b *Buffer) normalizeLocked() {
	if len(b.bytes) != cap(b.bytes) {
		exact := make([]byte, len(b.bytes))
		copy(exact, b.bytes)
		b.bytes = exact
	}
}

// snapshot returns a private copy of the content, taken under the lock.
func (b *Buffer) snapshot() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneBytes(b.bytes)
}

// String returns a diagnostic label, not the content: "[Mutable 12]" once
// storage exists, "[object Mutable]" for the uninitialized zero value.
// Decode content explicitly via DecodeToString.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.bytes != nil {
		return fmt.Sprintf("[%s %d]", b.kind, len(b.bytes))
	}
	return fmt.Sprintf("[object %s]", b.kind)
}
