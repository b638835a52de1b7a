// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

// Slice returns a new buffer of the receiver's kind over the byte range
// [begin, end). Negative indices count from the end; both bounds are then
// clamped to [0, Len]. An empty or inverted range yields a zero-length
// buffer, never an error.
func (b *Buffer) Slice(begin, end int) *Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	length := len(b.bytes)

	from := begin
	if from < 0 {
		from += length
	}
	from = min(length, max(0, from))

	to := end
	if to < 0 {
		to += length
	}

	n := max(0, min(length-from, to-from))
	return newBuffer(b.kind, cloneBytes(b.bytes[from:from+n]))
}

// SliceFrom is Slice with the end bound defaulting to the length.
func (b *Buffer) SliceFrom(begin int) *Buffer {
	b.mu.Lock()
	length := len(b.bytes)
	b.mu.Unlock()
	return b.Slice(begin, length)
}

// Clone returns a full-range copy of the receiver, same kind.
func (b *Buffer) Clone() *Buffer {
	return newBuffer(b.kind, b.snapshot())
}

// Concat returns a new buffer of the receiver's kind holding the
// receiver's bytes followed by each argument's bytes in order. Nil
// arguments are skipped, not errors. The receiver's state is read once
// under its lock, so a concurrent resize cannot corrupt the result;
// argument snapshots are taken afterwards, one lock at a time.
func (b *Buffer) Concat(others ...*Buffer) *Buffer {
	head := b.snapshot()
	parts := make([][]byte, 0, len(others))
	total := len(head)
	for _, o := range others {
		if o == nil {
			continue
		}
		p := o.snapshot()
		total += len(p)
		parts = append(parts, p)
	}

	joined := make([]byte, 0, total)
	joined = append(joined, head...)
	for _, p := range parts {
		joined = append(joined, p...)
	}
	return newBuffer(b.kind, joined)
}

// IndexOf returns the lowest index in [from, to) holding the byte value
// v&0xFF, or -1 when absent. bounds supplies optional from and to values
// (defaults 0 and Len); out-of-range bounds are clamped, not errors.
func (b *Buffer) IndexOf(v int, bounds ...int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	start, end := b.clampBoundsLocked(bounds)
	c := byte(v)
	for i := start; i < end; i++ {
		if b.bytes[i] == c {
			return i
		}
	}
	return -1
}

// LastIndexOf is IndexOf scanning backwards from the upper bound.
func (b *Buffer) LastIndexOf(v int, bounds ...int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	start, end := b.clampBoundsLocked(bounds)
	c := byte(v)
	for i := end - 1; i >= start; i-- {
		if b.bytes[i] == c {
			return i
		}
	}
	return -1
}

// clampBoundsLocked resolves optional from/to search bounds against the
// current length. Callers hold b.mu.
func (b *Buffer) clampBoundsLocked(bounds []int) (start, end int) {
	length := len(b.bytes)
	from, to := 0, length
	if len(bounds) > 0 {
		from = bounds[0]
	}
	if len(bounds) > 1 {
		to = bounds[1]
	}
	start = max(0, min(length-1, from))
	end = max(0, min(length, to))
	return start, end
}
