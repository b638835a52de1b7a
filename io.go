// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"fmt"
	"io"
)

// WriteTo writes a snapshot of the content to w, implementing
// io.WriterTo. Short writes are retried per the io.Writer contract; a
// writer making zero progress without an error yields io.ErrShortWrite.
// Semantic control-flow errors (ErrWouldBlock, ErrMore) from w are
// propagated unchanged together with the progress count.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, fmt.Errorf("%w: nil writer", ErrInvalidArgument)
	}
	p := b.snapshot()
	var total int64
	for off := 0; off < len(p); {
		n, err := w.Write(p[off:])
		if n > 0 {
			off += n
			total += int64(n)
		}
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}

// ReadFrom appends every byte read from r until EOF, implementing
// io.ReaderFrom for Mutable buffers; an Immutable receiver fails with
// ErrInvalidArgument. Reads go into a local chunk, so the instance lock
// is never held across I/O. iox.ErrWouldBlock from r is retried with a
// cooperative yield; a broken reader returning (0, nil) yields
// io.ErrNoProgress.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	if b.kind != Mutable {
		return 0, fmt.Errorf("%w: ReadFrom requires the Mutable kind", ErrInvalidArgument)
	}
	if r == nil {
		return 0, fmt.Errorf("%w: nil reader", ErrInvalidArgument)
	}
	o := defaultReadOptions
	chunk := make([]byte, o.ChunkSize)
	var total int64
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			total += int64(n)
			if aerr := b.Append(chunk[:n]); aerr != nil {
				return total, aerr
			}
		}
		if err != nil {
			switch {
			case err == io.EOF:
				return total, nil
			case err == ErrMore:
				// Usable completion; keep reading. Zero bytes with ErrMore
				// is no progress at all and would spin forever.
				if n == 0 {
					return total, io.ErrNoProgress
				}
			case err == ErrWouldBlock && o.waitOnceOnWouldBlock():
				// retry after yield
			default:
				return total, err
			}
			continue
		}
		if n == 0 {
			return total, io.ErrNoProgress
		}
	}
}

// Append grows a Mutable buffer in place by the bytes of p. An Immutable
// receiver fails with ErrInvalidArgument.
func (b *Buffer) Append(p []byte) error {
	if b.kind != Mutable {
		return fmt.Errorf("%w: Append requires the Mutable kind", ErrInvalidArgument)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	old := len(b.bytes)
	b.setLenLocked(old + len(p))
	copy(b.bytes[old:], p)
	return nil
}
