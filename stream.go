// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"fmt"
	"io"
)

// FromReader returns a buffer containing every byte read from r until
// EOF. The scratch buffer doubles as it fills, so total copy work is
// O(n) amortized in the number of bytes read.
//
// When r is also an io.Closer it is closed on every exit path, success
// and failure alike. A read failure is returned wrapped so that
// errors.Is(err, ErrIO) holds and errors.Is against the cause holds too.
// iox.ErrWouldBlock from a non-blocking source is retried per the
// configured policy (yield-and-retry by default); iox.ErrMore means the
// read is usable and more follows, so draining simply continues.
func FromReader(kind Kind, r io.Reader, opts ...ReadOption) (*Buffer, error) {
	if !kind.valid() {
		return nil, ErrAbstractKind
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrInvalidArgument)
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	o := defaultReadOptions
	for _, fn := range opts {
		fn(&o)
	}

	buf := make([]byte, o.ChunkSize)
	count := 0
	for {
		if count == len(buf) {
			grown := make([]byte, len(buf)*2)
			copy(grown, buf)
			buf = grown
		}
		n, err := r.Read(buf[count:])
		count += n
		if o.ReadLimit > 0 && count > o.ReadLimit {
			return nil, ErrTooLong
		}
		if err != nil {
			switch {
			case err == io.EOF:
				return newBuffer(kind, cloneBytes(buf[:count])), nil
			case err == ErrMore:
				// Usable completion with more to follow; keep draining.
				// A completion carrying zero bytes is no progress at all
				// and retrying it would spin forever.
				if n == 0 {
					return nil, fmt.Errorf("%w: %w", ErrIO, io.ErrNoProgress)
				}
			case err == ErrWouldBlock && o.waitOnceOnWouldBlock():
				// retry after yield/sleep
			default:
				return nil, fmt.Errorf("%w: %w", ErrIO, err)
			}
			continue
		}
		// Guard against broken Readers that violate the io.Reader contract
		// by returning (0, nil) on a non-empty buffer.
		if n == 0 {
			return nil, fmt.Errorf("%w: %w", ErrIO, io.ErrNoProgress)
		}
	}
}
