// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"runtime"
	"time"
)

// ReadOptions configures construction from an io.Reader.
type ReadOptions struct {
	// ReadLimit caps the total number of bytes accepted (bytes). Zero
	// means no limit; exceeding it fails with ErrTooLong.
	ReadLimit int

	// ChunkSize is the initial scratch buffer size. The buffer doubles
	// whenever it fills, bounding total copy work to O(n) amortized.
	ChunkSize int

	// RetryDelay controls how iox.ErrWouldBlock from the source is handled:
	//   - negative: surface immediately (wrapped as ErrIO)
	//   - zero: yield (runtime.Gosched) and retry
	//   - positive: sleep for the duration and retry
	RetryDelay time.Duration
}

var defaultReadOptions = ReadOptions{
	ReadLimit:  0,
	ChunkSize:  1024,
	RetryDelay: 0, // default: cooperative blocking; construction is synchronous
}

type ReadOption func(*ReadOptions)

// WithReadLimit caps the total bytes accepted from the source.
func WithReadLimit(limit int) ReadOption {
	return func(o *ReadOptions) { o.ReadLimit = limit }
}

// WithChunkSize sets the initial scratch buffer size. Non-positive values
// are ignored.
func WithChunkSize(n int) ReadOption {
	return func(o *ReadOptions) {
		if n > 0 {
			o.ChunkSize = n
		}
	}
}

// WithRetryDelay sets the wait policy used when the source returns iox.ErrWouldBlock.
func WithRetryDelay(d time.Duration) ReadOption {
	return func(o *ReadOptions) { o.RetryDelay = d }
}

// WithBlock enables cooperative blocking (yield-and-retry) on iox.ErrWouldBlock.
func WithBlock() ReadOption {
	return func(o *ReadOptions) { o.RetryDelay = 0 }
}

// WithNonblock surfaces iox.ErrWouldBlock immediately instead of retrying.
func WithNonblock() ReadOption {
	return func(o *ReadOptions) { o.RetryDelay = -1 }
}

func (o *ReadOptions) waitOnceOnWouldBlock() bool {
	// returns whether the caller should retry
	if o.RetryDelay < 0 {
		return false
	}
	if o.RetryDelay == 0 {
		runtime.Gosched()
		return true
	}
	time.Sleep(o.RetryDelay)
	return true
}
