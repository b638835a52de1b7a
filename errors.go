// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"errors"

	"code.hybscloud.com/iox"
)

// Semantic control-flow errors from non-blocking sources, re-exposed as
// package-level aliases so callers of FromReader and ReadFrom can
// reference them without importing iox directly.
var (
	// ErrWouldBlock means "no further progress without waiting". In
	// Nonblock mode it is surfaced wrapped as ErrIO together with this
	// value; retry the construction after readiness.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means "this completion is usable and more completions will
	// follow". Draining continues transparently.
	ErrMore = iox.ErrMore
)

var (
	// ErrInvalidArgument reports a value that cannot be coerced into the
	// requested shape: a non-numeric element, a negative index or length,
	// an unpaired charset argument, or an unrecognized delimiter.
	ErrInvalidArgument = errors.New("bytebuf: invalid argument")

	// ErrUnsupportedEncoding reports an unrecognized charset name.
	ErrUnsupportedEncoding = errors.New("bytebuf: unsupported encoding")

	// ErrAbstractKind reports an attempt to construct the abstract base
	// kind. Only Mutable and Immutable buffers can be instantiated.
	ErrAbstractKind = errors.New("bytebuf: cannot instantiate abstract kind")

	// ErrTooLong reports that stream construction exceeded the configured
	// read limit.
	ErrTooLong = errors.New("bytebuf: input too long")

	// ErrIO reports a failure reading the source during stream
	// construction. It is always returned wrapped together with the
	// underlying cause, so errors.Is matches both.
	ErrIO = errors.New("bytebuf: read stream")
)
