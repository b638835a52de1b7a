// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"bytes"
	"fmt"
)

// SplitOptions configures Split.
type SplitOptions struct {
	// IncludeDelimiter emits the matched delimiter bytes as their own
	// same-kind buffer between segments.
	IncludeDelimiter bool
}

type SplitOption func(*SplitOptions)

// WithDelimiterIncluded makes Split interleave the matched delimiter
// bytes between segments.
func WithDelimiterIncluded() SplitOption {
	return func(o *SplitOptions) { o.IncludeDelimiter = true }
}

// Split cuts the content at every occurrence of a delimiter and returns
// the segments as new buffers of the receiver's kind.
//
// delim is one of: a numeric byte value, a *Buffer (multi-byte pattern),
// a []byte, a []int, a []*Buffer, or a []any mixing numeric values and
// buffers. Candidates are tried at each position in the order given and
// the first match wins, regardless of pattern length; scanning resumes
// immediately after a match, so matches never overlap.
//
// The trailing segment (even when empty) is always emitted — unless there
// were zero cuts, in which case the receiver itself is returned as the
// sole element, preserving identity rather than copying. "No delimiter
// found" is never an error; only a delimiter that cannot be reduced to
// non-empty byte patterns fails, with ErrInvalidArgument.
func (b *Buffer) Split(delim any, opts ...SplitOption) ([]*Buffer, error) {
	patterns, err := splitPatterns(delim)
	if err != nil {
		return nil, err
	}
	var o SplitOptions
	for _, fn := range opts {
		fn(&o)
	}

	src := b.snapshot()
	var out []*Buffer
	cut := 0
	for i := 0; i < len(src); i++ {
		for _, pat := range patterns {
			if i+len(pat) > len(src) {
				continue
			}
			if !bytes.Equal(src[i:i+len(pat)], pat) {
				continue
			}
			out = append(out, newBuffer(b.kind, cloneBytes(src[cut:i])))
			if o.IncludeDelimiter {
				out = append(out, newBuffer(b.kind, cloneBytes(pat)))
			}
			cut = i + len(pat)
			i = cut - 1
			break
		}
	}
	if cut == 0 {
		return []*Buffer{b}, nil
	}
	out = append(out, newBuffer(b.kind, cloneBytes(src[cut:])))
	return out, nil
}

// splitPatterns normalizes a delimiter argument to candidate byte
// patterns, in the order given.
func splitPatterns(delim any) ([][]byte, error) {
	switch d := delim.(type) {
	case *Buffer:
		if d == nil {
			return nil, fmt.Errorf("%w: nil delimiter buffer", ErrInvalidArgument)
		}
		p := d.Bytes()
		if err := patternsNonEmpty(p); err != nil {
			return nil, err
		}
		return [][]byte{p}, nil
	case []byte:
		if err := patternsNonEmpty(d); err != nil {
			return nil, err
		}
		return [][]byte{cloneBytes(d)}, nil
	case []int:
		pats := make([][]byte, len(d))
		for i, v := range d {
			pats[i] = []byte{byte(v)}
		}
		return pats, nil
	case []*Buffer:
		pats := make([][]byte, len(d))
		for i, o := range d {
			if o == nil {
				return nil, fmt.Errorf("%w: nil delimiter buffer at index %d", ErrInvalidArgument, i)
			}
			pats[i] = o.Bytes()
		}
		if err := patternsNonEmpty(pats...); err != nil {
			return nil, err
		}
		return pats, nil
	case []any:
		pats := make([][]byte, len(d))
		for i, v := range d {
			if n, ok := asInt(v); ok {
				pats[i] = []byte{byte(n)}
				continue
			}
			if o, ok := v.(*Buffer); ok && o != nil {
				pats[i] = o.Bytes()
				continue
			}
			return nil, fmt.Errorf("%w: unsupported delimiter %v (%T)", ErrInvalidArgument, v, v)
		}
		if err := patternsNonEmpty(pats...); err != nil {
			return nil, err
		}
		return pats, nil
	default:
		if n, ok := asInt(delim); ok {
			return [][]byte{{byte(n)}}, nil
		}
		return nil, fmt.Errorf("%w: unsupported delimiter %v (%T)", ErrInvalidArgument, delim, delim)
	}
}

// patternsNonEmpty rejects zero-length patterns: an empty pattern would
// match at every position and the scan could never advance past it.
func patternsNonEmpty(pats ...[]byte) error {
	for _, p := range pats {
		if len(p) == 0 {
			return fmt.Errorf("%w: empty delimiter", ErrInvalidArgument)
		}
	}
	return nil
}
