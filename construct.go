// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"fmt"
	"io"
	"math"
)

// New is the heterogeneous construction entry point. It dispatches on the
// shape of args:
//
//	New(kind)                          empty buffer
//	New(kind, n)                       n zero bytes, Mutable only
//	New(kind, *Buffer)                 byte-for-byte copy
//	New(kind, []byte)                  copy of the raw bytes
//	New(kind, []int) / New(kind, []any) one byte per element, each v&0xFF
//	New(kind, io.Reader)               all bytes until EOF, source closed
//	New(kind, text, charsetName)       text encoded with the named charset
//
// A nil single argument constructs an empty buffer. Every other shape
// fails with ErrInvalidArgument naming the rejected value. Constructing
// the abstract Binary kind fails with ErrAbstractKind.
func New(kind Kind, args ...any) (*Buffer, error) {
	if !kind.valid() {
		return nil, ErrAbstractKind
	}
	switch len(args) {
	case 0:
		return newBuffer(kind, make([]byte, 0, minCapacity)), nil
	case 1:
		return construct1(kind, args[0])
	case 2:
		text, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected string as first argument, got %T", ErrInvalidArgument, args[0])
		}
		name, ok := args[1].(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected string as second argument, got %T", ErrInvalidArgument, args[1])
		}
		return FromString(kind, text, name)
	default:
		return nil, fmt.Errorf("%w: expected 0 to 2 arguments, got %d", ErrInvalidArgument, len(args))
	}
}

func construct1(kind Kind, arg any) (*Buffer, error) {
	if arg == nil {
		return newBuffer(kind, make([]byte, 0, minCapacity)), nil
	}
	if n, ok := asInt(arg); ok {
		return NewSized(kind, n)
	}
	switch v := arg.(type) {
	case *Buffer:
		return FromBuffer(kind, v)
	case []byte:
		return FromBytes(kind, v)
	case []int:
		return FromInts(kind, v)
	case []any:
		return fromElements(kind, v)
	case io.Reader:
		return FromReader(kind, v)
	default:
		return nil, fmt.Errorf("%w: unsupported argument %v (%T)", ErrInvalidArgument, arg, arg)
	}
}

// NewSized returns a Mutable buffer of n zero bytes. Size-only
// construction is meaningless for an immutable value and fails with
// ErrInvalidArgument, as does a negative n.
func NewSized(kind Kind, n int) (*Buffer, error) {
	if !kind.valid() {
		return nil, ErrAbstractKind
	}
	if kind != Mutable {
		return nil, fmt.Errorf("%w: sized construction requires the Mutable kind", ErrInvalidArgument)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrInvalidArgument, n)
	}
	capacity := n
	if capacity < minCapacity {
		capacity = minCapacity
	}
	return newBuffer(kind, make([]byte, n, capacity)), nil
}

// FromBytes returns a buffer holding a copy of b.
func FromBytes(kind Kind, b []byte) (*Buffer, error) {
	if !kind.valid() {
		return nil, ErrAbstractKind
	}
	return newBuffer(kind, cloneBytes(b)), nil
}

// FromBuffer returns a byte-for-byte copy of src with its own storage and
// independent lifetime. The copy may change kind relative to src.
func FromBuffer(kind Kind, src *Buffer) (*Buffer, error) {
	if !kind.valid() {
		return nil, ErrAbstractKind
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil source buffer", ErrInvalidArgument)
	}
	return newBuffer(kind, src.snapshot()), nil
}

// FromInts returns a buffer whose byte i is vals[i]&0xFF.
func FromInts(kind Kind, vals []int) (*Buffer, error) {
	if !kind.valid() {
		return nil, ErrAbstractKind
	}
	b := make([]byte, len(vals))
	for i, v := range vals {
		b[i] = byte(v)
	}
	return newBuffer(kind, b), nil
}

// fromElements coerces a heterogeneous sequence: every element must be
// numeric or construction fails.
func fromElements(kind Kind, vals []any) (*Buffer, error) {
	b := make([]byte, len(vals))
	for i, v := range vals {
		n, ok := asInt(v)
		if !ok {
			return nil, fmt.Errorf("%w: non-numeric element %v (%T) at index %d", ErrInvalidArgument, v, v, i)
		}
		b[i] = byte(n)
	}
	return newBuffer(kind, b), nil
}

// FromString returns a buffer holding text encoded with the named
// charset. An unrecognized name fails with ErrUnsupportedEncoding.
func FromString(kind Kind, text, charsetName string) (*Buffer, error) {
	if !kind.valid() {
		return nil, ErrAbstractKind
	}
	b, err := encodeText(text, charsetName)
	if err != nil {
		return nil, err
	}
	return newBuffer(kind, b), nil
}

// asInt coerces any Go numeric value to int, reporting whether arg was
// numeric at all. Floats truncate toward zero, matching byte-store
// truncation semantics.
func asInt(arg any) (int, bool) {
	switch v := arg.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		return finiteToInt(float64(v))
	case float64:
		return finiteToInt(v)
	default:
		return 0, false
	}
}

// finiteToInt converts a float to int. NaN maps to 0; infinities are
// rejected rather than converted, since int(±Inf) is implementation-
// defined in Go and no finite buffer size or byte value corresponds to
// them.
func finiteToInt(f float64) (int, bool) {
	if math.IsNaN(f) {
		return 0, true
	}
	if math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
