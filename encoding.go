// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"errors"
	"fmt"

	"code.hybscloud.com/bytebuf/internal/charset"
)

// ToMutable returns a Mutable buffer over the receiver's content.
//
// With no charsets the content is copied raw (kind change without
// reinterpretation). With exactly two charsets the content is decoded as
// text using the first and re-encoded using the second, and the result
// holds the transcoded bytes. Any other charset count fails with
// ErrInvalidArgument; an unrecognized name fails with
// ErrUnsupportedEncoding.
func (b *Buffer) ToMutable(charsets ...string) (*Buffer, error) {
	return b.convert(Mutable, charsets)
}

// ToImmutable is ToMutable's Immutable counterpart. An Immutable receiver
// asked for a raw (no-charset) conversion returns itself: content is
// fixed, so no copy is needed.
func (b *Buffer) ToImmutable(charsets ...string) (*Buffer, error) {
	if b.kind == Immutable && len(charsets) == 0 {
		return b, nil
	}
	return b.convert(Immutable, charsets)
}

func (b *Buffer) convert(kind Kind, charsets []string) (*Buffer, error) {
	switch len(charsets) {
	case 0:
		return newBuffer(kind, b.snapshot()), nil
	case 2:
		text, err := decodeBytes(b.snapshot(), charsets[0])
		if err != nil {
			return nil, err
		}
		raw, err := encodeText(text, charsets[1])
		if err != nil {
			return nil, err
		}
		return newBuffer(kind, raw), nil
	default:
		return nil, fmt.Errorf("%w: conversion takes zero or two charsets, got %d", ErrInvalidArgument, len(charsets))
	}
}

// DecodeToString decodes the content as text. Without a charset the bytes
// are taken as-is (UTF-8, the platform default). At most one charset may
// be given.
func (b *Buffer) DecodeToString(charsetName ...string) (string, error) {
	switch len(charsetName) {
	case 0:
		return string(b.snapshot()), nil
	case 1:
		return decodeBytes(b.snapshot(), charsetName[0])
	default:
		return "", fmt.Errorf("%w: at most one charset, got %d", ErrInvalidArgument, len(charsetName))
	}
}

// Elements returns the content as an ordered sequence of element values.
//
// Without a charset there is one element per byte (0..255). With a
// charset the content is decoded first and there is one element per
// decoded character (Unicode code point), so the element count may differ
// from Len for multi-byte charsets.
func (b *Buffer) Elements(charsetName ...string) ([]int, error) {
	switch len(charsetName) {
	case 0:
		raw := b.snapshot()
		out := make([]int, len(raw))
		for i, c := range raw {
			out[i] = int(c)
		}
		return out, nil
	case 1:
		text, err := decodeBytes(b.snapshot(), charsetName[0])
		if err != nil {
			return nil, err
		}
		runes := []rune(text)
		out := make([]int, len(runes))
		for i, r := range runes {
			out[i] = int(r)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: at most one charset, got %d", ErrInvalidArgument, len(charsetName))
	}
}

func decodeBytes(raw []byte, name string) (string, error) {
	text, err := charset.Decode(raw, name)
	if err != nil {
		return "", mapCharsetErr(err, name)
	}
	return text, nil
}

func encodeText(text, name string) ([]byte, error) {
	raw, err := charset.Encode(text, name)
	if err != nil {
		return nil, mapCharsetErr(err, name)
	}
	return raw, nil
}

func mapCharsetErr(err error, name string) error {
	if errors.Is(err, charset.ErrUnknown) {
		return fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	return fmt.Errorf("%w: %q: %w", ErrInvalidArgument, name, err)
}
