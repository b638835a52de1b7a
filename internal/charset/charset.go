// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package charset resolves IANA charset names and converts between raw
// bytes and text at the encoding boundary.
package charset

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknown reports a charset name not present in the IANA registry, or
// one the registry lists without a usable codec.
var ErrUnknown = errors.New("charset: unknown name")

// Lookup resolves name against the IANA registry (names and aliases,
// case-insensitive per the registry rules).
func Lookup(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		// ianaindex returns a nil Encoding with a nil error for names it
		// recognizes but has no codec for; treat both the same.
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return enc, nil
}

// Decode interprets b as text in the named charset and returns it as a
// Go (UTF-8) string. Undecodable byte sequences are replaced, never an
// error.
func Decode(b []byte, name string) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}
	if enc == unicode.UTF8 {
		// Go strings are UTF-8; no transform needed.
		return string(b), nil
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("charset: decode %q: %w", name, err)
	}
	return string(out), nil
}

// Encode returns text encoded in the named charset. Characters the
// charset cannot represent are replaced with its substitution byte,
// never an error.
func Encode(text, name string) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return []byte(text), nil
	}
	out, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("charset: encode %q: %w", name, err)
	}
	return out, nil
}
