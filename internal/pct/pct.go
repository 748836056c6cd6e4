/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package pct implements the percent-encoding codec shared by the uri
// and uritemplate packages: a pair of parser/encoder factories,
// each parameterized over a whitelist of bytes that may appear
// unescaped in the production at hand.
package pct

import (
	"strings"
	"unicode/utf8"

	"github.com/jplu/websyntax/internal/combinator"
)

// Predicate decides whether a raw byte may appear unescaped in some
// percent-encoded grammar production.
type Predicate func(b byte) bool

// Parser returns a combinator.Parser that greedily consumes a run of
// bytes that are either accepted by allowed or form a valid "%XX"
// percent-triple, decodes the accumulated bytes as UTF-8, and returns
// the decoded string. It succeeds (consuming nothing) when the run is
// empty, letting callers decide whether an empty match is acceptable for
// their production.
func Parser(allowed Predicate) combinator.Parser[string] {
	return func(in *combinator.Input) (string, error) {
		var raw []byte
		for {
			b, ok := in.Peek()
			if !ok {
				break
			}
			if b == '%' {
				mark := in.Mark()
				in.Next()
				h1, ok1 := in.Next()
				h2, ok2 := in.Next()
				if !ok1 || !ok2 || !combinator.IsHexDigit(h1) || !combinator.IsHexDigit(h2) {
					in.Reset(mark)
					break
				}
				raw = append(raw, combinator.HexValue(h1)<<4|combinator.HexValue(h2))
				continue
			}
			if !allowed(b) {
				break
			}
			raw = append(raw, b)
			in.Next()
		}
		if !utf8.Valid(raw) {
			return "", combinator.Fail(in, "percent-decoded bytes are not valid UTF-8")
		}
		return string(raw), nil
	}
}

// Parser1 is Parser but requires at least one byte to be consumed,
// for productions that are not allowed to be empty.
func Parser1(allowed Predicate) combinator.Parser[string] {
	base := Parser(allowed)
	return func(in *combinator.Input) (string, error) {
		start := in.Mark()
		v, err := base(in)
		if err != nil {
			return "", err
		}
		if in.Mark() == start {
			return "", combinator.Fail(in, "expected at least one character")
		}
		return v, nil
	}
}

// Encode serializes decoded (a Unicode string already decoded from its
// percent-encoded wire form) back to its canonical percent-encoded text:
// a whitelisted byte is written verbatim, anything else as an uppercase
// "%XX" triple. As an exception, a literal "%" immediately followed by
// two hex digits in decoded is passed through unchanged rather than
// having its "%" escaped to "%25", so that already-encoded fragments
// flowing through the encoder are not double-encoded.
func Encode(decoded string, allowed Predicate) string {
	var b strings.Builder
	b.Grow(len(decoded))
	i := 0
	for i < len(decoded) {
		c := decoded[i]
		if c == '%' && i+2 < len(decoded) && combinator.IsHexDigit(decoded[i+1]) && combinator.IsHexDigit(decoded[i+2]) {
			b.WriteByte(decoded[i])
			b.WriteByte(decoded[i+1])
			b.WriteByte(decoded[i+2])
			i += 3
			continue
		}
		if allowed(c) {
			b.WriteByte(c)
			i++
			continue
		}
		b.WriteByte('%')
		b.WriteByte(combinator.UpperHexDigit(c >> 4))
		b.WriteByte(combinator.UpperHexDigit(c & 0x0f))
		i++
	}
	return b.String()
}
