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

package uri

import (
	"fmt"
	"strings"

	"github.com/jplu/websyntax/internal/combinator"
	"github.com/jplu/websyntax/internal/pct"
)

// segmentParser matches a single decoded path segment: *pchar.
func segmentParser(in *combinator.Input) (string, error) {
	return pct.Parser(isPChar)(in)
}

// segmentNzParser matches a non-empty decoded path segment: 1*pchar.
func segmentNzParser(in *combinator.Input) (string, error) {
	return pct.Parser1(isPChar)(in)
}

// pathAbsoluteOrEmptyParser matches *( "/" segment ), RFC 3986's
// path-abempty.
func pathAbsoluteOrEmptyParser(in *combinator.Input) (PathAbsoluteOrEmpty, error) {
	var segments []string
	for {
		mark := in.Mark()
		if _, err := combinator.Byte('/')(in); err != nil {
			in.Reset(mark)
			break
		}
		seg, err := segmentParser(in)
		if err != nil {
			in.Reset(mark)
			break
		}
		segments = append(segments, seg)
	}
	return PathAbsoluteOrEmpty{Segments: segments}, nil
}

// pathAbsoluteParser matches "/" [ segment-nz *( "/" segment ) ].
func pathAbsoluteParser(in *combinator.Input) (PathAbsolute, error) {
	if _, err := combinator.Byte('/')(in); err != nil {
		return PathAbsolute{}, err
	}
	var segments []string
	mark := in.Mark()
	first, err := segmentNzParser(in)
	if err != nil {
		in.Reset(mark)
		return PathAbsolute{}, nil
	}
	segments = append(segments, first)
	rest, _ := pathAbsoluteOrEmptyParser(in)
	segments = append(segments, rest.Segments...)
	return PathAbsolute{Segments: segments}, nil
}

// segmentNzNcParser matches a non-empty segment containing no ":",
// required for the first segment of path-noscheme.
func segmentNzNcParser(in *combinator.Input) (string, error) {
	mark := in.Mark()
	seg, err := segmentNzParser(in)
	if err != nil {
		return "", err
	}
	if strings.ContainsRune(seg, ':') {
		in.Reset(mark)
		return "", combinator.Fail(in, "first segment of a no-scheme relative path must not contain ':'")
	}
	return seg, nil
}

// pathNoSchemeParser matches segment-nz-nc *( "/" segment ).
func pathNoSchemeParser(in *combinator.Input) (PathNoScheme, error) {
	first, err := segmentNzNcParser(in)
	if err != nil {
		return PathNoScheme{}, err
	}
	segments := []string{first}
	rest, _ := pathAbsoluteOrEmptyParser(in)
	segments = append(segments, rest.Segments...)
	return PathNoScheme{Segments: segments}, nil
}

// pathRootlessParser matches segment-nz *( "/" segment ).
func pathRootlessParser(in *combinator.Input) (PathRootless, error) {
	first, err := segmentNzParser(in)
	if err != nil {
		return PathRootless{}, err
	}
	segments := []string{first}
	rest, _ := pathAbsoluteOrEmptyParser(in)
	segments = append(segments, rest.Segments...)
	return PathRootless{Segments: segments}, nil
}

// NewPathAbsolute validates and builds a PathAbsolute from raw segments.
// A PathAbsolute whose first segment is empty is ambiguous once
// formatted ("//x" could be re-read as an authority marker), so this
// constructor rejects it. Callers that already hold segments known not
// to start with an empty string (e.g. round-tripped from Parse) may
// still use the bare struct literal; Parse itself never produces an
// empty first segment.
func NewPathAbsolute(segments []string) (PathAbsolute, error) {
	if len(segments) > 0 && segments[0] == "" {
		return PathAbsolute{}, fmt.Errorf("path-absolute must not start with an empty segment: %v", segments)
	}
	return PathAbsolute{Segments: segments}, nil
}

func formatSegments(prefix string, segments []string) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(prefix)
		b.WriteString(pct.Encode(seg, isPChar))
	}
	return b.String()
}

// Format renders path-abempty: "" or ( "/" segment )+.
func (p PathAbsoluteOrEmpty) Format() string {
	return formatSegments("/", p.Segments)
}

// Format renders path-absolute: "/" followed by segments joined by "/".
func (p PathAbsolute) Format() string {
	if len(p.Segments) == 0 {
		return "/"
	}
	return "/" + strings.Join(encodeSegments(p.Segments), "/")
}

// Format renders path-noscheme: segments joined by "/", no leading "/".
func (p PathNoScheme) Format() string {
	return strings.Join(encodeSegments(p.Segments), "/")
}

// Format renders path-rootless: segments joined by "/", no leading "/".
func (p PathRootless) Format() string {
	return strings.Join(encodeSegments(p.Segments), "/")
}

func encodeSegments(segments []string) []string {
	out := make([]string, len(segments))
	for i, seg := range segments {
		out[i] = pct.Encode(seg, isPChar)
	}
	return out
}
