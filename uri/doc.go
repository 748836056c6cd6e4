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

// Package uri provides a strongly-typed, round-tripping implementation of
// the RFC 3986 URI grammar: Scheme, Authority, Host, Path (in its four
// disjoint forms), Query, Fragment, and the composite Uri, UriReference,
// AbsoluteUri and RelativeReference productions.
//
// Scheme, Authority, Host, Query, Fragment, Uri, AbsoluteUri,
// RelativeReference and UriReference each expose the same triad: Parse
// (returns an error on invalid or trailing input), TryParse (never
// panics, reports failure as a value) and Format (total, never fails).
// The four path types have Format but no standalone Parse or TryParse;
// Port, UserInfo, RegName, HierarchyPart and RelativePart have neither,
// and are parsed and formatted only as parts of an enclosing value.
// Parsing and formatting are a round-trip pair: for any value v produced
// by Parse, Parse(Format(v)) reproduces v.
//
// This package is purely syntactic. It never resolves a relative
// reference against a base, never removes "." or ".." path segments,
// and never case-folds a host. It also never decodes IRI-style Unicode
// hosts or paths: non-ASCII text only ever appears already
// percent-decoded inside a leaf string such as a path segment or query.
package uri
