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

// Package langtag implements the RFC 5646 Language Tag and RFC 4647
// Language Range grammars on top of the same internal/combinator
// substrate the uri package is built from, as a second demonstration of
// that substrate's reuse across unrelated grammars.
//
// IANA subtag registry validation (whether "en" or "xyz-qq" names a real
// language/region) is not attempted: this package is a syntax-level
// parser/formatter pair, not a registry client. Grandfathered tags
// (RFC 5646 §2.2.8, e.g. "i-klingon") and private-use tags are likewise
// not modeled; both are explicit non-goals.
package langtag
