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

// Package uritemplate implements RFC 6570 URI Templates: parsing and
// formatting the template syntax itself, rendering (expansion) of a
// template against a variable binding, and matching (reverse expansion)
// of a concrete string back into a binding. It is built on the same
// internal/combinator and internal/pct substrate as the uri package,
// generalized with two additional combinators (Multi, MultiSepBy) for
// the per-variable sub-parsers an expression's Match needs.
//
// Matching is necessarily heuristic for the handful of RFC 6570 shapes
// that are not uniquely reversible from text alone (see the doc comment
// on UriTemplate.Match); rendering has no such limitation.
package uritemplate
