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

package langtag

// Language is the language subtag group of a LanguageTag: a primary
// subtag (2-3, 4, or 5-8 ALPHA) plus, only in the 2-3 ALPHA case, up to
// three 3-letter extended language subtags (RFC 5646 §2.2.1, §2.2.2).
type Language struct {
	Primary    string
	Extensions []string
}

// Script is the 4-ALPHA script subtag (RFC 5646 §2.2.3), stored without
// its leading "-".
type Script string

// Region is the 2-ALPHA or 3-DIGIT region subtag (RFC 5646 §2.2.4),
// stored without its leading "-".
type Region string

// LanguageTag is Language [Script] [Region] *Variant (RFC 5646 §2.1).
type LanguageTag struct {
	Language Language
	Script   *Script
	Region   *Region
	Variant  []string
}

// LanguageRangeKind tags which of the two language-range productions a
// LanguageRange value holds.
type LanguageRangeKind int

const (
	// LanguageRangeKindSpecific holds a dash-separated subtag list.
	LanguageRangeKindSpecific LanguageRangeKind = iota
	// LanguageRangeKindAny is the literal "*" wildcard.
	LanguageRangeKindAny
)

// LanguageRange is Range([]string) | Any, RFC 4647 §2's basic language
// range: either the wildcard "*", or 1-8 ALPHA followed by zero or more
// "-" 1*8alphanum extensions.
type LanguageRange struct {
	kind  LanguageRangeKind
	parts []string
}

// NewLanguageRange builds a specific (non-wildcard) LanguageRange from
// its dash-separated subtags.
func NewLanguageRange(parts []string) LanguageRange {
	return LanguageRange{kind: LanguageRangeKindSpecific, parts: parts}
}

// AnyLanguageRange is the "*" wildcard range.
func AnyLanguageRange() LanguageRange {
	return LanguageRange{kind: LanguageRangeKindAny}
}

// Kind reports which production this range holds.
func (r LanguageRange) Kind() LanguageRangeKind {
	return r.kind
}

// Parts returns the subtags and true if Kind is
// LanguageRangeKindSpecific.
func (r LanguageRange) Parts() ([]string, bool) {
	if r.kind != LanguageRangeKindSpecific {
		return nil, false
	}
	return r.parts, true
}
