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

import (
	"strings"

	"github.com/jplu/websyntax/internal/combinator"
)

// ParseLanguageTag parses s as a complete RFC 5646 language tag.
func ParseLanguageTag(s string) (LanguageTag, error) {
	return combinator.Run(languageTagParser, s)
}

// TryParseLanguageTag is the panic-free form of ParseLanguageTag.
func TryParseLanguageTag(s string) (LanguageTag, bool) {
	v, err := ParseLanguageTag(s)
	return v, err == nil
}

// ParseLanguageRange parses s as a complete RFC 4647 basic language
// range.
func ParseLanguageRange(s string) (LanguageRange, error) {
	return combinator.Run(languageRangeParser, s)
}

// TryParseLanguageRange is the panic-free form of ParseLanguageRange.
func TryParseLanguageRange(s string) (LanguageRange, bool) {
	v, err := ParseLanguageRange(s)
	return v, err == nil
}

// Format renders the language subtag group, including any extended
// language subtags.
func (l Language) Format() string {
	if len(l.Extensions) == 0 {
		return l.Primary
	}
	var b strings.Builder
	b.WriteString(l.Primary)
	for _, ext := range l.Extensions {
		b.WriteByte('-')
		b.WriteString(ext)
	}
	return b.String()
}

// Format renders the tag in its canonical textual form.
func (t LanguageTag) Format() string {
	var b strings.Builder
	b.WriteString(t.Language.Format())
	if t.Script != nil {
		b.WriteByte('-')
		b.WriteString(string(*t.Script))
	}
	if t.Region != nil {
		b.WriteByte('-')
		b.WriteString(string(*t.Region))
	}
	for _, v := range t.Variant {
		b.WriteByte('-')
		b.WriteString(v)
	}
	return b.String()
}

// Format renders the range in its canonical textual form.
func (r LanguageRange) Format() string {
	if r.kind == LanguageRangeKindAny {
		return "*"
	}
	return strings.Join(r.parts, "-")
}
