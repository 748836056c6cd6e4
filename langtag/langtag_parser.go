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

// maxAlphaRun reads up to max ALPHA bytes, greedily.
func maxAlphaRun(in *combinator.Input, max int) string {
	var b strings.Builder
	for b.Len() < max {
		c, ok := in.Peek()
		if !ok || !combinator.IsAlpha(c) {
			break
		}
		b.WriteByte(c)
		in.Next()
	}
	return b.String()
}

// languageParser matches RFC 5646's three language alternatives (2-3
// ALPHA with optional extended language subtags, 4 ALPHA, 5-8 ALPHA).
// Since the alternatives are disjoint by length of the unbroken ALPHA
// run preceding the first "-", they don't need ordered-choice
// backtracking: a 2-3 letter run may carry extended language subtags, a
// 4 or 5-8 letter run may not.
func languageParser(in *combinator.Input) (Language, error) {
	mark := in.Mark()
	primary := maxAlphaRun(in, 8)
	if len(primary) < 2 {
		in.Reset(mark)
		return Language{}, combinator.Fail(in, "language subtag must have at least 2 letters")
	}
	if len(primary) != 2 && len(primary) != 3 {
		return Language{Primary: primary}, nil
	}

	var extensions []string
	for len(extensions) < 3 {
		ext, ok := tryExtlangSubtag(in)
		if !ok {
			break
		}
		extensions = append(extensions, ext)
	}
	return Language{Primary: primary, Extensions: extensions}, nil
}

// tryExtlangSubtag matches "-" 3ALPHA, with a negative look-ahead that
// the subtag does not run into a 4th ALPHA/DIGIT byte. The look-ahead
// is what keeps a 2-3 letter primary's extended-language subtags from
// being confused with a following 4-ALPHA script subtag.
func tryExtlangSubtag(in *combinator.Input) (string, bool) {
	mark := in.Mark()
	if _, err := combinator.Byte('-')(in); err != nil {
		in.Reset(mark)
		return "", false
	}
	subtag := maxAlphaRun(in, 4)
	if len(subtag) != 3 {
		in.Reset(mark)
		return "", false
	}
	if c, ok := in.Peek(); ok && combinator.IsAlphaNum(c) {
		in.Reset(mark)
		return "", false
	}
	return subtag, true
}

// tryScriptSubtag matches "-" 4ALPHA, rejecting (via negative
// look-ahead) a run that continues into a 5th alphanumeric byte, which
// would instead belong to a 5-8 alphanumeric variant subtag.
func tryScriptSubtag(in *combinator.Input) (Script, bool) {
	mark := in.Mark()
	if _, err := combinator.Byte('-')(in); err != nil {
		in.Reset(mark)
		return "", false
	}
	subtag := maxAlphaRun(in, 5)
	if len(subtag) != 4 {
		in.Reset(mark)
		return "", false
	}
	if c, ok := in.Peek(); ok && combinator.IsAlphaNum(c) {
		in.Reset(mark)
		return "", false
	}
	return Script(subtag), true
}

// tryRegionSubtag matches "-" (2ALPHA / 3DIGIT), with the same
// overflow-rejecting look-ahead as the other subtag parsers.
func tryRegionSubtag(in *combinator.Input) (Region, bool) {
	mark := in.Mark()
	if _, err := combinator.Byte('-')(in); err != nil {
		in.Reset(mark)
		return "", false
	}

	var b strings.Builder
	for b.Len() < 3 {
		c, ok := in.Peek()
		if !ok || !combinator.IsAlphaNum(c) {
			break
		}
		b.WriteByte(c)
		in.Next()
	}
	subtag := b.String()

	valid := (len(subtag) == 2 && isAllAlpha(subtag)) || (len(subtag) == 3 && isAllDigit(subtag))
	if !valid {
		in.Reset(mark)
		return "", false
	}
	if c, ok := in.Peek(); ok && combinator.IsAlphaNum(c) {
		in.Reset(mark)
		return "", false
	}
	return Region(subtag), true
}

// tryVariantSubtag matches "-" (5*8alphanum / DIGIT 3alphanum), the two
// disjoint variant forms of RFC 5646 §2.2.5.
func tryVariantSubtag(in *combinator.Input) (string, bool) {
	mark := in.Mark()
	if _, err := combinator.Byte('-')(in); err != nil {
		in.Reset(mark)
		return "", false
	}

	var b strings.Builder
	for b.Len() < 8 {
		c, ok := in.Peek()
		if !ok || !combinator.IsAlphaNum(c) {
			break
		}
		b.WriteByte(c)
		in.Next()
	}
	subtag := b.String()

	valid := (len(subtag) == 4 && combinator.IsDigit(subtag[0])) || (len(subtag) >= 5 && len(subtag) <= 8)
	if !valid {
		in.Reset(mark)
		return "", false
	}
	if c, ok := in.Peek(); ok && combinator.IsAlphaNum(c) {
		in.Reset(mark)
		return "", false
	}
	return subtag, true
}

func isAllAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if !combinator.IsAlpha(s[i]) {
			return false
		}
	}
	return true
}

func isAllDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if !combinator.IsDigit(s[i]) {
			return false
		}
	}
	return true
}

// languageTagParser matches Language [Script] [Region] *Variant.
func languageTagParser(in *combinator.Input) (LanguageTag, error) {
	language, err := languageParser(in)
	if err != nil {
		return LanguageTag{}, err
	}

	tag := LanguageTag{Language: language}

	if script, ok := tryScriptSubtag(in); ok {
		tag.Script = &script
	}
	if region, ok := tryRegionSubtag(in); ok {
		tag.Region = &region
	}
	for {
		variant, ok := tryVariantSubtag(in)
		if !ok {
			break
		}
		tag.Variant = append(tag.Variant, variant)
	}

	return tag, nil
}

// languageRangeParser matches RFC 4647 §2's basic-language-range:
// "*" / ( 1*8ALPHA *("-" 1*8alphanum) ).
func languageRangeParser(in *combinator.Input) (LanguageRange, error) {
	mark := in.Mark()
	if _, err := combinator.Byte('*')(in); err == nil {
		return AnyLanguageRange(), nil
	}
	in.Reset(mark)

	primary := maxAlphaRun(in, 8)
	if len(primary) == 0 {
		return LanguageRange{}, combinator.Fail(in, "language-range must start with ALPHA or '*'")
	}
	parts := []string{primary}

	for {
		subMark := in.Mark()
		if _, err := combinator.Byte('-')(in); err != nil {
			in.Reset(subMark)
			break
		}
		var b strings.Builder
		for b.Len() < 8 {
			c, ok := in.Peek()
			if !ok || !combinator.IsAlphaNum(c) {
				break
			}
			b.WriteByte(c)
			in.Next()
		}
		if b.Len() == 0 {
			in.Reset(subMark)
			break
		}
		parts = append(parts, b.String())
	}

	return NewLanguageRange(parts), nil
}
