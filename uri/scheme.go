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
	"strings"

	"github.com/jplu/websyntax/internal/combinator"
)

// schemeParser matches ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ),
// greedily.
func schemeParser(in *combinator.Input) (Scheme, error) {
	first, ok := in.Peek()
	if !ok || !combinator.IsAlpha(first) {
		return "", combinator.Fail(in, "scheme must start with a letter")
	}
	in.Next()
	var b strings.Builder
	b.WriteByte(first)
	for {
		c, ok := in.Peek()
		if !ok || !isSchemeChar(c) {
			break
		}
		b.WriteByte(c)
		in.Next()
	}
	return Scheme(b.String()), nil
}

// ParseScheme parses s as a complete scheme.
func ParseScheme(s string) (Scheme, error) {
	return combinator.Run(schemeParser, s)
}

// TryParseScheme is the panic-free form of ParseScheme.
func TryParseScheme(s string) (Scheme, bool) {
	v, err := ParseScheme(s)
	return v, err == nil
}

// Format renders the scheme in its canonical (parsed) textual form.
func (s Scheme) Format() string {
	return string(s)
}
