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

package uritemplate

import (
	"strings"

	"github.com/jplu/websyntax/internal/combinator"
	"github.com/jplu/websyntax/internal/pct"
)

// isUnreserved is RFC 3986 §2.3's unreserved set, the default expansion
// charset for every operator except Reserved and Fragment.
func isUnreserved(b byte) bool {
	return combinator.IsAlphaNum(b) || strings.IndexByte("-._~", b) >= 0
}

// isReserved is RFC 3986 §2.2's reserved set (gen-delims + sub-delims).
func isReserved(b byte) bool {
	return strings.IndexByte(":/?#[]@!$&'()*+,;=", b) >= 0
}

// isUnreservedOrReserved is the expansion charset for the Reserved ("+")
// and Fragment ("#") operators, which pass reserved characters through
// unescaped.
func isUnreservedOrReserved(b byte) bool {
	return isUnreserved(b) || isReserved(b)
}

// isVarChar is RFC 6570 §2.3's varchar set, minus the pct-encoded
// alternative (handled separately by the pct package): ALPHA / DIGIT /
// "_".
func isVarChar(b byte) bool {
	return combinator.IsAlphaNum(b) || b == '_'
}

// isLiteralByte is the literal-text whitelist: printable ASCII minus
// the expression delimiters "{" "}" and the bytes RFC 6570's literal
// production also excludes.
func isLiteralByte(b byte) bool {
	if b < 0x21 || b > 0x7E {
		return false
	}
	switch b {
	case '"', '\'', '%', '<', '>', '\\', '^', '`', '{', '|', '}':
		return false
	}
	return true
}

// stopAt wraps a charset predicate so that it additionally rejects any
// byte in stops, used to keep a variable's value parser from reading
// past a structural separator ("," "." "/" ";" "&" "=") that happens to
// also be a charset member (notably "," under the reserved charset).
func stopAt(charset pct.Predicate, stops ...byte) pct.Predicate {
	return func(b byte) bool {
		for _, s := range stops {
			if b == s {
				return false
			}
		}
		return charset(b)
	}
}
