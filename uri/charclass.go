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

// The character classes of RFC 3986 §2. RFC 3987's iunreserved Unicode
// ranges are deliberately absent: this package parses URIs, not IRIs.

func isUnreserved(b byte) bool {
	return combinator.IsAlphaNum(b) || strings.IndexByte("-._~", b) >= 0
}

func isSubDelim(b byte) bool {
	return strings.IndexByte("!$&'()*+,;=", b) >= 0
}

func isUnreservedOrSubDelim(b byte) bool {
	return isUnreserved(b) || isSubDelim(b)
}

// pchar = unreserved / pct-encoded / sub-delims / ":" / "@"
func isPChar(b byte) bool {
	return isUnreservedOrSubDelim(b) || b == ':' || b == '@'
}

// userinfo and reg-name allow unreserved / pct-encoded / sub-delims, plus
// ":" for userinfo only.
func isUserinfoChar(b byte) bool {
	return isUnreservedOrSubDelim(b) || b == ':'
}

func isRegNameChar(b byte) bool {
	return isUnreservedOrSubDelim(b)
}

// query / fragment = *( pchar / "/" / "?" )
func isQueryOrFragmentChar(b byte) bool {
	return isPChar(b) || b == '/' || b == '?'
}

func isSchemeChar(b byte) bool {
	return combinator.IsAlphaNum(b) || b == '+' || b == '-' || b == '.'
}
