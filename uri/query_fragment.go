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
	"github.com/jplu/websyntax/internal/combinator"
	"github.com/jplu/websyntax/internal/pct"
)

// queryParser matches *( pchar / "/" / "?" ), the decoded query body
// without its leading "?".
func queryParser(in *combinator.Input) (Query, error) {
	decoded, err := pct.Parser(isQueryOrFragmentChar)(in)
	if err != nil {
		return "", err
	}
	return Query(decoded), nil
}

// fragmentParser matches *( pchar / "/" / "?" ), the decoded fragment
// body without its leading "#".
func fragmentParser(in *combinator.Input) (Fragment, error) {
	decoded, err := pct.Parser(isQueryOrFragmentChar)(in)
	if err != nil {
		return "", err
	}
	return Fragment(decoded), nil
}

// ParseQuery parses s (without a leading "?") as a complete query.
func ParseQuery(s string) (Query, error) {
	return combinator.Run(queryParser, s)
}

// TryParseQuery is the panic-free form of ParseQuery.
func TryParseQuery(s string) (Query, bool) {
	v, err := ParseQuery(s)
	return v, err == nil
}

// ParseFragment parses s (without a leading "#") as a complete fragment.
func ParseFragment(s string) (Fragment, error) {
	return combinator.Run(fragmentParser, s)
}

// TryParseFragment is the panic-free form of ParseFragment.
func TryParseFragment(s string) (Fragment, bool) {
	v, err := ParseFragment(s)
	return v, err == nil
}

// Format renders the query body, without its leading "?".
func (q Query) Format() string {
	return pct.Encode(string(q), isQueryOrFragmentChar)
}

// Format renders the fragment body, without its leading "#".
func (f Fragment) Format() string {
	return pct.Encode(string(f), isQueryOrFragmentChar)
}
