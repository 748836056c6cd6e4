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

// Concat concatenates t with other, merging a trailing literal of t into
// a leading literal of other so that the result has no two adjacent
// Literal parts. This merge is what makes concatenation
// associative: whether "(a+b)+c" or "a+(b+c)" is built, any literal run
// that straddles a splice point ends up merged into a single Literal
// either way, since merging is just string concatenation at the splice
// and string concatenation is itself associative.
func (t UriTemplate) Concat(other UriTemplate) UriTemplate {
	if len(t.Parts) == 0 {
		return other
	}
	if len(other.Parts) == 0 {
		return t
	}

	last := t.Parts[len(t.Parts)-1]
	first := other.Parts[0]

	lastLit, lastIsLit := last.(Literal)
	firstLit, firstIsLit := first.(Literal)

	merged := make([]Part, 0, len(t.Parts)+len(other.Parts))
	merged = append(merged, t.Parts[:len(t.Parts)-1]...)
	if lastIsLit && firstIsLit {
		merged = append(merged, lastLit+firstLit)
		merged = append(merged, other.Parts[1:]...)
	} else {
		merged = append(merged, last)
		merged = append(merged, other.Parts...)
	}
	return UriTemplate{Parts: merged}
}
