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

// hierarchyPartParser is hier-part, an ordered choice: "//" authority
// path-abempty, then path-absolute, then path-rootless, then the
// always-succeeding empty alternative. The empty alternative must come
// last since it never fails.
func hierarchyPartParser(in *combinator.Input) (HierarchyPart, error) {
	return combinator.Choice(
		hierAuthorityAlt,
		hierAbsoluteAlt,
		hierRootlessAlt,
		hierEmptyAlt,
	)(in)
}

func hierAuthorityAlt(in *combinator.Input) (HierarchyPart, error) {
	if _, err := combinator.Literal("//")(in); err != nil {
		return nil, err
	}
	authority, err := authorityParser(in)
	if err != nil {
		return nil, err
	}
	path, _ := pathAbsoluteOrEmptyParser(in)
	return HierarchyAuthority{Authority: authority, Path: path}, nil
}

func hierAbsoluteAlt(in *combinator.Input) (HierarchyPart, error) {
	path, err := pathAbsoluteParser(in)
	if err != nil {
		return nil, err
	}
	return HierarchyAbsolute{Path: path}, nil
}

func hierRootlessAlt(in *combinator.Input) (HierarchyPart, error) {
	path, err := pathRootlessParser(in)
	if err != nil {
		return nil, err
	}
	return HierarchyRootless{Path: path}, nil
}

func hierEmptyAlt(in *combinator.Input) (HierarchyPart, error) {
	return HierarchyEmpty{}, nil
}

// relativePartParser is relative-part, the same ordered choice as
// hier-part except path-rootless is replaced by path-noscheme (RFC 3986:
// a relative reference's first segment is never an unambiguous scheme).
func relativePartParser(in *combinator.Input) (RelativePart, error) {
	return combinator.Choice(
		relativeAuthorityAlt,
		relativeAbsoluteAlt,
		relativeNoSchemeAlt,
		relativeEmptyAlt,
	)(in)
}

func relativeAuthorityAlt(in *combinator.Input) (RelativePart, error) {
	if _, err := combinator.Literal("//")(in); err != nil {
		return nil, err
	}
	authority, err := authorityParser(in)
	if err != nil {
		return nil, err
	}
	path, _ := pathAbsoluteOrEmptyParser(in)
	return RelativeAuthority{Authority: authority, Path: path}, nil
}

func relativeAbsoluteAlt(in *combinator.Input) (RelativePart, error) {
	path, err := pathAbsoluteParser(in)
	if err != nil {
		return nil, err
	}
	return RelativeAbsolute{Path: path}, nil
}

func relativeNoSchemeAlt(in *combinator.Input) (RelativePart, error) {
	path, err := pathNoSchemeParser(in)
	if err != nil {
		return nil, err
	}
	return RelativeNoScheme{Path: path}, nil
}

func relativeEmptyAlt(in *combinator.Input) (RelativePart, error) {
	return RelativeEmpty{}, nil
}

// tryQuerySuffix consumes an optional "?" query.
func tryQuerySuffix(in *combinator.Input) (*Query, error) {
	mark := in.Mark()
	if _, err := combinator.Byte('?')(in); err != nil {
		in.Reset(mark)
		return nil, nil
	}
	q, err := queryParser(in)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// tryFragmentSuffix consumes an optional "#" fragment.
func tryFragmentSuffix(in *combinator.Input) (*Fragment, error) {
	mark := in.Mark()
	if _, err := combinator.Byte('#')(in); err != nil {
		in.Reset(mark)
		return nil, nil
	}
	f, err := fragmentParser(in)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func uriParser(in *combinator.Input) (Uri, error) {
	scheme, err := schemeParser(in)
	if err != nil {
		return Uri{}, err
	}
	if _, err := combinator.Byte(':')(in); err != nil {
		return Uri{}, err
	}
	hier, err := hierarchyPartParser(in)
	if err != nil {
		return Uri{}, err
	}
	query, err := tryQuerySuffix(in)
	if err != nil {
		return Uri{}, err
	}
	fragment, err := tryFragmentSuffix(in)
	if err != nil {
		return Uri{}, err
	}
	return Uri{Scheme: scheme, HierarchyPart: hier, Query: query, Fragment: fragment}, nil
}

func absoluteUriParser(in *combinator.Input) (AbsoluteUri, error) {
	scheme, err := schemeParser(in)
	if err != nil {
		return AbsoluteUri{}, err
	}
	if _, err := combinator.Byte(':')(in); err != nil {
		return AbsoluteUri{}, err
	}
	hier, err := hierarchyPartParser(in)
	if err != nil {
		return AbsoluteUri{}, err
	}
	query, err := tryQuerySuffix(in)
	if err != nil {
		return AbsoluteUri{}, err
	}
	return AbsoluteUri{Scheme: scheme, HierarchyPart: hier, Query: query}, nil
}

func relativeReferenceParser(in *combinator.Input) (RelativeReference, error) {
	relative, err := relativePartParser(in)
	if err != nil {
		return RelativeReference{}, err
	}
	query, err := tryQuerySuffix(in)
	if err != nil {
		return RelativeReference{}, err
	}
	fragment, err := tryFragmentSuffix(in)
	if err != nil {
		return RelativeReference{}, err
	}
	return RelativeReference{RelativePart: relative, Query: query, Fragment: fragment}, nil
}

// uriReferenceParser is URI-reference = URI / relative-ref, tried in that
// order with backtracking: a scheme-prefixed input must parse as a Uri,
// everything else falls through to RelativeReference.
func uriReferenceParser(in *combinator.Input) (UriReference, error) {
	mark := in.Mark()
	if u, err := uriParser(in); err == nil {
		return UriReference{Uri: &u}, nil
	}
	in.Reset(mark)

	r, err := relativeReferenceParser(in)
	if err != nil {
		return UriReference{}, err
	}
	return UriReference{Relative: &r}, nil
}

// ParseUri parses s as a complete absolute URI (with mandatory scheme).
func ParseUri(s string) (Uri, error) {
	return combinator.Run(uriParser, s)
}

// TryParseUri is the panic-free form of ParseUri.
func TryParseUri(s string) (Uri, bool) {
	v, err := ParseUri(s)
	return v, err == nil
}

// ParseAbsoluteUri parses s as a complete absolute-URI (scheme, no
// fragment).
func ParseAbsoluteUri(s string) (AbsoluteUri, error) {
	return combinator.Run(absoluteUriParser, s)
}

// TryParseAbsoluteUri is the panic-free form of ParseAbsoluteUri.
func TryParseAbsoluteUri(s string) (AbsoluteUri, bool) {
	v, err := ParseAbsoluteUri(s)
	return v, err == nil
}

// ParseRelativeReference parses s as a complete relative reference (no
// scheme).
func ParseRelativeReference(s string) (RelativeReference, error) {
	return combinator.Run(relativeReferenceParser, s)
}

// TryParseRelativeReference is the panic-free form of
// ParseRelativeReference.
func TryParseRelativeReference(s string) (RelativeReference, bool) {
	v, err := ParseRelativeReference(s)
	return v, err == nil
}

// ParseUriReference parses s as a complete URI-reference: either a Uri or
// a RelativeReference, distinguished by UriReference.IsAbsolute.
func ParseUriReference(s string) (UriReference, error) {
	return combinator.Run(uriReferenceParser, s)
}

// TryParseUriReference is the panic-free form of ParseUriReference.
func TryParseUriReference(s string) (UriReference, bool) {
	v, err := ParseUriReference(s)
	return v, err == nil
}

// Format renders hp in its canonical textual form.
func formatHierarchyPart(hp HierarchyPart) string {
	switch v := hp.(type) {
	case HierarchyAuthority:
		return "//" + v.Authority.Format() + v.Path.Format()
	case HierarchyAbsolute:
		return v.Path.Format()
	case HierarchyRootless:
		return v.Path.Format()
	case HierarchyEmpty:
		return ""
	default:
		panic("uri: unknown HierarchyPart implementation")
	}
}

// Format renders rp in its canonical textual form.
func formatRelativePart(rp RelativePart) string {
	switch v := rp.(type) {
	case RelativeAuthority:
		return "//" + v.Authority.Format() + v.Path.Format()
	case RelativeAbsolute:
		return v.Path.Format()
	case RelativeNoScheme:
		return v.Path.Format()
	case RelativeEmpty:
		return ""
	default:
		panic("uri: unknown RelativePart implementation")
	}
}

// Format renders the URI in its canonical textual form.
func (u Uri) Format() string {
	var b strings.Builder
	b.WriteString(u.Scheme.Format())
	b.WriteByte(':')
	b.WriteString(formatHierarchyPart(u.HierarchyPart))
	if u.Query != nil {
		b.WriteByte('?')
		b.WriteString(u.Query.Format())
	}
	if u.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(u.Fragment.Format())
	}
	return b.String()
}

// Format renders the absolute-URI in its canonical textual form.
func (u AbsoluteUri) Format() string {
	var b strings.Builder
	b.WriteString(u.Scheme.Format())
	b.WriteByte(':')
	b.WriteString(formatHierarchyPart(u.HierarchyPart))
	if u.Query != nil {
		b.WriteByte('?')
		b.WriteString(u.Query.Format())
	}
	return b.String()
}

// Format renders the relative reference in its canonical textual form.
func (r RelativeReference) Format() string {
	var b strings.Builder
	b.WriteString(formatRelativePart(r.RelativePart))
	if r.Query != nil {
		b.WriteByte('?')
		b.WriteString(r.Query.Format())
	}
	if r.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(r.Fragment.Format())
	}
	return b.String()
}

// Format renders the URI reference in its canonical textual form.
func (r UriReference) Format() string {
	if r.Uri != nil {
		return r.Uri.Format()
	}
	return r.Relative.Format()
}
