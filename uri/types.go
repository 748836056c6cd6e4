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

import "net/netip"

// Scheme is the "http" of "http://example.com". A parsed Scheme always
// starts with an ASCII letter.
type Scheme string

// Port is the non-negative, unsigned 32-bit integer that follows a ":" in
// an authority.
type Port uint32

// UserInfo is the decoded (already percent-decoded) userinfo subcomponent
// of an authority.
type UserInfo string

// RegName is a decoded, dot-separated registered host name, as opposed to
// a literal IPv4/IPv6 address.
type RegName string

// Query is the decoded query component, without its leading "?".
type Query string

// Fragment is the decoded fragment component, without its leading "#".
type Fragment string

// HostKind tags which of the three disjoint host productions a Host
// value holds.
type HostKind int

const (
	// HostKindName is a registered (dot-separated) name.
	HostKindName HostKind = iota
	// HostKindIPv4 is a dotted-decimal IPv4 address.
	HostKindIPv4
	// HostKindIPv6 is a bracketed IPv6 address.
	HostKindIPv6
)

// Host is the tagged union IPv4(address) | IPv6(address) |
// Name(RegName). Exactly one of the three accessors is meaningful,
// selected by Kind. IPvFuture literals (RFC 3986's "v1.xyz" bracketed
// form) are not modeled and are not a fourth variant here.
type Host struct {
	kind HostKind
	name RegName
	addr netip.Addr
}

// NewHostName builds a Host wrapping a registered name.
func NewHostName(name RegName) Host {
	return Host{kind: HostKindName, name: name}
}

// NewHostIPv4 builds a Host wrapping an IPv4 address.
func NewHostIPv4(addr netip.Addr) Host {
	return Host{kind: HostKindIPv4, addr: addr}
}

// NewHostIPv6 builds a Host wrapping an IPv6 address.
func NewHostIPv6(addr netip.Addr) Host {
	return Host{kind: HostKindIPv6, addr: addr}
}

// Kind reports which host production this value holds.
func (h Host) Kind() HostKind {
	return h.kind
}

// Name returns the registered name and true if Kind is HostKindName.
func (h Host) Name() (RegName, bool) {
	if h.kind != HostKindName {
		return "", false
	}
	return h.name, true
}

// Addr returns the IP address and true if Kind is HostKindIPv4 or
// HostKindIPv6.
func (h Host) Addr() (netip.Addr, bool) {
	if h.kind != HostKindIPv4 && h.kind != HostKindIPv6 {
		return netip.Addr{}, false
	}
	return h.addr, true
}

// Authority is (Host, Port?, UserInfo?). The stored field order (host,
// port, userinfo) intentionally differs from the emitted textual order
// (userinfo, host, port): Format is responsible for reassembling the
// RFC 3986 order.
type Authority struct {
	Host     Host
	Port     *Port
	UserInfo *UserInfo
}

// PathAbsoluteOrEmpty is path-abempty: zero or more "/segment" groups,
// used after an authority.
type PathAbsoluteOrEmpty struct{ Segments []string }

// PathAbsolute is path-absolute: "/" possibly followed by segments whose
// first is non-empty.
type PathAbsolute struct{ Segments []string }

// PathNoScheme is path-noscheme: a relative path whose first segment
// contains no ":".
type PathNoScheme struct{ Segments []string }

// PathRootless is path-rootless: a sequence of segments, the first
// non-empty, with no leading "/".
type PathRootless struct{ Segments []string }

// HierarchyPart is the tagged union following "scheme:" in an absolute
// URI: Authority(Authority, PathAbsoluteOrEmpty) |
// Absolute(PathAbsolute) | Rootless(PathRootless) | Empty.
type HierarchyPart interface {
	isHierarchyPart()
}

// HierarchyAuthority is hier-part's "//" authority path-abempty form.
type HierarchyAuthority struct {
	Authority Authority
	Path      PathAbsoluteOrEmpty
}

func (HierarchyAuthority) isHierarchyPart() {}

// HierarchyAbsolute is hier-part's path-absolute form (no authority).
type HierarchyAbsolute struct{ Path PathAbsolute }

func (HierarchyAbsolute) isHierarchyPart() {}

// HierarchyRootless is hier-part's path-rootless form.
type HierarchyRootless struct{ Path PathRootless }

func (HierarchyRootless) isHierarchyPart() {}

// HierarchyEmpty is hier-part's empty-path form.
type HierarchyEmpty struct{}

func (HierarchyEmpty) isHierarchyPart() {}

// RelativePart is the tagged union following nothing (no scheme) in a
// relative reference: Authority(Authority, PathAbsoluteOrEmpty) |
// NoScheme(PathNoScheme) | Absolute(PathAbsolute) | Empty. RFC 3986's
// relative-part never produces path-rootless, unlike hier-part.
type RelativePart interface {
	isRelativePart()
}

// RelativeAuthority is relative-part's "//" authority path-abempty form.
type RelativeAuthority struct {
	Authority Authority
	Path      PathAbsoluteOrEmpty
}

func (RelativeAuthority) isRelativePart() {}

// RelativeAbsolute is relative-part's path-absolute form.
type RelativeAbsolute struct{ Path PathAbsolute }

func (RelativeAbsolute) isRelativePart() {}

// RelativeNoScheme is relative-part's path-noscheme form.
type RelativeNoScheme struct{ Path PathNoScheme }

func (RelativeNoScheme) isRelativePart() {}

// RelativeEmpty is relative-part's empty-path form.
type RelativeEmpty struct{}

func (RelativeEmpty) isRelativePart() {}

// Uri is a fully-qualified RFC 3986 URI: Scheme ":" HierarchyPart
// [ "?" Query ] [ "#" Fragment ].
type Uri struct {
	Scheme        Scheme
	HierarchyPart HierarchyPart
	Query         *Query
	Fragment      *Fragment
}

// AbsoluteUri is a Uri without a fragment (RFC 3986 absolute-URI).
type AbsoluteUri struct {
	Scheme        Scheme
	HierarchyPart HierarchyPart
	Query         *Query
}

// RelativeReference is a reference with no scheme: RelativePart
// [ "?" Query ] [ "#" Fragment ].
type RelativeReference struct {
	RelativePart RelativePart
	Query        *Query
	Fragment     *Fragment
}

// UriReference is Uri | RelativeReference (RFC 3986 URI-reference).
// Exactly one of the two accessors is populated.
type UriReference struct {
	Uri      *Uri
	Relative *RelativeReference
}

// IsAbsolute reports whether this reference carries a scheme.
func (r UriReference) IsAbsolute() bool {
	return r.Uri != nil
}
