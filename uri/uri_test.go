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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUriFullForm(t *testing.T) {
	u, err := ParseUri("http://user@example.com:8080/a/b?k=v#f")
	require.NoError(t, err)

	require.Equal(t, Scheme("http"), u.Scheme)
	hier, ok := u.HierarchyPart.(HierarchyAuthority)
	require.True(t, ok)
	name, ok := hier.Authority.Host.Name()
	require.True(t, ok)
	assert.Equal(t, RegName("example.com"), name)
	require.NotNil(t, hier.Authority.UserInfo)
	assert.Equal(t, UserInfo("user"), *hier.Authority.UserInfo)
	require.NotNil(t, hier.Authority.Port)
	assert.Equal(t, Port(8080), *hier.Authority.Port)
	assert.Equal(t, []string{"a", "b"}, hier.Path.Segments)
	require.NotNil(t, u.Query)
	assert.Equal(t, Query("k=v"), *u.Query)
	require.NotNil(t, u.Fragment)
	assert.Equal(t, Fragment("f"), *u.Fragment)

	assert.Equal(t, "http://user@example.com:8080/a/b?k=v#f", u.Format())
}

func TestParseUriRoundTripsForVariousForms(t *testing.T) {
	cases := []string{
		"http://example.com",
		"http://example.com/",
		"mailto:user@example.com",
		"urn:isbn:0451450523",
		"file:///etc/hosts",
		"ftp://ftp.example.org/a/b/c",
		"http://example.com/a%20b?q=1%232",
	}
	for _, s := range cases {
		u, err := ParseUri(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, u.Format(), s)
	}
}

func TestHostParseDistinguishesIPv4IPv6AndRegName(t *testing.T) {
	h, err := ParseHost("[::1]")
	require.NoError(t, err)
	assert.Equal(t, HostKindIPv6, h.Kind())
	assert.Equal(t, "[::1]", h.Format())

	h, err = ParseHost("1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, HostKindIPv4, h.Kind())
	assert.Equal(t, "1.2.3.4", h.Format())

	// Not a valid 4-octet address, so it falls through to RegName.
	h, err = ParseHost("1.2.3.4.5")
	require.NoError(t, err)
	assert.Equal(t, HostKindName, h.Kind())
	name, ok := h.Name()
	require.True(t, ok)
	assert.Equal(t, RegName("1.2.3.4.5"), name)
}

func TestParseUriReferenceDistinguishesAbsoluteFromRelative(t *testing.T) {
	ref, err := ParseUriReference("http://example.com/a")
	require.NoError(t, err)
	assert.True(t, ref.IsAbsolute())

	ref, err = ParseUriReference("/a/b?x=1")
	require.NoError(t, err)
	assert.False(t, ref.IsAbsolute())
	require.NotNil(t, ref.Relative)
	assert.Equal(t, "/a/b?x=1", ref.Format())

	ref, err = ParseUriReference("../a/b")
	require.NoError(t, err)
	assert.False(t, ref.IsAbsolute())
	assert.Equal(t, "../a/b", ref.Format())
}

func TestParseAbsoluteUriRejectsFragment(t *testing.T) {
	_, err := ParseAbsoluteUri("http://example.com/a#f")
	require.Error(t, err)
}

func TestParsePathNoSchemeRejectsColonInFirstSegment(t *testing.T) {
	_, err := ParseRelativeReference("a:b/c")
	require.Error(t, err)

	r, err := ParseRelativeReference("a/b:c")
	require.NoError(t, err)
	assert.Equal(t, "a/b:c", r.Format())
}

func TestNewPathAbsoluteRejectsAmbiguousLeadingEmptySegment(t *testing.T) {
	_, err := NewPathAbsolute([]string{"", "a"})
	require.Error(t, err)

	p, err := NewPathAbsolute([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "/a/b", p.Format())
}

func TestTryParseUriReportsFailureWithoutPanicking(t *testing.T) {
	_, ok := TryParseUri("not a uri")
	assert.False(t, ok)

	u, ok := TryParseUri("http://example.com")
	assert.True(t, ok)
	assert.Equal(t, Scheme("http"), u.Scheme)
}
