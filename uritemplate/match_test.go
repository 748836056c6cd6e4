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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSimpleAtom(t *testing.T) {
	tmpl, err := Parse("http://example.com/~{user}/")
	require.NoError(t, err)

	data, err := tmpl.Match("http://example.com/~fred/")
	require.NoError(t, err)
	v, ok := data["user"].Atom()
	require.True(t, ok)
	assert.Equal(t, "fred", v)
}

func TestMatchSegmentExplode(t *testing.T) {
	tmpl, err := Parse("{/path*}")
	require.NoError(t, err)

	data, err := tmpl.Match("/a/b/c")
	require.NoError(t, err)
	items, ok := data["path"].List()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, items)
}

func TestMatchQueryWithBothVariablesBound(t *testing.T) {
	tmpl, err := Parse("{?x,y}")
	require.NoError(t, err)

	data, err := tmpl.Match("?x=1&y=2")
	require.NoError(t, err)
	x, _ := data["x"].Atom()
	y, _ := data["y"].Atom()
	assert.Equal(t, "1", x)
	assert.Equal(t, "2", y)
}

func TestMatchListNonExplode(t *testing.T) {
	tmpl, err := Parse("{?list}")
	require.NoError(t, err)

	data, err := tmpl.Match("?list=red,green,blue")
	require.NoError(t, err)
	items, ok := data["list"].List()
	require.True(t, ok)
	assert.Equal(t, []string{"red", "green", "blue"}, items)
}

func TestMatchKeysExplode(t *testing.T) {
	tmpl, err := Parse("{;list*}")
	require.NoError(t, err)

	data, err := tmpl.Match(";a=1;b=2")
	require.NoError(t, err)
	kvs, ok := data["list"].Keys()
	require.True(t, ok)
	assert.Equal(t, []KeyValue{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, kvs)
}

func TestMatchRejectsMismatchedLiteral(t *testing.T) {
	tmpl, err := Parse("http://example.com/~{user}/")
	require.NoError(t, err)

	_, err = tmpl.Match("http://example.org/~fred/")
	assert.Error(t, err)
}

func TestMatchRejectsTrailingInput(t *testing.T) {
	tmpl, err := Parse("{x}")
	require.NoError(t, err)

	_, err = tmpl.Match("value/extra")
	assert.Error(t, err)
}

func TestRenderThenMatchRoundTripsForSimpleExpansion(t *testing.T) {
	tmpl, err := Parse("{scheme}://{host}/{path}")
	require.NoError(t, err)
	data := UriTemplateData{
		"scheme": AtomValue("http"),
		"host":   AtomValue("example.com"),
		"path":   AtomValue("a/b"),
	}
	rendered := tmpl.Render(data)
	matched, err := tmpl.Match(rendered)
	require.NoError(t, err)
	for k, v := range data {
		a, ok := v.Atom()
		require.True(t, ok)
		got, ok := matched[k].Atom()
		require.True(t, ok)
		assert.Equal(t, a, got)
	}
}
