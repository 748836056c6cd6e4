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

func TestParseSimpleExpansion(t *testing.T) {
	tmpl, err := Parse("http://example.com/~{user}/")
	require.NoError(t, err)
	require.Len(t, tmpl.Parts, 3)

	lit0, ok := tmpl.Parts[0].(Literal)
	require.True(t, ok)
	assert.Equal(t, Literal("http://example.com/~"), lit0)

	expr, ok := tmpl.Parts[1].(Expression)
	require.True(t, ok)
	assert.Equal(t, OperatorNone, expr.Operator)
	require.Len(t, expr.Variables, 1)
	assert.Equal(t, "user", expr.Variables[0].Name)
	assert.Nil(t, expr.Variables[0].Modifier)

	lit1, ok := tmpl.Parts[2].(Literal)
	require.True(t, ok)
	assert.Equal(t, Literal("/"), lit1)
}

func TestParseOperatorsAndModifiers(t *testing.T) {
	tmpl, err := Parse("{/path*}{?x,y:3}{#frag}")
	require.NoError(t, err)
	require.Len(t, tmpl.Parts, 3)

	e0 := tmpl.Parts[0].(Expression)
	assert.Equal(t, OperatorSegment, e0.Operator)
	require.Len(t, e0.Variables, 1)
	assert.Equal(t, "path", e0.Variables[0].Name)
	require.NotNil(t, e0.Variables[0].Modifier)
	assert.Equal(t, ModifierKindExplode, e0.Variables[0].Modifier.Kind)

	e1 := tmpl.Parts[1].(Expression)
	assert.Equal(t, OperatorQuery, e1.Operator)
	require.Len(t, e1.Variables, 2)
	assert.Equal(t, "x", e1.Variables[0].Name)
	assert.Equal(t, "y", e1.Variables[1].Name)
	require.NotNil(t, e1.Variables[1].Modifier)
	assert.Equal(t, ModifierKindPrefix, e1.Variables[1].Modifier.Kind)
	assert.Equal(t, 3, e1.Variables[1].Modifier.PrefixLength)

	e2 := tmpl.Parts[2].(Expression)
	assert.Equal(t, OperatorFragment, e2.Operator)
}

func TestParseDottedVariableName(t *testing.T) {
	tmpl, err := Parse("{a.b.c}")
	require.NoError(t, err)
	e := tmpl.Parts[0].(Expression)
	require.Len(t, e.Variables, 1)
	assert.Equal(t, "a.b.c", e.Variables[0].Name)
}

func TestParseRejectsUnterminatedExpression(t *testing.T) {
	_, err := Parse("{foo")
	require.Error(t, err)
}

func TestFormatRoundTrips(t *testing.T) {
	for _, s := range []string{
		"http://example.com/~{user}/",
		"{/path*}",
		"{?x,y}",
		"{;x}",
		"{+path}/here",
		"find{?year*}",
	} {
		tmpl, err := Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, tmpl.Format(), s)
	}
}

func TestTryParse(t *testing.T) {
	_, ok := TryParse("{unterminated")
	assert.False(t, ok)

	tmpl, ok := TryParse("{x}")
	assert.True(t, ok)
	assert.Len(t, tmpl.Parts, 1)
}

func TestOperatorPipeFormatsAsPipe(t *testing.T) {
	assert.Equal(t, "|", OperatorPipe.Format())
	assert.Equal(t, "!", OperatorBang.Format())
}
