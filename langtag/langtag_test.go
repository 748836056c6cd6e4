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

package langtag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguageTagSimplePrimary(t *testing.T) {
	tag, err := ParseLanguageTag("en")
	require.NoError(t, err)
	assert.Equal(t, Language{Primary: "en"}, tag.Language)
	assert.Nil(t, tag.Script)
	assert.Nil(t, tag.Region)
	assert.Empty(t, tag.Variant)
	assert.Equal(t, "en", tag.Format())
}

func TestParseLanguageTagWithScriptAndRegion(t *testing.T) {
	tag, err := ParseLanguageTag("zh-Hant-TW")
	require.NoError(t, err)
	assert.Equal(t, Language{Primary: "zh"}, tag.Language)
	require.NotNil(t, tag.Script)
	assert.Equal(t, Script("Hant"), *tag.Script)
	require.NotNil(t, tag.Region)
	assert.Equal(t, Region("TW"), *tag.Region)
	assert.Equal(t, "zh-Hant-TW", tag.Format())
}

func TestParseLanguageTagWithNumericRegion(t *testing.T) {
	tag, err := ParseLanguageTag("es-419")
	require.NoError(t, err)
	require.NotNil(t, tag.Region)
	assert.Equal(t, Region("419"), *tag.Region)
	assert.Equal(t, "es-419", tag.Format())
}

func TestParseLanguageTagWithExtendedLanguage(t *testing.T) {
	tag, err := ParseLanguageTag("zh-cmn-Hans-CN")
	require.NoError(t, err)
	assert.Equal(t, Language{Primary: "zh", Extensions: []string{"cmn"}}, tag.Language)
	require.NotNil(t, tag.Script)
	assert.Equal(t, Script("Hans"), *tag.Script)
	require.NotNil(t, tag.Region)
	assert.Equal(t, Region("CN"), *tag.Region)
	assert.Equal(t, "zh-cmn-Hans-CN", tag.Format())
}

func TestParseLanguageTagWithVariant(t *testing.T) {
	tag, err := ParseLanguageTag("de-CH-1901")
	require.NoError(t, err)
	require.NotNil(t, tag.Region)
	assert.Equal(t, Region("CH"), *tag.Region)
	assert.Equal(t, []string{"1901"}, tag.Variant)
	assert.Equal(t, "de-CH-1901", tag.Format())
}

func TestParseLanguageTagWithScriptRegionAndVariant(t *testing.T) {
	tag, err := ParseLanguageTag("hy-Latn-IT-arevela")
	require.NoError(t, err)
	assert.Equal(t, Language{Primary: "hy"}, tag.Language)
	require.NotNil(t, tag.Script)
	assert.Equal(t, Script("Latn"), *tag.Script)
	require.NotNil(t, tag.Region)
	assert.Equal(t, Region("IT"), *tag.Region)
	assert.Equal(t, []string{"arevela"}, tag.Variant)
	assert.Equal(t, "hy-Latn-IT-arevela", tag.Format())
}

func TestParseLanguageTagWithFourLetterPrimaryHasNoExtensions(t *testing.T) {
	tag, err := ParseLanguageTag("root")
	require.NoError(t, err)
	assert.Equal(t, Language{Primary: "root"}, tag.Language)
	assert.Equal(t, "root", tag.Format())
}

func TestParseLanguageTagRejectsTrailingGarbage(t *testing.T) {
	_, err := ParseLanguageTag("en-")
	require.Error(t, err)
}

func TestParseLanguageRangeWildcard(t *testing.T) {
	r, err := ParseLanguageRange("*")
	require.NoError(t, err)
	assert.Equal(t, LanguageRangeKindAny, r.Kind())
	assert.Equal(t, "*", r.Format())
}

func TestParseLanguageRangeSpecific(t *testing.T) {
	r, err := ParseLanguageRange("en-US")
	require.NoError(t, err)
	assert.Equal(t, LanguageRangeKindSpecific, r.Kind())
	parts, ok := r.Parts()
	require.True(t, ok)
	assert.Equal(t, []string{"en", "US"}, parts)
	assert.Equal(t, "en-US", r.Format())
}

func TestTryParseLanguageTagReportsFailureWithoutPanicking(t *testing.T) {
	_, ok := TryParseLanguageTag("1")
	assert.False(t, ok)

	tag, ok := TryParseLanguageTag("fr")
	assert.True(t, ok)
	assert.Equal(t, "fr", tag.Language.Primary)
}
