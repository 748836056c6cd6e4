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

package pct

import (
	"testing"

	"github.com/jplu/websyntax/internal/combinator"
	"github.com/stretchr/testify/require"
)

func isUnreserved(b byte) bool {
	return combinator.IsAlphaNum(b) || b == '-' || b == '.' || b == '_' || b == '~'
}

func TestDecodeRoundTrip(t *testing.T) {
	v, err := combinator.Run(Parser(isUnreserved), "a%20b")
	require.NoError(t, err)
	require.Equal(t, "a b", v)

	require.Equal(t, "a%20b", Encode(v, isUnreserved))
}

func TestDecodeAcceptsUppercaseAndLowercaseHex(t *testing.T) {
	v, err := combinator.Run(Parser(isUnreserved), "%2f%2F")
	require.NoError(t, err)
	require.Equal(t, "//", v)
}

func TestDecodeRejectsInvalidUTF8(t *testing.T) {
	_, err := combinator.Run(Parser(isUnreserved), "%FF%FE")
	require.Error(t, err)
}

func TestEncodeIsIdempotentForAlreadyEncodedInput(t *testing.T) {
	// A decoded string that itself contains a literal "%20" (not meant as
	// an escape of "%") passes through unchanged rather than becoming
	// "%2520".
	require.Equal(t, "already%20encoded", Encode("already%20encoded", isUnreserved))
}

func TestEncodeEscapesDisallowedBytes(t *testing.T) {
	require.Equal(t, "a%2Fb", Encode("a/b", isUnreserved))
}

func TestParser1RequiresAtLeastOneByte(t *testing.T) {
	_, err := combinator.Run(Parser1(isUnreserved), "")
	require.Error(t, err)

	v, err := combinator.Run(Parser(isUnreserved), "")
	require.NoError(t, err)
	require.Equal(t, "", v)
}
