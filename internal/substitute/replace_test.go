// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 qrep Contributors

package substitute_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/qrep-dev/qrep/internal/substitute"
	qreperr "github.com/qrep-dev/qrep/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func replace(t *testing.T, input, pattern, replacement string) string {
	t.Helper()
	sub, err := substitute.Compile(pattern, replacement)
	require.NoError(t, err)
	return sub.Apply(input)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		replacement string
		input       string
		want        string
	}{
		{"literal", "abc", "xyz", "abc abc def", "xyz xyz def"},
		{"character class", "[0-9]+", "NUM", "item42 item7", "itemNUM itemNUM"},
		{"swap groups", `(\w+)@(\w+)`, "$2@$1", "user@host", "host@user"},
		{"braced group", `(a)`, "${1}x", "a", "ax"},
		{"named group", `(?P<word>\w+)!`, "<${word}>", "hi! yo!", "<hi> <yo>"},
		{"missing group expands empty", `(a)(b)`, "[$3]", "ab", "[]"},
		{"unbraced name swallows suffix", `(a)`, "$1x", "a", ""},
		{"escaped dollar", "cost", "$$5", "cost", "$5"},
		{"anchors", "^line", "LINE", "line one\nline two", "LINE one\nline two"},
		{"multiline anchors", "(?m)^line", "LINE", "line one\nline two", "LINE one\nLINE two"},
		{"alternation", "cat|dog", "pet", "cat dog bird", "pet pet bird"},
		{"empty pattern", "", "-", "abc", "-a-b-c-"},
		{"zero length matches advance", "x*", "-", "abc", "-a-b-c-"},
		{"empty match after match is skipped", "a*", "-", "baaac", "-b-c-"},
		{"non overlapping", "aa", "b", "aaaaa", "bba"},
		{"unicode", "ü", "ue", "über müde", "ueber muede"},
		{"empty input", "abc", "xyz", "", ""},
		{"deletion", `\s+`, "", "a b\tc\n", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, replace(t, tt.input, tt.pattern, tt.replacement))
		})
	}
}

func TestApply_NoMatchReturnsInputVerbatim(t *testing.T) {
	inputs := []string{
		"",
		"plain text without digits",
		"multi\nline\r\ncontent\twith tabs",
		"ünïcödé ✓",
	}

	for _, input := range inputs {
		assert.Equal(t, input, replace(t, input, "[0-9]", "N"))
	}
}

func TestApply_LiteralPatternMatchesStringsReplaceAll(t *testing.T) {
	tests := []struct {
		literal     string
		replacement string
		input       string
	}{
		{"foo", "bar", "foo food fo foo"},
		{"a.b", "X", "a.b axb a.b"},
		{"(x)", "y", "(x) x (x)"},
		{"[1]", "one", "[1][1] 1"},
		{"ß", "ss", "Straße Fuß"},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got := replace(t, tt.input, regexp.QuoteMeta(tt.literal), tt.replacement)
			assert.Equal(t, strings.ReplaceAll(tt.input, tt.literal, tt.replacement), got)
		})
	}
}

func TestApply_FixedPoint(t *testing.T) {
	tests := []struct {
		pattern     string
		replacement string
		input       string
	}{
		{"abc", "xyz", "abc abc def"},
		{"[0-9]+", "NUM", "item42 item7"},
		{`\s+`, " ", "a  b\t\tc"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			once := replace(t, tt.input, tt.pattern, tt.replacement)
			twice := replace(t, once, tt.pattern, tt.replacement)
			assert.Equal(t, once, twice)
		})
	}
}

func TestCompile_InvalidPattern(t *testing.T) {
	for _, pattern := range []string{"(", "[a-", "a**", `\`} {
		t.Run(pattern, func(t *testing.T) {
			sub, err := substitute.Compile(pattern, "r")
			require.Error(t, err)
			assert.Nil(t, sub)
			assert.True(t, qreperr.HasCode(err, qreperr.CodePatternCompileInvalid))
			assert.Equal(t, qreperr.KindPatternCompile, qreperr.KindOf(err))
			assert.Contains(t, err.Error(),
				"failed to replace with regular expression '"+pattern+"' and replacement 'r'")
			assert.Contains(t, err.Error(), "error parsing regexp")

			fields := qreperr.FieldsOf(err)
			assert.Equal(t, pattern, fields["pattern"])
			assert.Equal(t, "r", fields["replacement"])
		})
	}
}

func TestSubstitution_Count(t *testing.T) {
	sub, err := substitute.Compile("[0-9]+", "N")
	require.NoError(t, err)
	assert.Equal(t, 2, sub.Count("item42 item7"))
	assert.Equal(t, 0, sub.Count("none"))
	assert.Equal(t, "itemN itemN", sub.Apply("item42 item7"))
}
