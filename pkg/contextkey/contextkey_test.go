package contextkey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsangint/vscode/pkg/contextkey"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		canonical string
	}{
		{"single key", "editorFocus", "editorFocus"},
		{"negation", "!editorFocus", "!editorFocus"},
		{"equality", "editorLangId == markdown", "editorLangId == markdown"},
		{"inequality", "editorLangId != markdown", "editorLangId != markdown"},
		{"quoted value", "editorLangId == 'markdown'", "editorLangId == markdown"},
		{"conjunction sorts operands", "b && a", "a && b"},
		{"disjunction sorts operands", "b || a", "a || b"},
		{"nested conjunctions flatten", "a && (b && c)", "a && b && c"},
		{"duplicate operands collapse", "a && a && b", "a && b"},
		{"or inside and keeps parens", "a && (b || c)", "(b || c) && a"},
		{"whitespace is irrelevant", "a&&b", "a && b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := contextkey.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.canonical, expr.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"a &&",
		"a && && b",
		"(a",
		"a ==",
		"!(a && b)",
		"= b",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := contextkey.Parse(input)
			assert.Error(t, err)
		})
	}
}

func TestEquals(t *testing.T) {
	a, err := contextkey.Parse("editorFocus && !inputFocus")
	require.NoError(t, err)
	b, err := contextkey.Parse("!inputFocus && editorFocus")
	require.NoError(t, err)
	c, err := contextkey.Parse("editorFocus")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))
	assert.False(t, a.Equals(c))
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"both empty", "", "", true},
		{"one empty", "editorFocus", "", false},
		{"identical", "editorFocus", "editorFocus", true},
		{"commutative and", "a && b", "b && a", true},
		{"commutative or", "a || b", "b || a", true},
		{"quoted versus bare value", "x == 'true'", "x == true", true},
		{"different keys", "a", "b", false},
		{"negation is significant", "a", "!a", false},
		{"unparseable falls back to text", "a &&", "a &&", true},
		{"unparseable mismatch", "a &&", "b &&", false},
		{"surrounding whitespace", "  a && b  ", "b && a", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contextkey.Equivalent(tt.a, tt.b))
		})
	}
}
