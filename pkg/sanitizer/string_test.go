package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rowkit/pkg/sanitizer"
)

func TestStringTransforms(t *testing.T) {
	tests := []struct {
		name      string
		transform func(string) string
		input     string
		expected  string
	}{
		{"trim", sanitizer.Trim, "\t hello \n", "hello"},
		{"lower", sanitizer.ToLower, "HeLLo", "hello"},
		{"upper", sanitizer.ToUpper, "HeLLo", "HELLO"},
		{"title", sanitizer.ToTitle, "new YORK city", "New York City"},
		{"snake case", sanitizer.ToSnakeCase, "  Re Opened--Case ", "re_opened_case"},
		{"kebab case", sanitizer.ToKebabCase, "Re Opened Case", "re-opened-case"},
		{"spaces to underscores", sanitizer.SpacesToUnderscores, "in  progress now", "in_progress_now"},
		{"normalize whitespace", sanitizer.NormalizeWhitespace, "  a \t b\n\nc ", "a b c"},
		{"normalize unicode", sanitizer.NormalizeUnicode, "Cafe\u0301", "Caf\u00e9"},
		{"remove control chars", sanitizer.RemoveControlChars, "a\x00b\tc", "ab\tc"},
		{"keep digits", sanitizer.KeepDigits, "+1 (555) 010-99", "155501099"},
		{"remove commas", sanitizer.RemoveThousandsSeparators(","), "1,234,567", "1234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.transform(tt.input))
		})
	}
}

func TestApplyAndCompose(t *testing.T) {
	assert.Equal(t, "mixed case input", sanitizer.Apply("  Mixed   CASE input ",
		sanitizer.NormalizeWhitespace, sanitizer.ToLower))

	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.ToSnakeCase)
	assert.Equal(t, "in_progress", clean(" In Progress "))
	assert.Equal(t, "x", sanitizer.Apply("x"))

	t.Run("pipeline is fixed at composition", func(t *testing.T) {
		steps := []func(string) string{sanitizer.ToUpper}
		upper := sanitizer.Compose(steps...)
		steps[0] = sanitizer.ToLower
		assert.Equal(t, "ABC", upper("abc"))
	})
}
