package sanitizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

func ToLower(s string) string {
	return strings.ToLower(s)
}

func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// ToTitle upper-cases the first letter of every word ("new york" -> "New York").
func ToTitle(s string) string {
	return cases.Title(language.Und).String(s)
}

// ToSnakeCase converts a string to snake_case by replacing non-alphanumeric
// characters with underscores and normalizing multiple underscores.
func ToSnakeCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	prevUnderscore := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevUnderscore = false
			continue
		}
		if !prevUnderscore {
			b.WriteRune('_')
			prevUnderscore = true
		}
	}

	return strings.Trim(b.String(), "_")
}

// ToKebabCase is ToSnakeCase with hyphens.
func ToKebabCase(s string) string {
	return strings.ReplaceAll(ToSnakeCase(s), "_", "-")
}

// SpacesToUnderscores replaces every run of whitespace with a single underscore.
func SpacesToUnderscores(s string) string {
	return whitespaceRegex.ReplaceAllString(s, "_")
}

// NormalizeWhitespace collapses runs of whitespace into one space and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// NormalizeUnicode converts a string to Unicode NFC so that visually equal
// inputs ("e" + combining acute vs "é") compare equal.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// RemoveControlChars removes control characters except newline, carriage return and tab.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// KeepDigits keeps only numeric digits.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// RemoveThousandsSeparators drops the given grouping separator ("1,234,567" -> "1234567").
func RemoveThousandsSeparators(sep string) func(string) string {
	return func(s string) string {
		return strings.ReplaceAll(s, sep, "")
	}
}
