package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

func stringRule(check func(s string) bool) func(any) bool {
	return func(value any) bool {
		s, ok := value.(string)
		return ok && check(s)
	}
}

// NotBlank validates that a string contains something other than whitespace.
func NotBlank() Rule {
	return Rule{
		Check: stringRule(func(s string) bool { return strings.TrimSpace(s) != "" }),
		Error: ValidationError{
			Message:        "field is required",
			TranslationKey: "validation.required",
		},
	}
}

// MinLen validates the rune length of a string.
func MinLen(min int) Rule {
	return Rule{
		Check: stringRule(func(s string) bool { return utf8.RuneCountInString(s) >= min }),
		Error: ValidationError{
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"min": min,
			},
		},
	}
}

func MaxLen(max int) Rule {
	return Rule{
		Check: stringRule(func(s string) bool { return utf8.RuneCountInString(s) <= max }),
		Error: ValidationError{
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"max": max,
			},
		},
	}
}

func Len(exact int) Rule {
	return Rule{
		Check: stringRule(func(s string) bool { return utf8.RuneCountInString(s) == exact }),
		Error: ValidationError{
			Message:        fmt.Sprintf("must be exactly %d characters long", exact),
			TranslationKey: "validation.exact_length",
			TranslationValues: map[string]any{
				"length": exact,
			},
		},
	}
}
