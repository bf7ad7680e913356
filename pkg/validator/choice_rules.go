package validator

import (
	"fmt"
	"slices"
	"strings"
)

func InList[T comparable](allowedValues ...T) Rule {
	return Rule{
		Check: func(value any) bool {
			v, ok := value.(T)
			return ok && slices.Contains(allowedValues, v)
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must be one of: %v", allowedValues),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"allowed_values": allowedValues,
			},
		},
	}
}

func NotInList[T comparable](forbiddenValues ...T) Rule {
	return Rule{
		Check: func(value any) bool {
			v, ok := value.(T)
			return ok && !slices.Contains(forbiddenValues, v)
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must not be one of: %v", forbiddenValues),
			TranslationKey: "validation.not_in_list",
			TranslationValues: map[string]any{
				"forbidden_values": forbiddenValues,
			},
		},
	}
}

func InListCaseInsensitive(allowedValues ...string) Rule {
	return Rule{
		Check: stringRule(func(s string) bool {
			return slices.ContainsFunc(allowedValues, func(allowed string) bool {
				return strings.EqualFold(s, allowed)
			})
		}),
		Error: ValidationError{
			Message:        fmt.Sprintf("must be one of: %v", allowedValues),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"allowed_values": allowedValues,
			},
		},
	}
}
