package validator

import (
	"fmt"
	"regexp"
)

var (
	alphanumericRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// Matches validates a string against pattern. The pattern is compiled once and
// panics if invalid, so misconfigured schemas fail at definition time.
func Matches(pattern string, description string) Rule {
	return MatchesRegexp(regexp.MustCompile(pattern), description)
}

func MatchesRegexp(re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: stringRule(re.MatchString),
		Error: ValidationError{
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}

func Alphanumeric() Rule {
	return Rule{
		Check: stringRule(alphanumericRegex.MatchString),
		Error: ValidationError{
			Message:        "must contain only letters and numbers",
			TranslationKey: "validation.alphanumeric",
		},
	}
}

func NumericString() Rule {
	return Rule{
		Check: stringRule(numericStringRegex.MatchString),
		Error: ValidationError{
			Message:        "must contain only numbers",
			TranslationKey: "validation.numeric",
		},
	}
}
