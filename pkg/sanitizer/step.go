package sanitizer

import (
	"fmt"
	"slices"
	"sort"

	"github.com/dmitrymomot/rowkit/pkg/validator"
)

// Step is one preprocessing stage applied to a raw value before deserialization.
type Step func(value any) (any, error)

// Preprocess implements the field preprocessor contract.
func (s Step) Preprocess(value any) (any, error) {
	return s(value)
}

// String lifts a string transform into a Step. Non-string values pass through.
func String(transform func(string) string) Step {
	return func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return value, nil
		}
		return transform(s), nil
	}
}

// Chain lifts several string transforms into a single Step.
func Chain(transforms ...func(string) string) Step {
	return String(Compose(transforms...))
}

// Digits strips everything but digits and rejects values with no digits at all.
func Digits() Step {
	return func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return value, nil
		}
		digits := KeepDigits(s)
		if digits == "" {
			return nil, fmt.Errorf("%w: no digits in %q", validator.ErrValidationFailed, s)
		}
		return digits, nil
	}
}

// Alias maps known spellings to canonical values ("M" -> "Male").
// Unknown strings are rejected when strict is set, otherwise passed through.
func Alias(aliases map[string]string, strict bool) Step {
	return func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return value, nil
		}
		if canonical, found := aliases[s]; found {
			return canonical, nil
		}
		if strict {
			return nil, fmt.Errorf("%w: unknown alias %q", validator.ErrValidationFailed, s)
		}
		return s, nil
	}
}

// OnlyStrings rejects any non-string value.
func OnlyStrings() Step {
	return func(value any) (any, error) {
		if _, ok := value.(string); !ok {
			return nil, fmt.Errorf("%w: expected text, got %T", validator.ErrValidationFailed, value)
		}
		return value, nil
	}
}

var namedTransforms = map[string]func(string) string{
	"trim":                  Trim,
	"lower":                 ToLower,
	"upper":                 ToUpper,
	"title":                 ToTitle,
	"snake_case":            ToSnakeCase,
	"kebab_case":            ToKebabCase,
	"spaces_to_underscores": SpacesToUnderscores,
	"normalize_whitespace":  NormalizeWhitespace,
	"normalize_unicode":     NormalizeUnicode,
	"remove_control_chars":  RemoveControlChars,
	"keep_digits":           KeepDigits,
	"remove_commas":         RemoveThousandsSeparators(","),
}

// Named returns the step registered under name. Besides every plain transform
// ("lower", "snake_case", ...) it knows "digits" and "only_strings".
func Named(name string) (Step, bool) {
	switch name {
	case "digits":
		return Digits(), true
	case "only_strings":
		return OnlyStrings(), true
	}
	transform, ok := namedTransforms[name]
	if !ok {
		return nil, false
	}
	return String(transform), true
}

// Names lists every name accepted by Named.
func Names() []string {
	names := make([]string, 0, len(namedTransforms)+2)
	for name := range namedTransforms {
		names = append(names, name)
	}
	names = append(names, "digits", "only_strings")
	sort.Strings(names)
	return slices.Compact(names)
}
