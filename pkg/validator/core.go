package validator

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errors []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errors = append(errors, err)
		}
	}
	return errors
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a single check over one deserialized value.
type Rule struct {
	Check func(value any) bool
	Error ValidationError
	key   string
}

// Validate runs the check and returns a *Failure when it does not hold.
func (r Rule) Validate(value any) error {
	if r.Check == nil || r.Check(value) {
		return nil
	}
	return &Failure{Key: r.key, Rule: r.Error, Params: r.Error.TranslationValues}
}

// Keyed returns a copy of the rule whose failures are recorded under key
// instead of the field's default format message.
func (r Rule) Keyed(key string) Rule {
	r.key = key
	return r
}

// Apply runs every rule against value and collects the failures.
func Apply(field string, value any, rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if rule.Check != nil && !rule.Check(value) {
			e := rule.Error
			e.Field = field
			e.TranslationValues = maps.Clone(e.TranslationValues)
			errs = append(errs, e)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
