package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed marks an error as a recoverable validation failure.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidLength is returned when a field has an invalid length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidValue is returned when a field has an invalid value.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfRange is returned when a numeric value is out of the allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")
)

// Failure is the error returned by a failing Rule or by Fail.
// Key selects the message template recorded by the field pipeline; an empty
// Key means the default "format" template.
type Failure struct {
	Key    string
	Rule   ValidationError
	Params map[string]any
}

func (f *Failure) Error() string {
	switch {
	case f.Rule.Message != "":
		return fmt.Sprintf("validation failed: %s", f.Rule.Message)
	case f.Key != "":
		return fmt.Sprintf("validation failed: %s", f.Key)
	}
	return ErrValidationFailed.Error()
}

func (f *Failure) Unwrap() error {
	return ErrValidationFailed
}

// Fail returns a validation failure recorded under the given message key.
// Params are made available to the message template.
func Fail(key string, params map[string]any) error {
	return &Failure{Key: key, Params: params}
}

// IsFailure reports whether err signals a recoverable validation failure.
func IsFailure(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

// FailureOf extracts the *Failure from err, if any.
func FailureOf(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
