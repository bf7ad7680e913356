package field

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecoverable marks errors that aborted processing of a single value.
	ErrUnrecoverable = errors.New("field: unrecoverable value")

	// ErrNotText is the cause reported when a text-only parser receives another type.
	ErrNotText = errors.New("field: value is not text")
)

// Error is one recorded problem for a field value.
type Error struct {
	Key     string
	Message string
	Params  map[string]any
}

// UnrecoverableError is returned by Assign when a value could not be processed
// at all. The same message is recorded on the state.
type UnrecoverableError struct {
	Field   string
	Row     int
	Key     string
	Message string
	Err     error
}

func (e *UnrecoverableError) Error() string {
	return fmt.Sprintf("field %s (row %d): %s", e.Field, e.Row, e.Message)
}

func (e *UnrecoverableError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnrecoverable}
	}
	return []error{ErrUnrecoverable, e.Err}
}
