package binder

import "errors"

var (
	// ErrInvalidTarget is returned when the destination is not a non-nil struct pointer.
	ErrInvalidTarget = errors.New("binder: target must be a non-nil pointer to struct")

	// ErrFailedToBind is returned when a value cannot be stored in its field.
	ErrFailedToBind = errors.New("binder: failed to bind value")
)
