package timeparse

import "errors"

var (
	// ErrNotISO8601 is returned when a string does not match the ISO-8601 datetime pattern.
	ErrNotISO8601 = errors.New("not a valid ISO8601-formatted datetime string")

	// ErrOutOfRange is returned when a matched component (month, hour, offset, ...) is out of range.
	ErrOutOfRange = errors.New("datetime component out of range")

	// ErrUnsupportedDirective is returned for strptime directives with no Go layout equivalent.
	ErrUnsupportedDirective = errors.New("unsupported strptime directive")
)
