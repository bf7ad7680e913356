package rowkit

import "errors"

var (
	// ErrUnknownField is returned when a row is addressed by a name the schema does not declare.
	ErrUnknownField = errors.New("rowkit: unknown field")

	// ErrDuplicateField is returned when a schema declares the same name twice.
	ErrDuplicateField = errors.New("rowkit: duplicate field")

	// ErrInvalidFieldName is returned for empty field names.
	ErrInvalidFieldName = errors.New("rowkit: invalid field name")

	// ErrInvalidSchema is returned when a schema file cannot be turned into a schema.
	ErrInvalidSchema = errors.New("rowkit: invalid schema")
)
