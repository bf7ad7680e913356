package validator

import (
	"github.com/google/uuid"
)

func parseUUID(value any) (uuid.UUID, bool) {
	switch v := value.(type) {
	case uuid.UUID:
		return v, true
	case string:
		// Fast rejection before parsing: canonical form only.
		if len(v) != 36 || v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
			return uuid.Nil, false
		}
		id, err := uuid.Parse(v)
		return id, err == nil
	}
	return uuid.Nil, false
}

// UUID validates a canonical 36-character UUID string.
func UUID() Rule {
	return Rule{
		Check: func(value any) bool {
			_, ok := parseUUID(value)
			return ok
		},
		Error: ValidationError{
			Message:        "must be a valid UUID",
			TranslationKey: "validation.uuid",
		},
	}
}

func NonNilUUID() Rule {
	return Rule{
		Check: func(value any) bool {
			id, ok := parseUUID(value)
			return ok && id != uuid.Nil
		},
		Error: ValidationError{
			Message:        "UUID cannot be nil",
			TranslationKey: "validation.uuid_not_nil",
		},
	}
}
