package field

import "strings"

type enumKind[T ~string] struct {
	members []T
	lookup  map[string]T
}

// NewEnum declares a field whose values are members of a string enumeration.
// Input is matched case-insensitively against the members.
func NewEnum[T ~string](members []T, opts ...Option) *Field {
	k := enumKind[T]{
		members: append([]T(nil), members...),
		lookup:  make(map[string]T, len(members)),
	}
	for _, m := range members {
		k.lookup[strings.ToLower(string(m))] = m
	}
	return newField(k, applyOptions(opts))
}

func (enumKind[T]) Name() string { return "EnumField" }

// Members returns the allowed values.
func (k enumKind[T]) Members() []T { return append([]T(nil), k.members...) }

func (k enumKind[T]) Deserialize(s *State, value any) (any, error) {
	var text string
	switch v := value.(type) {
	case string:
		text = v
	case T:
		text = string(v)
	default:
		s.Record(KeyFormat, map[string]any{"value": s.Original()})
		return nil, nil
	}
	m, ok := k.lookup[strings.ToLower(text)]
	if !ok {
		s.Record(KeyFormat, map[string]any{"value": s.Original()})
		return nil, nil
	}
	return m, nil
}
