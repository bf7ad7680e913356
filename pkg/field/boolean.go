package field

import (
	"reflect"

	"github.com/shopspring/decimal"
)

var (
	defaultTruthy = []any{"t", "T", "true", "True", "TRUE", "1", 1, true, "yes", "Yes", "YES"}
	defaultFalsy  = []any{"f", "F", "false", "False", "FALSE", "0", 0, 0.0, false, "no", "No", "NO"}
)

type booleanKind struct {
	truthy, falsy []any
}

// NewBoolean declares a field holding bool values. Input is matched against
// the truthy and falsy token sets; numbers compare by value, so 1.0 matches 1.
// With an empty truthy set the generic truthiness of the value is used.
func NewBoolean(opts ...Option) *Field {
	o := applyOptions(opts)
	k := booleanKind{truthy: defaultTruthy, falsy: defaultFalsy}
	if o.truthy != nil {
		k.truthy = *o.truthy
	}
	if o.falsy != nil {
		k.falsy = *o.falsy
	}
	return newField(k, o)
}

func (booleanKind) Name() string { return "BooleanField" }

func (k booleanKind) Deserialize(s *State, value any) (any, error) {
	if len(k.truthy) == 0 {
		return truthiness(value), nil
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		s.Record(KeyFormat, map[string]any{"value": s.Original()})
		return nil, nil
	}
	if containsToken(k.truthy, value) {
		return true, nil
	}
	if containsToken(k.falsy, value) {
		return false, nil
	}
	s.Record(KeyFormat, map[string]any{"value": s.Original()})
	return nil, nil
}

func containsToken(tokens []any, value any) bool {
	for _, t := range tokens {
		if tokenEqual(t, value) {
			return true
		}
	}
	return false
}

func tokenEqual(a, b any) bool {
	na, aNum := numericValue(a)
	nb, bNum := numericValue(b)
	if aNum || bNum {
		return aNum && bNum && na == nb
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}

// numericValue treats booleans as 0 and 1, matching numeric equality of
// loosely typed spreadsheet cells.
func numericValue(v any) (float64, bool) {
	switch x := v.(type) {
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case decimal.Decimal:
		return x.InexactFloat64(), true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func truthiness(v any) bool {
	if v == nil {
		return false
	}
	if n, ok := numericValue(v); ok {
		return n != 0
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
