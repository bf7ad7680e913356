package field

import (
	"errors"
	"math"
	"reflect"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/rowkit/pkg/validator"
)

// numericRange is the inclusive range check shared by the numeric kinds.
// A value outside the range records a format error and is discarded.
type numericRange struct {
	min, max *decimal.Decimal
}

func (r numericRange) Validate(s *State, value any) any {
	if value == nil || (r.min == nil && r.max == nil) {
		return value
	}
	if r.below(value) || r.above(value) {
		params := map[string]any{"value": s.Original()}
		if r.min != nil {
			params["min"] = r.min.String()
		}
		if r.max != nil {
			params["max"] = r.max.String()
		}
		s.Record(KeyFormat, params)
		return nil
	}
	return value
}

func (r numericRange) below(value any) bool {
	if r.min == nil {
		return false
	}
	if f, ok := nonFinite(value); ok {
		return math.IsInf(f, -1)
	}
	d, ok := validator.AsDecimal(value)
	return ok && d.LessThan(*r.min)
}

func (r numericRange) above(value any) bool {
	if r.max == nil {
		return false
	}
	if f, ok := nonFinite(value); ok {
		return math.IsInf(f, 1)
	}
	d, ok := validator.AsDecimal(value)
	return ok && d.GreaterThan(*r.max)
}

// nonFinite reports NaN and infinite floats, which have no decimal form.
func nonFinite(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return 0, false
	}
	return f, math.IsNaN(f) || math.IsInf(f, 0)
}

type intKind struct{ numericRange }

// NewInt declares a field holding int64 values. Strings are parsed in base
// 10, floats and decimals are truncated, booleans become 0 or 1.
func NewInt(opts ...Option) *Field {
	o := applyOptions(opts)
	return newField(intKind{numericRange{min: o.min, max: o.max}}, o)
}

func (intKind) Name() string { return "IntField" }

func (intKind) Deserialize(s *State, value any) (any, error) {
	switch v := value.(type) {
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			s.Record(KeyFormat, map[string]any{"value": s.Original()})
			return nil, nil
		}
		return n, nil
	case bool:
		if v {
			return int64(1), nil
		}
		return int64(0), nil
	}

	d, ok := validator.AsDecimal(value)
	if !ok {
		s.Record(KeyFormat, map[string]any{"value": s.Original()})
		return nil, nil
	}
	whole := d.Truncate(0)
	if !whole.BigInt().IsInt64() {
		s.Record(KeyFormat, map[string]any{"value": s.Original()})
		return nil, nil
	}
	return whole.IntPart(), nil
}

type floatKind struct{ numericRange }

// NewFloat declares a field holding float64 values.
func NewFloat(opts ...Option) *Field {
	o := applyOptions(opts)
	return newField(floatKind{numericRange{min: o.min, max: o.max}}, o)
}

func (floatKind) Name() string { return "FloatField" }

func (floatKind) Deserialize(s *State, value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			s.Record(KeyFormat, map[string]any{"value": s.Original()})
			return nil, nil
		}
		return f, nil
	case bool:
		if v {
			return 1.0, nil
		}
		return 0.0, nil
	case decimal.Decimal:
		return v.InexactFloat64(), nil
	}

	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	s.Record(KeyFormat, map[string]any{"value": s.Original()})
	return nil, nil
}
