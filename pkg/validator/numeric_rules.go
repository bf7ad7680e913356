package validator

import (
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// AsDecimal converts any numeric value (including decimal.Decimal) to an exact
// decimal. Non-finite floats and non-numeric values report false.
func AsDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, false
		}
		return *v, true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int8:
		return decimal.NewFromInt(int64(v)), true
	case int16:
		return decimal.NewFromInt(int64(v)), true
	case int32:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case uint:
		return fromUint(uint64(v)), true
	case uint8:
		return fromUint(uint64(v)), true
	case uint16:
		return fromUint(uint64(v)), true
	case uint32:
		return fromUint(uint64(v)), true
	case uint64:
		return fromUint(v), true
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	}

	// Named numeric types (type Age int) land here.
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromUint(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return fromFloat(rv.Float())
	}
	return decimal.Decimal{}, false
}

func fromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

func fromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(f), true
}

func compareRule(bound decimal.Decimal, ok func(cmp int) bool) func(any) bool {
	return func(value any) bool {
		d, isNum := AsDecimal(value)
		if !isNum {
			return false
		}
		return ok(d.Cmp(bound))
	}
}

// Min validates that a numeric value is greater than or equal to min.
func Min[T Numeric](min T) Rule {
	bound, _ := AsDecimal(min)
	return MinDecimal(bound)
}

// Max validates that a numeric value is less than or equal to max.
func Max[T Numeric](max T) Rule {
	bound, _ := AsDecimal(max)
	return MaxDecimal(bound)
}

func MinDecimal(min decimal.Decimal) Rule {
	return Rule{
		Check: compareRule(min, func(cmp int) bool { return cmp >= 0 }),
		Error: ValidationError{
			Message:        fmt.Sprintf("must be at least %s", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"min": min.String(),
			},
		},
	}
}

func MaxDecimal(max decimal.Decimal) Rule {
	return Rule{
		Check: compareRule(max, func(cmp int) bool { return cmp <= 0 }),
		Error: ValidationError{
			Message:        fmt.Sprintf("must be at most %s", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"max": max.String(),
			},
		},
	}
}

// Between validates min <= value <= max.
func Between[T Numeric](min, max T) Rule {
	lo, _ := AsDecimal(min)
	hi, _ := AsDecimal(max)
	return Rule{
		Check: func(value any) bool {
			d, ok := AsDecimal(value)
			return ok && d.Cmp(lo) >= 0 && d.Cmp(hi) <= 0
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must be between %s and %s", lo, hi),
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"min": lo.String(),
				"max": hi.String(),
			},
		},
	}
}

func Positive() Rule {
	return Rule{
		Check: compareRule(decimal.Zero, func(cmp int) bool { return cmp > 0 }),
		Error: ValidationError{
			Message:        "must be positive",
			TranslationKey: "validation.positive",
		},
	}
}

func NonNegative() Rule {
	return Rule{
		Check: compareRule(decimal.Zero, func(cmp int) bool { return cmp >= 0 }),
		Error: ValidationError{
			Message:        "cannot be negative",
			TranslationKey: "validation.non_negative",
		},
	}
}

// MaxDecimalPlaces validates that a value has at most places fractional digits.
func MaxDecimalPlaces(places int32) Rule {
	return Rule{
		Check: func(value any) bool {
			d, ok := AsDecimal(value)
			if !ok {
				return false
			}
			return d.Equal(d.Truncate(places))
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must have at most %d decimal places", places),
			TranslationKey: "validation.decimal_places",
			TranslationValues: map[string]any{
				"places": places,
			},
		},
	}
}
