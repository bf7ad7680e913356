package binder

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

var (
	decimalType = reflect.TypeOf(decimal.Decimal{})
	timeType    = reflect.TypeOf(time.Time{})
)

// setFieldValue stores value into field, converting where it is lossless.
func setFieldValue(field reflect.Value, value any) error {
	ft := field.Type()

	if ft.Kind() == reflect.Pointer {
		elem := reflect.New(ft.Elem())
		if err := setFieldValue(elem.Elem(), value); err != nil {
			return err
		}
		field.Set(elem)
		return nil
	}

	vv := reflect.ValueOf(value)
	if vv.Type() == ft || (ft.Kind() == reflect.Interface && vv.Type().Implements(ft)) {
		field.Set(vv)
		return nil
	}

	switch ft {
	case decimalType:
		d, err := toDecimal(value)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(d))
		return nil
	case timeType:
		return mismatch(value, ft)
	}

	if d, ok := value.(decimal.Decimal); ok {
		return setFromDecimal(field, d)
	}

	switch ft.Kind() {
	case reflect.String:
		if vv.Kind() != reflect.String {
			return mismatch(value, ft)
		}
		field.SetString(vv.String())

	case reflect.Bool:
		if vv.Kind() != reflect.Bool {
			return mismatch(value, ft)
		}
		field.SetBool(vv.Bool())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := toInt64(vv)
		if err != nil {
			return err
		}
		if field.OverflowInt(n) {
			return fmt.Errorf("value %d overflows %s", n, ft)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := toInt64(vv)
		if err != nil {
			return err
		}
		if n < 0 || field.OverflowUint(uint64(n)) {
			return fmt.Errorf("value %d overflows %s", n, ft)
		}
		field.SetUint(uint64(n))

	case reflect.Float32, reflect.Float64:
		f, err := toFloat64(vv)
		if err != nil {
			return err
		}
		field.SetFloat(f)

	default:
		return fmt.Errorf("unsupported field type %s", ft)
	}
	return nil
}

func setFromDecimal(field reflect.Value, d decimal.Decimal) error {
	ft := field.Type()
	switch ft.Kind() {
	case reflect.String:
		field.SetString(d.String())
	case reflect.Float32, reflect.Float64:
		field.SetFloat(d.InexactFloat64())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !d.IsInteger() || !d.BigInt().IsInt64() || field.OverflowInt(d.IntPart()) {
			return fmt.Errorf("decimal %s does not fit %s", d, ft)
		}
		field.SetInt(d.IntPart())
	default:
		return mismatch(d, ft)
	}
	return nil
}

func toDecimal(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		return decimal.NewFromString(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, fmt.Errorf("non-finite float %v", v)
		}
		return decimal.NewFromFloat(v), nil
	}
	vv := reflect.ValueOf(value)
	switch vv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(vv.Int()), nil
	}
	return decimal.Decimal{}, mismatch(value, decimalType)
}

func toInt64(vv reflect.Value) (int64, error) {
	switch vv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return vv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := vv.Uint()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		f := vv.Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("float %v is not a whole number", f)
		}
		return int64(f), nil
	}
	return 0, fmt.Errorf("cannot convert %s to an integer", vv.Type())
}

func toFloat64(vv reflect.Value) (float64, error) {
	switch vv.Kind() {
	case reflect.Float32, reflect.Float64:
		return vv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(vv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(vv.Uint()), nil
	}
	return 0, fmt.Errorf("cannot convert %s to a float", vv.Type())
}

func mismatch(value any, ft reflect.Type) error {
	return fmt.Errorf("cannot assign %T to %s", value, ft)
}
