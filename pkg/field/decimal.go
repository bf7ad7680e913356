package field

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/shopspring/decimal"
)

// Rounding selects how Decimal fields quantize values.
type Rounding int

const (
	RoundHalfEven Rounding = iota
	RoundHalfUp
	RoundHalfDown
	RoundUp
	RoundDown
	RoundCeiling
	RoundFloor
)

var roundingNames = map[string]Rounding{
	"ROUND_HALF_EVEN": RoundHalfEven,
	"ROUND_HALF_UP":   RoundHalfUp,
	"ROUND_HALF_DOWN": RoundHalfDown,
	"ROUND_UP":        RoundUp,
	"ROUND_DOWN":      RoundDown,
	"ROUND_CEILING":   RoundCeiling,
	"ROUND_FLOOR":     RoundFloor,
}

// ParseRounding maps names like "ROUND_HALF_UP" (or "half_up") to a Rounding.
func ParseRounding(name string) (Rounding, error) {
	if r, ok := roundingNames[name]; ok {
		return r, nil
	}
	if r, ok := roundingNames["ROUND_"+upperASCII(name)]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("field: unknown rounding mode %q", name)
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// Quantize rounds d to places fractional digits.
func (r Rounding) Quantize(d decimal.Decimal, places int32) decimal.Decimal {
	switch r {
	case RoundHalfUp:
		return d.Round(places)
	case RoundHalfDown:
		t := d.Truncate(places)
		if d.Sub(t).Abs().Equal(decimal.New(5, -places-1)) {
			return t
		}
		return d.Round(places)
	case RoundUp:
		return d.RoundUp(places)
	case RoundDown:
		return d.RoundDown(places)
	case RoundCeiling:
		return d.RoundCeil(places)
	case RoundFloor:
		return d.RoundFloor(places)
	default:
		return d.RoundBank(places)
	}
}

type decimalKind struct {
	numericRange
	places      *int32
	placesLimit int32
	rounding    Rounding
}

// NewDecimal declares a field holding decimal.Decimal values parsed from their
// string form. Values with more fractional digits than WithPlacesLimit, or
// outside the range, record a format error and are discarded. WithPlaces
// quantizes the rest.
func NewDecimal(opts ...Option) *Field {
	o := applyOptions(opts)
	return newField(decimalKind{
		numericRange: numericRange{min: o.min, max: o.max},
		places:       o.places,
		placesLimit:  o.placesLimit,
		rounding:     o.rounding,
	}, o)
}

func (decimalKind) Name() string { return "DecimalField" }

func (decimalKind) Deserialize(s *State, value any) (any, error) {
	var text string
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		text = v
	case float64:
		text = strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		text = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		s.Record(KeyFormat, map[string]any{"value": s.Original()})
		return nil, nil
	default:
		switch reflect.ValueOf(value).Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			text = fmt.Sprint(value)
		default:
			s.Record(KeyFormat, map[string]any{"value": s.Original()})
			return nil, nil
		}
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		s.Record(KeyFormat, map[string]any{"value": s.Original()})
		return nil, nil
	}
	return d, nil
}

func (k decimalKind) Validate(s *State, value any) any {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return value
	}
	if exp := d.Exponent(); k.placesLimit > 0 && (exp > k.placesLimit || -exp > k.placesLimit) {
		s.Record(KeyFormat, map[string]any{"value": d.String(), "places_limit": k.placesLimit})
		return nil
	}
	if k.places != nil {
		d = k.rounding.Quantize(d, *k.places)
	}
	return k.numericRange.Validate(s, d)
}
