// Package binder copies processed row values into Go structs.
//
// Struct fields are matched by the `row` tag, falling back to the lowercased
// field name; `row:"-"` skips a field. Values are the typed outputs of the
// field pipeline (int64, float64, string, bool, decimal.Decimal, time.Time and
// string enums) and are converted to the destination type when that is
// lossless:
//
//	type Person struct {
//	    Name    string          `row:"name"`
//	    Age     int             `row:"age"`
//	    Balance decimal.Decimal `row:"balance"`
//	    Born    *time.Time      `row:"born"`
//	    Status  Status          `row:"status"` // type Status string
//	}
//
//	var p Person
//	if err := binder.Bind(&p, map[string]any{"name": "Ann", "age": int64(41)}); err != nil {
//	    return err
//	}
//
// Nil values leave the destination untouched, so pointer fields stay nil for
// missing cells.
//
// # Conversions
//
//   - int64 and other integers to any integer kind (with overflow checks) and floats
//   - float64 to float kinds, and to integer kinds when the value is whole
//   - decimal.Decimal to decimal.Decimal, floats, whole integers and strings
//   - string-kinded values (enums) to string kinds, and string kinds to enums
//   - time.Time to time.Time
//   - bool to bool
//
// Anything else fails with an error wrapping ErrFailedToBind.
package binder
