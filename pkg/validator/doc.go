// Package validator provides composable validation rules for deserialized
// field values together with the error types used to report them.
//
// A Rule wraps a Check function over a single value (an int64, float64,
// decimal.Decimal, string, time.Time or any other type a field produces) and
// carries translation-friendly error metadata. Rules satisfy the validator
// contract of the field package, so they can be attached directly:
//
//	age := field.NewInt(
//	    field.WithValidators(validator.Min(0), validator.Max(130)),
//	)
//
// A failing rule returns a *Failure, which wraps ErrValidationFailed. The field
// pipeline records such failures as "format" errors unless the rule was given
// its own message key with Rule.Keyed, in which case that key is looked up in
// the field's message table instead. Custom validators can signal the same
// thing by returning Fail or any error wrapping ErrValidationFailed.
//
// # Rule families
//
//   - numeric_rules.go – Min, Max, Between, Positive, NonNegative, MaxDecimalPlaces
//   - string_rules.go  – MinLen, MaxLen, Len, NotBlank
//   - choice_rules.go  – InList, NotInList, InListCaseInsensitive
//   - pattern_rules.go – Matches, Alphanumeric, NumericString
//   - format_rules.go  – Email, URL
//   - uuid_rules.go    – UUID, NonNilUUID
//   - date_rules.go    – PastDate, FutureDate, DateAfter, DateBefore, DateBetween
//
// Rules never panic on unexpected input types: a value of the wrong type
// simply fails the check.
//
// # Error aggregation
//
// ValidationError and ValidationErrors describe recorded errors at row level.
// ValidationErrors implements error and offers Has, Get, GetErrors and Fields
// helpers; ExtractValidationErrors and IsValidationError work with errors.As.
package validator
