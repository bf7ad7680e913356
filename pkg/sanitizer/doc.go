// Package sanitizer provides string transforms for cleaning raw cell values
// and lifts them into preprocessing steps for the field pipeline.
//
// Plain transforms (Trim, ToLower, ToSnakeCase, SpacesToUnderscores,
// NormalizeWhitespace, NormalizeUnicode, KeepDigits, …) are ordinary
// func(string) string values and can be combined with Apply and Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.NormalizeUnicode,
//	    sanitizer.NormalizeWhitespace,
//	    sanitizer.ToLower,
//	)
//
// A Step is one stage of a field's preprocessing chain. String lifts a
// transform into a Step that leaves non-string values untouched; Chain does
// the same for several transforms at once. Steps such as Digits and Alias may
// reject a value by returning an error wrapping validator.ErrValidationFailed,
// which the field pipeline records as a format error:
//
//	status := field.NewEnum(statuses,
//	    field.WithPreprocessors(sanitizer.Chain(sanitizer.ToLower, sanitizer.SpacesToUnderscores)),
//	)
//
// Steps are looked up by name with Named, which is what schema files use.
//
// All helpers are stateless and safe for concurrent use.
package sanitizer
