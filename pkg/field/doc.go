// Package field implements declarative field descriptors that turn raw cell
// values into typed values while collecting human-readable error messages.
//
// A *Field is an immutable declaration: a kind (Int, Float, String, Decimal,
// DateTime, Boolean, Enum) plus options such as the required flag, a default,
// extra null tokens, preprocessors, validators and message overrides. Each
// value is processed through a State, which holds the runtime data for one
// record instance:
//
//	age := field.NewInt(field.WithMin(0), field.WithMax(130)).Named("age")
//
//	st := age.NewState()
//	if err := st.Assign(" 42 ", field.Row(7)); err != nil {
//	    // unrecoverable: only the datetime kind and misbehaving validators get here
//	}
//	st.Read()     // int64(42)
//	st.Messages() // nil
//
// # Pipeline
//
// Assign runs these stages in order, never stopping at a recorded error:
//
//  1. reset the state and remember the raw input;
//  2. trim strings; empty strings and null tokens ("null" plus WithNullTokens,
//     matched case-sensitively) become nil;
//  3. run preprocessors unless the value is empty; a validation failure
//     records a format error and turns the value into nil;
//  4. record a required error when the pre-processed value is empty and the
//     field is required (the default);
//  5. deserialize non-empty values with the kind;
//  6. run the kind's validate hook, then the configured validators unless the
//     value is empty;
//  7. store the value.
//
// Read returns the stored value or the default when it is nil.
//
// # Messages
//
// Message templates are resolved once per field from layers applied in order:
// base defaults, kind defaults, an optional catalog (see Localize) and
// WithMessages overrides. Templates use {name} placeholders; {field} and
// {row_number} are always available. A key missing from the table renders a
// diagnostic naming the kind and the key instead of failing.
//
// # Errors
//
// Recorded problems are Error values on the State. Problems that abort a value
// (datetime parse failures, validators or preprocessors returning errors that
// do not wrap validator.ErrValidationFailed) are also recorded and returned
// from Assign as *UnrecoverableError, which wraps ErrUnrecoverable.
//
// Fields are safe for concurrent use; a State belongs to one record instance
// and must not be shared between goroutines.
package field
