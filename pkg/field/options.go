package field

import (
	"maps"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/rowkit/pkg/validator"
)

// Option configures a field declaration.
type Option func(*options)

type options struct {
	verboseName   string
	required      bool
	def           any
	nullTokens    []string
	preprocessors []Preprocessor
	validators    []Validator
	messages      Messages

	// numeric kinds
	min, max *decimal.Decimal

	// string kind
	minLen, maxLen int

	// decimal kind
	places      *int32
	placesLimit int32
	rounding    Rounding

	// datetime kind
	format string

	// boolean kind
	truthy, falsy *[]any
}

func applyOptions(opts []Option) options {
	o := options{required: true, rounding: RoundHalfEven}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithVerboseName sets the display name used in messages.
func WithVerboseName(name string) Option {
	return func(o *options) { o.verboseName = name }
}

// Optional marks the field as not required.
func Optional() Option {
	return func(o *options) { o.required = false }
}

// Required sets the required flag explicitly. Fields are required by default.
func Required(required bool) Option {
	return func(o *options) { o.required = required }
}

// WithDefault sets the value returned by Read when no value is stored.
func WithDefault(value any) Option {
	return func(o *options) { o.def = value }
}

// WithNullTokens adds strings treated as "no value", on top of "null".
// Matching is case-sensitive.
func WithNullTokens(tokens ...string) Option {
	return func(o *options) { o.nullTokens = append(o.nullTokens, tokens...) }
}

// WithValidators appends validators run after deserialization.
func WithValidators(validators ...Validator) Option {
	return func(o *options) { o.validators = append(o.validators, validators...) }
}

// WithPreprocessors appends preprocessors run before deserialization.
func WithPreprocessors(preprocessors ...Preprocessor) Option {
	return func(o *options) { o.preprocessors = append(o.preprocessors, preprocessors...) }
}

// WithMessages overrides message templates for this field.
func WithMessages(messages Messages) Option {
	return func(o *options) {
		if o.messages == nil {
			o.messages = make(Messages, len(messages))
		}
		maps.Copy(o.messages, messages)
	}
}

// WithMin sets the inclusive lower bound for Int, Float and Decimal fields.
func WithMin[T validator.Numeric](v T) Option {
	return func(o *options) {
		if d, ok := validator.AsDecimal(v); ok {
			o.min = &d
		}
	}
}

// WithMax sets the inclusive upper bound for Int, Float and Decimal fields.
func WithMax[T validator.Numeric](v T) Option {
	return func(o *options) {
		if d, ok := validator.AsDecimal(v); ok {
			o.max = &d
		}
	}
}

// WithMinDecimal sets the inclusive lower bound from an exact decimal.
func WithMinDecimal(min decimal.Decimal) Option {
	return func(o *options) { o.min = &min }
}

// WithMaxDecimal sets the inclusive upper bound from an exact decimal.
func WithMaxDecimal(max decimal.Decimal) Option {
	return func(o *options) { o.max = &max }
}

// WithDecimalRange sets both numeric bounds from decimals.
func WithDecimalRange(min, max decimal.Decimal) Option {
	return func(o *options) {
		o.min = &min
		o.max = &max
	}
}

// WithMinLen sets the minimum rune length of String fields.
func WithMinLen(n int) Option {
	return func(o *options) { o.minLen = n }
}

// WithMaxLen sets the maximum rune length of String fields; zero means no limit.
func WithMaxLen(n int) Option {
	return func(o *options) { o.maxLen = n }
}

// WithPlaces quantizes Decimal values to the exponent of precision,
// e.g. decimal.RequireFromString("0.01") rounds to two places.
func WithPlaces(precision decimal.Decimal) Option {
	return func(o *options) {
		places := -precision.Exponent()
		o.places = &places
	}
}

// WithPlacesLimit rejects Decimal values with more than n fractional digits.
func WithPlacesLimit(n int32) Option {
	return func(o *options) { o.placesLimit = n }
}

// WithRounding sets the quantization mode of Decimal fields.
func WithRounding(r Rounding) Option {
	return func(o *options) { o.rounding = r }
}

// WithFormat sets the DateTime parsing format: "iso", "iso8601", "rfc",
// "rfc822", a strptime pattern or a Go layout.
func WithFormat(format string) Option {
	return func(o *options) { o.format = format }
}

// WithTruthy replaces the tokens a Boolean field maps to true.
// An empty set switches the field to generic truthiness.
func WithTruthy(tokens ...any) Option {
	return func(o *options) { o.truthy = &tokens }
}

// WithFalsy replaces the tokens a Boolean field maps to false.
func WithFalsy(tokens ...any) Option {
	return func(o *options) { o.falsy = &tokens }
}

// WithGenericTruthiness makes a Boolean field use the truthiness of the
// value itself instead of token sets.
func WithGenericTruthiness() Option {
	return func(o *options) {
		empty := []any{}
		o.truthy = &empty
	}
}
