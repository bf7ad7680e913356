package field

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultNullTokens are the strings that always mean "no value".
var DefaultNullTokens = []string{"null"}

// Validator checks a deserialized value. Errors wrapping
// validator.ErrValidationFailed are recorded as messages; any other error
// aborts the value.
type Validator interface {
	Validate(value any) error
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(value any) error

func (f ValidatorFunc) Validate(value any) error { return f(value) }

// Preprocessor transforms a value before deserialization.
type Preprocessor interface {
	Preprocess(value any) (any, error)
}

// PreprocessorFunc adapts a function to Preprocessor.
type PreprocessorFunc func(value any) (any, error)

func (f PreprocessorFunc) Preprocess(value any) (any, error) { return f(value) }

// RowContext exposes the row number of the record being processed.
type RowContext interface {
	RowNumber() int
}

// Row is a RowContext for a plain row number.
type Row int

func (r Row) RowNumber() int { return int(r) }

// Kind converts non-empty values into one concrete type. Deserialize records
// recoverable problems on the state and returns nil; a non-nil error aborts
// the value.
type Kind interface {
	Name() string
	Deserialize(s *State, value any) (any, error)
}

// validatingKind is implemented by kinds with a post-deserialization check.
// The returned value replaces the deserialized one.
type validatingKind interface {
	Validate(s *State, value any) any
}

// messageKind contributes a message layer above the base defaults.
type messageKind interface {
	Messages() Messages
}

// paramKind contributes extra template parameters to every recorded message.
type paramKind interface {
	Params() map[string]any
}

// Field is an immutable field declaration.
type Field struct {
	name          string
	verboseName   string
	required      bool
	def           any
	nullTokens    []string
	preprocessors []Preprocessor
	validators    []Validator
	kind          Kind

	catalog   Messages
	overrides Messages
	messages  Messages
}

// New declares a field of the given kind. The built-in constructors
// (NewInt, NewString, ...) should be preferred; New is for custom kinds.
func New(kind Kind, opts ...Option) *Field {
	return newField(kind, applyOptions(opts))
}

func newField(kind Kind, o options) *Field {
	f := &Field{
		verboseName:   o.verboseName,
		required:      o.required,
		def:           o.def,
		nullTokens:    append(slices.Clone(DefaultNullTokens), o.nullTokens...),
		preprocessors: o.preprocessors,
		validators:    o.validators,
		kind:          kind,
		overrides:     o.messages,
	}
	f.compose()
	return f
}

func (f *Field) compose() {
	var kindLayer Messages
	if mk, ok := f.kind.(messageKind); ok {
		kindLayer = mk.Messages()
	}
	f.messages = Compose(baseMessages, kindLayer, f.catalog, f.overrides)
}

func (f *Field) clone() *Field {
	c := *f
	return &c
}

// Named returns a copy of the field bound to an attribute name.
func (f *Field) Named(name string) *Field {
	c := f.clone()
	c.name = name
	return c
}

// Localize returns a copy with a catalog layer placed between the kind
// defaults and the per-field overrides.
func (f *Field) Localize(catalog Messages) *Field {
	c := f.clone()
	c.catalog = maps.Clone(catalog)
	c.compose()
	return c
}

func (f *Field) Name() string { return f.name }

// VerboseName is the display name used in messages. Unless set explicitly
// it is derived from the attribute name: "first_name" becomes "First name".
func (f *Field) VerboseName() string {
	if f.verboseName != "" {
		return f.verboseName
	}
	return humanize(f.name)
}

func (f *Field) Required() bool { return f.required }

func (f *Field) Default() any { return f.def }

func (f *Field) Kind() Kind { return f.kind }

// NullTokens returns the strings treated as "no value".
func (f *Field) NullTokens() []string { return slices.Clone(f.nullTokens) }

// Messages returns a copy of the resolved message table.
func (f *Field) Messages() Messages { return maps.Clone(f.messages) }

// Message renders the template for key, falling back to a diagnostic naming
// the kind when the key is missing.
func (f *Field) Message(key string, params map[string]any) string {
	tmpl, ok := f.messages[key]
	if !ok {
		return missingKeyMessage(f.kind.Name(), key)
	}
	return Format(tmpl, params)
}

func (f *Field) String() string {
	return fmt.Sprintf("<%s:%s>", f.kind.Name(), f.name)
}

// NewState returns an empty per-record state for the field.
func (f *Field) NewState() *State {
	return &State{field: f}
}

// Assign is a shortcut for NewState followed by State.Assign.
func (f *Field) Assign(raw any, ctx RowContext) (*State, error) {
	s := f.NewState()
	err := s.Assign(raw, ctx)
	return s, err
}

// preProcess trims strings and maps empty strings and null tokens to nil.
func (f *Field) preProcess(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	s = strings.TrimSpace(s)
	if s == "" || slices.Contains(f.nullTokens, s) {
		return nil
	}
	return s
}

// IsEmpty reports whether value is one of the empty sentinels: nil, an empty
// string, or an empty slice, array or map.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

func humanize(name string) string {
	s := strings.ReplaceAll(name, "_", " ")
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
