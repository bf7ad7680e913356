package rowkit

import (
	"fmt"

	"github.com/dmitrymomot/rowkit/pkg/binder"
	"github.com/dmitrymomot/rowkit/pkg/field"
	"github.com/dmitrymomot/rowkit/pkg/validator"
)

// Row is one record instance: a row number plus one field state per
// declared field.
type Row struct {
	schema *Schema
	number int
	states []*field.State
}

// RowNumber makes Row a field.RowContext.
func (r *Row) RowNumber() int { return r.number }

// Schema returns the schema the row was created from.
func (r *Row) Schema() *Schema { return r.schema }

// State returns the runtime state of the named field.
func (r *Row) State(name string) (*field.State, bool) {
	i, ok := r.schema.index[name]
	if !ok {
		return nil, false
	}
	return r.states[i], true
}

// Set assigns raw to the named field. The returned error is either
// ErrUnknownField or the field's unrecoverable error; recorded problems are
// available through Errors.
func (r *Row) Set(name string, raw any) error {
	st, ok := r.State(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return st.Assign(raw, r)
}

// Get reads the named field: the stored value or the field default.
// Unknown names read as nil.
func (r *Row) Get(name string) any {
	st, ok := r.State(name)
	if !ok {
		return nil
	}
	return st.Read()
}

// Original returns the raw value last assigned to the named field.
func (r *Row) Original(name string) any {
	st, ok := r.State(name)
	if !ok {
		return nil
	}
	return st.Original()
}

// Values reads every field into a map keyed by field name.
func (r *Row) Values() map[string]any {
	out := make(map[string]any, len(r.states))
	for i, f := range r.schema.fields {
		out[f.Name()] = r.states[i].Read()
	}
	return out
}

// Failed reports whether any field recorded a problem.
func (r *Row) Failed() bool {
	for _, st := range r.states {
		if st.Failed() {
			return true
		}
	}
	return false
}

// Errors returns every recorded problem in field order, then record order.
func (r *Row) Errors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for i, f := range r.schema.fields {
		for _, e := range r.states[i].Errors() {
			errs.Add(validator.ValidationError{
				Field:             f.Name(),
				Message:           e.Message,
				TranslationKey:    e.Key,
				TranslationValues: e.Params,
			})
		}
	}
	return errs
}

// FieldErrors returns the rendered messages of the named field.
func (r *Row) FieldErrors(name string) []string {
	st, ok := r.State(name)
	if !ok {
		return nil
	}
	return st.Messages()
}

// Err returns the row's problems as an error, or nil when the row is clean.
func (r *Row) Err() error {
	if errs := r.Errors(); !errs.IsEmpty() {
		return errs
	}
	return nil
}

// Bind copies the row's values into the struct pointed to by dst, matching
// `row` struct tags against field names.
func (r *Row) Bind(dst any) error {
	return binder.Bind(dst, r.Values())
}
