package field

import (
	"errors"
	"maps"
	"slices"

	"github.com/dmitrymomot/rowkit/pkg/validator"
)

// State holds the runtime data of one field for one record instance.
type State struct {
	field    *Field
	row      int
	original any
	value    any
	errors   []Error
}

// Field returns the declaration the state belongs to.
func (s *State) Field() *Field { return s.field }

// RowNumber is the row number of the last assignment.
func (s *State) RowNumber() int { return s.row }

// Original is the raw value passed to the last Assign.
func (s *State) Original() any { return s.original }

// Value is the stored value without the default substitution.
func (s *State) Value() any { return s.value }

// Read returns the stored value, or the field default when it is nil.
func (s *State) Read() any {
	if s.value == nil {
		return s.field.def
	}
	return s.value
}

// Errors returns the problems recorded by the last assignment.
func (s *State) Errors() []Error { return slices.Clone(s.errors) }

// Messages returns the rendered messages in the order they were recorded.
func (s *State) Messages() []string {
	if len(s.errors) == 0 {
		return nil
	}
	out := make([]string, len(s.errors))
	for i, e := range s.errors {
		out[i] = e.Message
	}
	return out
}

// Failed reports whether the last assignment recorded any problem.
func (s *State) Failed() bool { return len(s.errors) > 0 }

// Record renders the template for key and appends it to the state.
// {field} and {row_number} are always set; kind parameters fill in keys
// not supplied by params.
func (s *State) Record(key string, params map[string]any) Error {
	p := make(map[string]any, len(params)+4)
	if pk, ok := s.field.kind.(paramKind); ok {
		maps.Copy(p, pk.Params())
	}
	maps.Copy(p, params)
	p["field"] = s.field.VerboseName()
	p["row_number"] = s.row

	e := Error{Key: key, Message: s.field.Message(key, p), Params: p}
	s.errors = append(s.errors, e)
	return e
}

// Abort records key and returns the matching *UnrecoverableError. The stored
// value is cleared.
func (s *State) Abort(key string, params map[string]any, cause error) error {
	e := s.Record(key, params)
	s.value = nil
	return &UnrecoverableError{
		Field:   s.field.name,
		Row:     s.row,
		Key:     key,
		Message: e.Message,
		Err:     cause,
	}
}

// Assign runs the processing pipeline over raw and stores the result.
// Recoverable problems are recorded and leave err nil.
func (s *State) Assign(raw any, ctx RowContext) error {
	s.reset(raw, ctx)
	f := s.field

	value := f.preProcess(raw)

	output, err := s.preprocess(value)
	if err != nil {
		return s.abort(err, value)
	}

	if f.required && IsEmpty(value) {
		s.Record(KeyRequired, map[string]any{"value": value})
	}

	if !IsEmpty(output) {
		output, err = f.kind.Deserialize(s, output)
		if err != nil {
			return s.abort(err, output)
		}
	}

	output, err = s.validate(output)
	if err != nil {
		return s.abort(err, output)
	}

	if IsEmpty(output) {
		output = nil
	}
	s.value = output
	return nil
}

func (s *State) reset(raw any, ctx RowContext) {
	s.row = 0
	if ctx != nil {
		s.row = ctx.RowNumber()
	}
	s.original = raw
	s.value = nil
	s.errors = nil
}

func (s *State) preprocess(value any) (any, error) {
	if IsEmpty(value) || len(s.field.preprocessors) == 0 {
		return value, nil
	}
	input := value
	for _, p := range s.field.preprocessors {
		out, err := p.Preprocess(value)
		if err != nil {
			if validator.IsFailure(err) {
				s.recordFailure(err, input)
				return nil, nil
			}
			return nil, err
		}
		value = out
	}
	return value, nil
}

func (s *State) validate(value any) (any, error) {
	if vk, ok := s.field.kind.(validatingKind); ok {
		value = vk.Validate(s, value)
	}
	if IsEmpty(value) {
		return value, nil
	}
	for _, v := range s.field.validators {
		err := v.Validate(value)
		if err == nil {
			continue
		}
		if !validator.IsFailure(err) {
			return nil, err
		}
		s.recordFailure(err, s.original)
	}
	return value, nil
}

// recordFailure records a validator.Failure under its key, or "format".
func (s *State) recordFailure(err error, value any) {
	key := KeyFormat
	params := map[string]any{}
	if f, ok := validator.FailureOf(err); ok {
		if f.Key != "" {
			key = f.Key
		}
		maps.Copy(params, f.Params)
	}
	params["value"] = value
	params["input"] = value
	s.Record(key, params)
}

func (s *State) abort(err error, value any) error {
	var ue *UnrecoverableError
	if errors.As(err, &ue) {
		s.value = nil
		return err
	}
	return s.Abort(KeyInvalid, map[string]any{
		"value": s.original,
		"input": value,
		"error": err.Error(),
	}, err)
}
