package rowkit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/rowkit/pkg/field"
	"github.com/dmitrymomot/rowkit/pkg/i18n"
	"github.com/dmitrymomot/rowkit/pkg/logger"
)

// Schema is the field registry of one record type.
type Schema struct {
	name       string
	fields     []*field.Field
	index      map[string]int
	logger     *slog.Logger
	messages   field.Messages
	catalog    *i18n.Catalog
	lang       string
	nullTokens []string
}

// Option configures a Schema.
type Option func(*Schema)

// WithLogger sets the logger used while processing rows.
func WithLogger(l *slog.Logger) Option {
	return func(s *Schema) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMessages adds a message layer to every field added afterwards. It sits
// above the kind defaults and below each field's own overrides.
func WithMessages(m field.Messages) Option {
	return func(s *Schema) {
		if s.messages == nil {
			s.messages = make(field.Messages, len(m))
		}
		maps.Copy(s.messages, m)
	}
}

// WithCatalog localizes every field added afterwards with the catalog
// language that best matches lang. Schema messages from WithMessages win over
// catalog entries.
func WithCatalog(c *i18n.Catalog, lang string) Option {
	return func(s *Schema) {
		s.catalog = c
		s.lang = lang
	}
}

// WithNullTokens adds null tokens to fields built from schema files.
func WithNullTokens(tokens ...string) Option {
	return func(s *Schema) { s.nullTokens = append(s.nullTokens, tokens...) }
}

// NewSchema creates an empty schema for the named record type.
func NewSchema(name string, opts ...Option) *Schema {
	s := &Schema{
		name:   name,
		index:  make(map[string]int),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name is the record type name.
func (s *Schema) Name() string { return s.name }

// Add registers f under name. Fields are processed in the order they are added.
func (s *Schema) Add(name string, f *field.Field) error {
	if name == "" {
		return ErrInvalidFieldName
	}
	if f == nil {
		return fmt.Errorf("%w: %s: nil field", ErrInvalidFieldName, name)
	}
	if _, ok := s.index[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateField, name)
	}

	f = f.Named(name)
	if layer := s.layer(f.Kind().Name()); len(layer) > 0 {
		f = f.Localize(layer)
	}

	s.index[name] = len(s.fields)
	s.fields = append(s.fields, f)
	return nil
}

// MustAdd is Add for static declarations; it panics on error.
func (s *Schema) MustAdd(name string, f *field.Field) *Schema {
	if err := s.Add(name, f); err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) layer(kind string) field.Messages {
	var out field.Messages
	if s.catalog != nil {
		out = field.Compose(s.catalog.KindMessages(s.lang, kind))
	}
	if len(s.messages) > 0 {
		out = field.Compose(out, s.messages)
	}
	return out
}

// Field returns the bound declaration registered under name.
func (s *Schema) Field(name string) (*field.Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i], true
}

// Fields returns the declarations in registration order.
func (s *Schema) Fields() []*field.Field {
	return append([]*field.Field(nil), s.fields...)
}

// Names returns the field names in registration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name()
	}
	return names
}

// NewRow returns an empty row with the given row number.
func (s *Schema) NewRow(number int) *Row {
	r := &Row{schema: s, number: number, states: make([]*field.State, len(s.fields))}
	for i, f := range s.fields {
		r.states[i] = f.NewState()
	}
	return r
}

// Process assigns values to a new row, one field at a time in schema order.
// Fields missing from values are assigned nil; keys without a field are
// ignored. Unrecoverable values are joined into the returned error; the row
// is returned either way.
func (s *Schema) Process(ctx context.Context, number int, values map[string]any) (*Row, error) {
	ctx = logger.WithRow(ctx, number)
	row := s.NewRow(number)

	var errs []error
	for i, f := range s.fields {
		err := row.states[i].Assign(values[f.Name()], row)
		if err != nil {
			errs = append(errs, err)
			s.logger.WarnContext(ctx, "unrecoverable value",
				logger.Record(s.name), logger.Field(f.Name()), logger.Error(err))
			continue
		}
		for _, e := range row.states[i].Errors() {
			s.logger.DebugContext(ctx, "value rejected",
				logger.Record(s.name), logger.Field(f.Name()), logger.ErrorKey(e.Key))
		}
	}

	for key := range values {
		if _, ok := s.index[key]; !ok {
			s.logger.DebugContext(ctx, "ignoring unknown column", logger.Record(s.name), logger.Field(key))
		}
	}

	return row, errors.Join(errs...)
}

// ProcessAll processes records numbered from firstRow upwards. It stops early
// only when ctx is done; the rows processed so far are returned together with
// ctx.Err() and any unrecoverable value errors.
func (s *Schema) ProcessAll(ctx context.Context, firstRow int, records []map[string]any) ([]*Row, error) {
	rows := make([]*Row, 0, len(records))
	var errs []error
	failed := 0

	for i, values := range records {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		row, err := s.Process(ctx, firstRow+i, values)
		if err != nil {
			errs = append(errs, err)
		}
		if row.Failed() {
			failed++
		}
		rows = append(rows, row)
	}

	s.logger.InfoContext(ctx, "rows processed",
		logger.Record(s.name), logger.Count("rows", len(rows)), logger.Count("failed", failed))
	return rows, errors.Join(errs...)
}
