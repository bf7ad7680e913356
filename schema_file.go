package rowkit

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rowkit/pkg/field"
	"github.com/dmitrymomot/rowkit/pkg/sanitizer"
)

type schemaFile struct {
	Name       string            `yaml:"name"`
	NullTokens []string          `yaml:"null_tokens"`
	Messages   map[string]string `yaml:"messages"`
	Fields     []fieldSpec       `yaml:"fields"`
}

type fieldSpec struct {
	Name        string            `yaml:"name"`
	Type        string            `yaml:"type"`
	VerboseName string            `yaml:"verbose_name"`
	Required    *bool             `yaml:"required"`
	Default     any               `yaml:"default"`
	NullTokens  []string          `yaml:"null_tokens"`
	Messages    map[string]string `yaml:"messages"`
	Preprocess  []string          `yaml:"preprocess"`
	Validate    []ruleSpec        `yaml:"validate"`

	Min *decimalValue `yaml:"min"`
	Max *decimalValue `yaml:"max"`

	MinLen int `yaml:"min_len"`
	MaxLen int `yaml:"max_len"`

	Places      *decimalValue `yaml:"places"`
	PlacesLimit int32         `yaml:"places_limit"`
	Rounding    string        `yaml:"rounding"`

	Format string `yaml:"format"`

	Truthy            []any `yaml:"truthy"`
	Falsy             []any `yaml:"falsy"`
	GenericTruthiness bool  `yaml:"generic_truthiness"`

	Choices []string `yaml:"choices"`
}

// decimalValue keeps YAML numbers exact: 0.1 stays 0.1 instead of passing
// through float64.
type decimalValue struct{ decimal.Decimal }

func (d *decimalValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", node.Line)
	}
	v, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	d.Decimal = v
	return nil
}

// LoadSchemaFile reads a YAML schema definition from path.
func LoadSchemaFile(path string, opts ...Option) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	return ParseSchema(data, opts...)
}

// ParseSchema builds a schema from a YAML definition:
//
//	name: Person
//	null_tokens: ["N/A"]
//	fields:
//	  - name: age
//	    type: int
//	    min: 0
//	    max: 130
//	  - name: email
//	    type: string
//	    preprocess: [lower]
//	    validate:
//	      - rule: email
//	        key: bad_email
//	    messages:
//	      bad_email: '{value} is not an email address'
//
// Supported types are int, float, string, decimal, datetime, boolean and
// enum. Unknown keys are rejected. Options are applied before the file's own
// settings.
func ParseSchema(data []byte, opts ...Option) (*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sf schemaFile
	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	if sf.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidSchema)
	}
	if len(sf.Fields) == 0 {
		return nil, fmt.Errorf("%w: %s declares no fields", ErrInvalidSchema, sf.Name)
	}

	opts = append(opts, WithNullTokens(sf.NullTokens...))
	if len(sf.Messages) > 0 {
		opts = append(opts, WithMessages(sf.Messages))
	}
	s := NewSchema(sf.Name, opts...)

	var errs []error
	for i, spec := range sf.Fields {
		f, err := spec.build(s.nullTokens)
		if err == nil {
			err = s.Add(spec.Name, f)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("field %d (%s): %w", i+1, spec.Name, err))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, errors.Join(errs...))
	}
	return s, nil
}

func (spec fieldSpec) build(nullTokens []string) (*field.Field, error) {
	opts, err := spec.options(nullTokens)
	if err != nil {
		return nil, err
	}

	newField, err := spec.constructor()
	if err != nil {
		return nil, err
	}

	f := newField(opts...)
	if spec.Default == nil {
		return f, nil
	}

	// Defaults are written as cells, so they go through the same conversion.
	st, err := f.Named(spec.Name).Assign(spec.Default, field.Row(0))
	if err != nil {
		return nil, fmt.Errorf("default: %w", err)
	}
	if st.Failed() {
		return nil, fmt.Errorf("default %v: %s", spec.Default, st.Errors()[0].Key)
	}
	return newField(append(opts, field.WithDefault(st.Value()))...), nil
}

func (spec fieldSpec) constructor() (func(...field.Option) *field.Field, error) {
	switch spec.Type {
	case "int":
		return field.NewInt, nil
	case "float":
		return field.NewFloat, nil
	case "string":
		return field.NewString, nil
	case "decimal":
		return field.NewDecimal, nil
	case "datetime":
		return field.NewDateTime, nil
	case "boolean":
		return field.NewBoolean, nil
	case "enum":
		if len(spec.Choices) == 0 {
			return nil, errors.New("enum requires choices")
		}
		return func(opts ...field.Option) *field.Field {
			return field.NewEnum(spec.Choices, opts...)
		}, nil
	case "":
		return nil, errors.New("missing type")
	default:
		return nil, fmt.Errorf("unknown type %q", spec.Type)
	}
}

func (spec fieldSpec) options(nullTokens []string) ([]field.Option, error) {
	var opts []field.Option
	if spec.VerboseName != "" {
		opts = append(opts, field.WithVerboseName(spec.VerboseName))
	}
	if spec.Required != nil {
		opts = append(opts, field.Required(*spec.Required))
	}
	if tokens := append(append([]string(nil), nullTokens...), spec.NullTokens...); len(tokens) > 0 {
		opts = append(opts, field.WithNullTokens(tokens...))
	}
	if len(spec.Messages) > 0 {
		opts = append(opts, field.WithMessages(spec.Messages))
	}
	if spec.Min != nil {
		opts = append(opts, field.WithMinDecimal(spec.Min.Decimal))
	}
	if spec.Max != nil {
		opts = append(opts, field.WithMaxDecimal(spec.Max.Decimal))
	}
	if spec.MinLen > 0 {
		opts = append(opts, field.WithMinLen(spec.MinLen))
	}
	if spec.MaxLen > 0 {
		opts = append(opts, field.WithMaxLen(spec.MaxLen))
	}
	if spec.Places != nil {
		opts = append(opts, field.WithPlaces(spec.Places.Decimal))
	}
	if spec.PlacesLimit > 0 {
		opts = append(opts, field.WithPlacesLimit(spec.PlacesLimit))
	}
	if spec.Rounding != "" {
		r, err := field.ParseRounding(spec.Rounding)
		if err != nil {
			return nil, err
		}
		opts = append(opts, field.WithRounding(r))
	}
	if spec.Format != "" {
		opts = append(opts, field.WithFormat(spec.Format))
	}
	if spec.Truthy != nil {
		opts = append(opts, field.WithTruthy(spec.Truthy...))
	}
	if spec.Falsy != nil {
		opts = append(opts, field.WithFalsy(spec.Falsy...))
	}
	if spec.GenericTruthiness {
		opts = append(opts, field.WithGenericTruthiness())
	}

	for _, name := range spec.Preprocess {
		step, ok := sanitizer.Named(name)
		if !ok {
			return nil, fmt.Errorf("unknown preprocessor %q", name)
		}
		opts = append(opts, field.WithPreprocessors(step))
	}

	for _, rs := range spec.Validate {
		rule, err := buildRule(rs, spec.Type)
		if err != nil {
			return nil, err
		}
		opts = append(opts, field.WithValidators(rule))
	}
	return opts, nil
}
