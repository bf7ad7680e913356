package rowkit

import (
	"fmt"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rowkit/pkg/timeparse"
	"github.com/dmitrymomot/rowkit/pkg/validator"
)

// ruleSpec is one entry of a field's `validate` list.
type ruleSpec struct {
	Rule        string    `yaml:"rule"`
	Value       yaml.Node `yaml:"value"`
	Key         string    `yaml:"key"`
	Description string    `yaml:"description"`
}

type ruleBuilder func(spec ruleSpec, fieldType string) (validator.Rule, error)

var ruleBuilders = map[string]ruleBuilder{
	"not_blank":      fixed(validator.NotBlank),
	"positive":       fixed(validator.Positive),
	"non_negative":   fixed(validator.NonNegative),
	"alphanumeric":   fixed(validator.Alphanumeric),
	"numeric_string": fixed(validator.NumericString),
	"email":          fixed(validator.Email),
	"url":            fixed(validator.URL),
	"uuid":           fixed(validator.UUID),
	"non_nil_uuid":   fixed(validator.NonNilUUID),
	"past_date":      fixed(validator.PastDate),
	"future_date":    fixed(validator.FutureDate),
	"min_len":        withInt(validator.MinLen),
	"max_len":        withInt(validator.MaxLen),
	"len":            withInt(validator.Len),
	"max_decimal_places": func(spec ruleSpec, _ string) (validator.Rule, error) {
		var n int32
		if err := decodeValue(spec, &n); err != nil {
			return validator.Rule{}, err
		}
		return validator.MaxDecimalPlaces(n), nil
	},
	"min": func(spec ruleSpec, _ string) (validator.Rule, error) {
		var d decimalValue
		if err := decodeValue(spec, &d); err != nil {
			return validator.Rule{}, err
		}
		return validator.MinDecimal(d.Decimal), nil
	},
	"max": func(spec ruleSpec, _ string) (validator.Rule, error) {
		var d decimalValue
		if err := decodeValue(spec, &d); err != nil {
			return validator.Rule{}, err
		}
		return validator.MaxDecimal(d.Decimal), nil
	},
	"matches": func(spec ruleSpec, _ string) (validator.Rule, error) {
		var pattern string
		if err := decodeValue(spec, &pattern); err != nil {
			return validator.Rule{}, err
		}
		desc := spec.Description
		if desc == "" {
			desc = pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return validator.Rule{}, err
		}
		return validator.MatchesRegexp(re, desc), nil
	},
	"in_list":     listRule(true),
	"not_in_list": listRule(false),
	"in_list_ci": func(spec ruleSpec, _ string) (validator.Rule, error) {
		var values []string
		if err := decodeValue(spec, &values); err != nil {
			return validator.Rule{}, err
		}
		return validator.InListCaseInsensitive(values...), nil
	},
	"date_after":  withTime(validator.DateAfter),
	"date_before": withTime(validator.DateBefore),
}

func fixed(build func() validator.Rule) ruleBuilder {
	return func(ruleSpec, string) (validator.Rule, error) { return build(), nil }
}

func withInt(build func(int) validator.Rule) ruleBuilder {
	return func(spec ruleSpec, _ string) (validator.Rule, error) {
		var n int
		if err := decodeValue(spec, &n); err != nil {
			return validator.Rule{}, err
		}
		return build(n), nil
	}
}

func withTime(build func(time.Time) validator.Rule) ruleBuilder {
	return func(spec ruleSpec, _ string) (validator.Rule, error) {
		var s string
		if err := decodeValue(spec, &s); err != nil {
			return validator.Rule{}, err
		}
		t, err := timeparse.ParseISO8601(s)
		if err != nil {
			return validator.Rule{}, err
		}
		return build(t), nil
	}
}

// listRule decodes the list into the Go type the field kind stores so that
// comparable equality holds.
func listRule(in bool) ruleBuilder {
	return func(spec ruleSpec, fieldType string) (validator.Rule, error) {
		switch fieldType {
		case "int":
			var values []int64
			if err := decodeValue(spec, &values); err != nil {
				return validator.Rule{}, err
			}
			return pick(in, validator.InList[int64], validator.NotInList[int64])(values...), nil
		case "float":
			var values []float64
			if err := decodeValue(spec, &values); err != nil {
				return validator.Rule{}, err
			}
			return pick(in, validator.InList[float64], validator.NotInList[float64])(values...), nil
		case "string", "enum":
			var values []string
			if err := decodeValue(spec, &values); err != nil {
				return validator.Rule{}, err
			}
			return pick(in, validator.InList[string], validator.NotInList[string])(values...), nil
		default:
			return validator.Rule{}, fmt.Errorf("list rules are not supported on %s fields", fieldType)
		}
	}
}

func pick[T comparable](in bool, yes, no func(...T) validator.Rule) func(...T) validator.Rule {
	if in {
		return yes
	}
	return no
}

func decodeValue(spec ruleSpec, dst any) error {
	if spec.Value.Kind == 0 {
		return fmt.Errorf("rule %s requires a value", spec.Rule)
	}
	return spec.Value.Decode(dst)
}

func buildRule(spec ruleSpec, fieldType string) (validator.Rule, error) {
	build, ok := ruleBuilders[spec.Rule]
	if !ok {
		return validator.Rule{}, fmt.Errorf("unknown rule %q", spec.Rule)
	}
	rule, err := build(spec, fieldType)
	if err != nil {
		return validator.Rule{}, fmt.Errorf("rule %s: %w", spec.Rule, err)
	}
	if spec.Key != "" {
		rule = rule.Keyed(spec.Key)
	}
	return rule, nil
}
