package field

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

type stringKind struct {
	minLen, maxLen int
}

// NewString declares a field holding trimmed strings. Non-string input is
// rendered the way spreadsheet exports spell it: floats always carry a
// fraction or exponent ("1.0", "1e+16"), booleans are "True" and "False",
// everything else goes through fmt.Sprint. A length outside WithMinLen/WithMaxLen records a
// format error but keeps the value.
func NewString(opts ...Option) *Field {
	o := applyOptions(opts)
	return newField(stringKind{minLen: o.minLen, maxLen: o.maxLen}, o)
}

func (stringKind) Name() string { return "StrField" }

func (stringKind) Deserialize(_ *State, value any) (any, error) {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s), nil
	}
	return strings.TrimSpace(text(value)), nil
}

func text(value any) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "True"
		}
		return "False"
	case float64:
		return floatText(v, 64)
	case float32:
		return floatText(float64(v), 32)
	}
	return fmt.Sprint(value)
}

// floatText renders the shortest round-tripping form, switching to an
// exponent below 1e-4 and from 1e16 on.
func floatText(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (k stringKind) Validate(s *State, value any) any {
	str, ok := value.(string)
	if !ok {
		return value
	}
	n := utf8.RuneCountInString(str)
	if n < k.minLen || (k.maxLen > 0 && n > k.maxLen) {
		s.Record(KeyFormat, map[string]any{
			"value":   s.Original(),
			"min_len": k.minLen,
			"max_len": k.maxLen,
		})
	}
	return value
}
