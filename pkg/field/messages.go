package field

import (
	"fmt"
	"maps"
	"regexp"
)

// Message keys recorded by the pipeline and the built-in kinds.
const (
	KeyRequired         = "required"
	KeyFormat           = "format"
	KeyIncorrectFormat  = "incorrect_format"
	KeyInvalid          = "invalid"
	KeyInvalidAwareness = "invalid_awareness"
)

const (
	requiredMessage        = "Missing Value - {field} = : Row {row_number}."
	incorrectFormatMessage = `Incorrect Format - {field} = "{value}" : Row {row_number}.`
	invalidMessage         = `Invalid Value - {field} = "{value}" : Row {row_number}.`

	missingMessage = "ValidationError raised by `%s`, but error key `%s` does " +
		"not exist in the `error_messages` table."
)

// Messages maps message keys to templates.
type Messages map[string]string

// baseMessages is the bottom layer shared by every kind.
var baseMessages = Messages{
	KeyRequired:        requiredMessage,
	KeyFormat:          incorrectFormatMessage,
	KeyIncorrectFormat: incorrectFormatMessage,
	KeyInvalid:         invalidMessage,
}

// DefaultMessages returns a copy of the base message layer.
func DefaultMessages() Messages {
	return maps.Clone(baseMessages)
}

// Compose merges layers in order; later layers win.
func Compose(layers ...Messages) Messages {
	out := make(Messages)
	for _, layer := range layers {
		maps.Copy(out, layer)
	}
	return out
}

var placeholderRegex = regexp.MustCompile(`\{\{|\}\}|\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Format substitutes {name} placeholders from params. "{{" and "}}" produce
// literal braces, nil renders as an empty string and unknown placeholders are
// kept verbatim.
func Format(tmpl string, params map[string]any) string {
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		switch match {
		case "{{":
			return "{"
		case "}}":
			return "}"
		}
		v, ok := params[match[1:len(match)-1]]
		if !ok {
			return match
		}
		if v == nil {
			return ""
		}
		return fmt.Sprint(v)
	})
}

func missingKeyMessage(kind, key string) string {
	return fmt.Sprintf(missingMessage, kind, key)
}
