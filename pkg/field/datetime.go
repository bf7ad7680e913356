package field

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/rowkit/pkg/timeparse"
)

// DefaultDateTimeFormat is used when no format is configured.
const DefaultDateTimeFormat = "iso"

var dateTimeMessages = Messages{
	KeyInvalid:          "Not a valid {obj_type}.",
	KeyInvalidAwareness: "Not a valid {awareness} {obj_type}.",
	KeyFormat:           `"{input}" cannot be formatted as a {obj_type}.`,
}

type dateTimeKind struct {
	format string
}

// NewDateTime declares a field holding time.Time values. Text that does not
// parse aborts the value: Assign records an "invalid" message and returns an
// *UnrecoverableError. Values without an offset are placed in
// timeparse.Naive.
func NewDateTime(opts ...Option) *Field {
	o := applyOptions(opts)
	return newField(dateTimeKind{format: o.format}, o)
}

func (dateTimeKind) Name() string { return "DateTime" }

func (dateTimeKind) Messages() Messages { return dateTimeMessages }

func (dateTimeKind) Params() map[string]any {
	return map[string]any{"obj_type": "datetime"}
}

// Format is the configured format, or DefaultDateTimeFormat.
func (k dateTimeKind) Format() string {
	if k.format == "" {
		return DefaultDateTimeFormat
	}
	return k.format
}

func (k dateTimeKind) Deserialize(s *State, value any) (any, error) {
	if t, ok := value.(time.Time); ok {
		return t, nil
	}
	params := map[string]any{"input": value}

	text, ok := value.(string)
	if !ok {
		return nil, s.Abort(KeyInvalid, params, fmt.Errorf("%w: %T", ErrNotText, value))
	}

	var (
		t   time.Time
		err error
	)
	switch format := k.Format(); format {
	case "iso", "iso8601":
		t, err = timeparse.ParseISO8601(text)
	case "rfc", "rfc822":
		t, err = timeparse.ParseRFC822(text)
	default:
		t, err = timeparse.ParseLayout(text, format)
	}
	if err != nil {
		return nil, s.Abort(KeyInvalid, params, err)
	}
	return t, nil
}
