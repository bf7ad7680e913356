package timeparse

import (
	"fmt"
	"strings"
	"time"
)

// strptimeDirectives maps strptime directives to Go reference layout fragments.
// Numeric fields use the unpadded forms, which accept one or two digits.
var strptimeDirectives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "1",
	'd': "2",
	'H': "15",
	'I': "3",
	'M': "4",
	'S': "5",
	'p': "PM",
	'b': "Jan",
	'h': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'z': "-0700",
	'Z': "MST",
	'j': "002",
	'%': "%",
}

// StrptimeLayout translates a strptime format ("%Y-%m-%d %H:%M:%S") into a Go
// time layout ("2006-1-2 15:4:5").
func StrptimeLayout(format string) (string, error) {
	var b strings.Builder
	b.Grow(len(format) + 8)

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(format) {
			return "", fmt.Errorf("%w: trailing %%", ErrUnsupportedDirective)
		}
		i++
		if format[i] == 'f' {
			// time.Parse accepts a fractional second right after the seconds
			// field without it being spelled out in the layout.
			layout := b.String()
			if !strings.HasSuffix(layout, ".") && !strings.HasSuffix(layout, ",") {
				return "", fmt.Errorf("%w: %%f must follow '.' or ','", ErrUnsupportedDirective)
			}
			b.Reset()
			b.WriteString(layout[:len(layout)-1])
			continue
		}
		fragment, ok := strptimeDirectives[format[i]]
		if !ok {
			return "", fmt.Errorf("%w: %%%c", ErrUnsupportedDirective, format[i])
		}
		b.WriteString(fragment)
	}

	return b.String(), nil
}

// ParseLayout parses value with format, which is either a strptime format
// (contains '%') or a Go reference layout. Values without zone information are
// returned in the Naive location.
func ParseLayout(value, format string) (time.Time, error) {
	layout := format
	if strings.Contains(format, "%") {
		var err error
		if layout, err = StrptimeLayout(format); err != nil {
			return time.Time{}, err
		}
	}

	if strings.Contains(layout, "-0700") || strings.Contains(layout, "MST") {
		return time.Parse(layout, value)
	}
	return time.ParseInLocation(layout, value, Naive)
}
