package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Row records a row number under the key "row".
func Row(n int) slog.Attr {
	return slog.Int("row", n)
}

// Field records a field attribute name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// ErrorKey records a message key such as "required" under the key "error_key".
func ErrorKey(key string) slog.Attr {
	return slog.String("error_key", key)
}

// Record records a record type name under the key "record".
func Record(name string) slog.Attr {
	return slog.String("record", name)
}

// Messages records rendered validation messages under the key "messages".
// If there are none, it returns an empty Attr.
func Messages(msgs []string) slog.Attr {
	if len(msgs) == 0 {
		return slog.Attr{}
	}
	return slog.Any("messages", msgs)
}

// Count records a count under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// File records a file path under the key "file".
func File(path string) slog.Attr {
	return slog.String("file", path)
}
