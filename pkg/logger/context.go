package logger

import (
	"context"
	"log/slog"
)

type rowKey struct{}

// WithRow stores a row number in ctx for RowExtractor.
func WithRow(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, rowKey{}, n)
}

// RowFromContext returns the row number stored by WithRow.
func RowFromContext(ctx context.Context) (int, bool) {
	n, ok := ctx.Value(rowKey{}).(int)
	return n, ok
}

// RowExtractor adds the row number stored by WithRow to every record
// logged with that context.
func RowExtractor(ctx context.Context) (slog.Attr, bool) {
	if n, ok := RowFromContext(ctx); ok {
		return Row(n), true
	}
	return slog.Attr{}, false
}
