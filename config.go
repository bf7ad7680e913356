package rowkit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/rowkit/pkg/i18n"
	"github.com/dmitrymomot/rowkit/pkg/logger"
)

// Config holds the environment-driven settings shared by rowkit tools.
// Load it with config.Load or config.Parse.
type Config struct {
	// Catalog is a YAML/JSON message catalog file or a directory of them.
	Catalog string `env:"CATALOG"`

	Lang       string        `env:"LANG" envDefault:"en"`
	NullTokens []string      `env:"NULL_TOKENS" envSeparator:","`
	LogLevel   slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat  logger.Format `env:"LOG_FORMAT" envDefault:"text"`

	// HeaderRow is the row number of the header line; data rows are
	// numbered from HeaderRow+1.
	HeaderRow int `env:"HEADER_ROW" envDefault:"1"`
}

// Logger builds the configured logger writing to w.
func (c Config) Logger(w io.Writer, opts ...logger.Option) *slog.Logger {
	base := []logger.Option{
		logger.WithLevel(c.LogLevel),
		logger.WithFormat(c.LogFormat),
		logger.WithOutput(w),
		logger.WithContextExtractors(logger.RowExtractor),
	}
	return logger.New(append(base, opts...)...)
}

// Options turns the configuration into schema options, loading the catalog
// when one is configured.
func (c Config) Options(ctx context.Context, log *slog.Logger) ([]Option, error) {
	opts := []Option{WithLogger(log)}
	if len(c.NullTokens) > 0 {
		opts = append(opts, WithNullTokens(c.NullTokens...))
	}
	if c.Catalog == "" {
		return opts, nil
	}

	info, err := os.Stat(c.Catalog)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	var adapter i18n.Adapter
	if info.IsDir() {
		adapter = i18n.NewFSAdapter(os.DirFS(c.Catalog), ".")
	} else {
		adapter = i18n.NewFileAdapter(nil, c.Catalog)
	}

	cat, err := i18n.NewCatalog(ctx, adapter, i18n.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return append(opts, WithCatalog(cat, c.Lang)), nil
}
