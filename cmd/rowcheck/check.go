package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/rowkit"
	"github.com/dmitrymomot/rowkit/pkg/logger"
)

// ErrRowsFailed is returned by run when at least one cell was rejected.
var ErrRowsFailed = errors.New("rowcheck: rows failed validation")

// Config is the command configuration.
type Config struct {
	rowkit.Config

	Schema string `env:"SCHEMA,required"`
	Input  string `env:"INPUT"`
}

func run(ctx context.Context, cfg Config, stdin io.Reader, out io.Writer, log *slog.Logger) error {
	opts, err := cfg.Options(ctx, log)
	if err != nil {
		return err
	}
	schema, err := rowkit.LoadSchemaFile(cfg.Schema, opts...)
	if err != nil {
		return err
	}

	in := stdin
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	log.DebugContext(ctx, "checking input", logger.Record(schema.Name()), logger.File(cfg.Input))

	return check(ctx, schema, in, out, cfg.HeaderRow)
}

// check reads a CSV document whose header names schema fields and writes
// every recorded message to out. Header names are trimmed; blank header
// cells are skipped.
func check(ctx context.Context, schema *rowkit.Schema, in io.Reader, out io.Writer, headerRow int) error {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	failed := 0
	for number := headerRow + 1; ; number++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read row %d: %w", number, err)
		}

		values := make(map[string]any, len(columns))
		for i, name := range columns {
			if name == "" {
				continue
			}
			if i < len(record) {
				values[name] = record[i]
			} else {
				values[name] = nil
			}
		}

		// Unrecoverable cells are recorded on the row and logged by the schema.
		row, _ := schema.Process(ctx, number, values)
		if !row.Failed() {
			continue
		}
		failed++
		for _, e := range row.Errors() {
			if _, err := fmt.Fprintf(out, "%s: %s\n", e.Field, e.Message); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d", ErrRowsFailed, failed)
	}
	return nil
}
