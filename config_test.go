package rowkit_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rowkit"
	"github.com/dmitrymomot/rowkit/pkg/config"
	"github.com/dmitrymomot/rowkit/pkg/field"
	"github.com/dmitrymomot/rowkit/pkg/logger"
)

const deCatalog = `
de:
  required: "Fehlender Wert - {field} : Zeile {row_number}."
  kinds:
    IntField:
      format: 'Keine Zahl - {field} = "{value}" : Zeile {row_number}.'
`

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse[rowkit.Config](config.WithEnvironment(map[string]string{}))
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, logger.FormatText, cfg.LogFormat)
	assert.Equal(t, 1, cfg.HeaderRow)
	assert.Empty(t, cfg.Catalog)
	assert.Empty(t, cfg.NullTokens)
}

func TestConfig_FromEnvironment(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse[rowkit.Config](
		config.WithPrefix("ROWKIT_"),
		config.WithEnvironment(map[string]string{
			"ROWKIT_LANG":        "de-AT",
			"ROWKIT_NULL_TOKENS": "N/A,-",
			"ROWKIT_LOG_LEVEL":   "debug",
			"ROWKIT_LOG_FORMAT":  "JSON",
			"ROWKIT_HEADER_ROW":  "0",
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, "de-AT", cfg.Lang)
	assert.Equal(t, []string{"N/A", "-"}, cfg.NullTokens)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, logger.FormatJSON, cfg.LogFormat)
	assert.Equal(t, 0, cfg.HeaderRow)

	_, err = config.Parse[rowkit.Config](config.WithEnvironment(map[string]string{"LOG_FORMAT": "xml"}))
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestConfig_Logger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := rowkit.Config{LogLevel: slog.LevelWarn, LogFormat: logger.FormatJSON}
	log := cfg.Logger(&buf)

	log.InfoContext(context.Background(), "hidden")
	log.WarnContext(logger.WithRow(context.Background(), 4), "shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"row":4`)
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("without catalog", func(t *testing.T) {
		cfg := rowkit.Config{NullTokens: []string{"-"}}
		opts, err := cfg.Options(ctx, logger.Discard())
		require.NoError(t, err)

		s, err := rowkit.ParseSchema([]byte("name: X\nfields:\n  - {name: n, type: int}"), opts...)
		require.NoError(t, err)
		row, err := s.Process(ctx, 2, map[string]any{"n": "-"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Missing Value - N = : Row 2."}, row.FieldErrors("n"))
	})

	for name, layout := range map[string]func(t *testing.T) string{
		"catalog file": func(t *testing.T) string {
			path := filepath.Join(t.TempDir(), "de.yaml")
			require.NoError(t, os.WriteFile(path, []byte(deCatalog), 0o600))
			return path
		},
		"catalog directory": func(t *testing.T) string {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "de.yaml"), []byte(deCatalog), 0o600))
			return dir
		},
	} {
		t.Run(name, func(t *testing.T) {
			cfg := rowkit.Config{Catalog: layout(t), Lang: "de-AT"}
			opts, err := cfg.Options(ctx, logger.Discard())
			require.NoError(t, err)

			s := rowkit.NewSchema("X", opts...).
				MustAdd("qty", field.NewInt()).
				MustAdd("sku", field.NewString())

			row, err := s.Process(ctx, 5, map[string]any{"qty": "many"})
			require.NoError(t, err)
			assert.Equal(t, []string{`Keine Zahl - Qty = "many" : Zeile 5.`}, row.FieldErrors("qty"))
			assert.Equal(t, []string{"Fehlender Wert - Sku : Zeile 5."}, row.FieldErrors("sku"))
		})
	}

	t.Run("missing catalog", func(t *testing.T) {
		cfg := rowkit.Config{Catalog: filepath.Join(t.TempDir(), "none.yaml")}
		_, err := cfg.Options(ctx, logger.Discard())
		assert.Error(t, err)
	})
}
