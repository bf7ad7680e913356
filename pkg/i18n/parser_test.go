package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rowkit/pkg/i18n"
)

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("a.yaml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("dir/a.YML"))
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("a.json"))
	assert.Nil(t, i18n.NewParserForFile("a.toml"))
	assert.Nil(t, i18n.NewParserForFile("noext"))
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()

	p := i18n.NewYAMLParser()
	assert.True(t, p.SupportsFileExtension(".yml"))
	assert.False(t, p.SupportsFileExtension("json"))

	data, err := p.Parse(context.Background(), []byte("en:\n  required: missing\n"))
	require.NoError(t, err)
	assert.Equal(t, "missing", data["en"]["required"])

	_, err = p.Parse(context.Background(), []byte("en: [unclosed"))
	assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)

	_, err = p.Parse(context.Background(), []byte("en: plain"))
	assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Parse(ctx, []byte("en: {}"))
	assert.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJSONParser(t *testing.T) {
	t.Parallel()

	p := i18n.NewJSONParser()
	assert.True(t, p.SupportsFileExtension("JSON"))

	data, err := p.Parse(context.Background(), []byte(`{"de": {"required": "fehlt"}}`))
	require.NoError(t, err)
	assert.Equal(t, "fehlt", data["de"]["required"])

	_, err = p.Parse(context.Background(), []byte(`{"de": 1}`))
	assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Parse(ctx, []byte(`{}`))
	assert.ErrorIs(t, err, i18n.ErrJSONParsingCancelled)
}
