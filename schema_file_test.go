package rowkit_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rowkit"
	"github.com/dmitrymomot/rowkit/pkg/field"
)

const orderSchema = `
name: Order
null_tokens: ["N/A"]
messages:
  required: "{field} is required (row {row_number})"
fields:
  - name: id
    type: int
    min: 1
    validate:
      - rule: not_in_list
        value: [13]
        key: unlucky
    messages:
      unlucky: "{value} is unlucky"
  - name: email
    type: string
    max_len: 50
    preprocess: [lower]
    validate:
      - rule: email
        key: bad_email
    messages:
      bad_email: "{value} is not an email address"
  - name: amount
    type: decimal
    places: 0.01
    rounding: half_up
    max: 1000.5
  - name: ratio
    type: float
    required: false
    default: 0.5
  - name: shipped
    type: boolean
    required: false
    default: "yes"
  - name: placed_at
    type: datetime
    format: "%Y-%m-%d"
    required: false
  - name: channel
    type: enum
    choices: [web, phone]
    verbose_name: Sales channel
    required: false
    null_tokens: ["-"]
`

func TestParseSchema(t *testing.T) {
	t.Parallel()

	s, err := rowkit.ParseSchema([]byte(orderSchema))
	require.NoError(t, err)
	assert.Equal(t, "Order", s.Name())
	assert.Equal(t, []string{"id", "email", "amount", "ratio", "shipped", "placed_at", "channel"}, s.Names())

	ratio, _ := s.Field("ratio")
	assert.Equal(t, 0.5, ratio.Default())
	shipped, _ := s.Field("shipped")
	assert.Equal(t, true, shipped.Default())
	channel, _ := s.Field("channel")
	assert.Contains(t, channel.NullTokens(), "N/A")
	assert.Contains(t, channel.NullTokens(), "-")

	t.Run("clean row", func(t *testing.T) {
		row, err := s.Process(context.Background(), 2, map[string]any{
			"id":        "7",
			"email":     "Ann@Example.COM",
			"amount":    "10.005",
			"placed_at": "2024-03-01",
			"channel":   "WEB",
		})
		require.NoError(t, err)
		assert.False(t, row.Failed(), row.Errors())

		assert.Equal(t, int64(7), row.Get("id"))
		assert.Equal(t, "ann@example.com", row.Get("email"))
		assert.True(t, decimal.RequireFromString("10.01").Equal(row.Get("amount").(decimal.Decimal)))
		assert.Equal(t, 0.5, row.Get("ratio"))
		assert.Equal(t, true, row.Get("shipped"))
		assert.Equal(t, "web", row.Get("channel"))
	})

	t.Run("failures", func(t *testing.T) {
		row, err := s.Process(context.Background(), 3, map[string]any{
			"id":      "13",
			"email":   "nope",
			"amount":  "N/A",
			"channel": "-",
		})
		require.NoError(t, err)

		errs := row.Errors()
		assert.Equal(t, []string{"13 is unlucky"}, errs.Get("id"))
		assert.Equal(t, []string{"nope is not an email address"}, errs.Get("email"))
		assert.Equal(t, []string{"Amount is required (row 3)"}, errs.Get("amount"))
		assert.False(t, errs.Has("channel"))
	})

	t.Run("range", func(t *testing.T) {
		row, err := s.Process(context.Background(), 4, map[string]any{
			"id": "0", "email": "a@b.co", "amount": "1000.51",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "amount"}, row.Errors().Fields())
	})
}

func TestParseSchema_Options(t *testing.T) {
	t.Parallel()

	s, err := rowkit.ParseSchema([]byte(orderSchema),
		rowkit.WithNullTokens("none"),
		rowkit.WithMessages(field.Messages{field.KeyFormat: "bad {field}"}),
	)
	require.NoError(t, err)

	row, err := s.Process(context.Background(), 2, map[string]any{
		"id": "x", "email": "none", "amount": "1",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"bad Id"}, row.FieldErrors("id"))
	assert.Equal(t, []string{"Email is required (row 2)"}, row.FieldErrors("email"))
}

func TestParseSchema_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "fields: ["},
		{"missing name", "fields:\n  - {name: a, type: int}"},
		{"no fields", "name: X"},
		{"unknown key", "name: X\ncolour: red\nfields:\n  - {name: a, type: int}"},
		{"unknown field key", "name: X\nfields:\n  - {name: a, type: int, size: 3}"},
		{"missing type", "name: X\nfields:\n  - {name: a}"},
		{"unknown type", "name: X\nfields:\n  - {name: a, type: money}"},
		{"duplicate", "name: X\nfields:\n  - {name: a, type: int}\n  - {name: a, type: string}"},
		{"empty field name", "name: X\nfields:\n  - {type: int}"},
		{"enum without choices", "name: X\nfields:\n  - {name: a, type: enum}"},
		{"bad min", "name: X\nfields:\n  - {name: a, type: int, min: lots}"},
		{"bad rounding", "name: X\nfields:\n  - {name: a, type: decimal, rounding: sideways}"},
		{"unknown preprocessor", "name: X\nfields:\n  - {name: a, type: string, preprocess: [shout]}"},
		{"unknown rule", "name: X\nfields:\n  - name: a\n    type: string\n    validate: [{rule: nice}]"},
		{"rule without value", "name: X\nfields:\n  - name: a\n    type: string\n    validate: [{rule: min_len}]"},
		{"bad pattern", "name: X\nfields:\n  - name: a\n    type: string\n    validate: [{rule: matches, value: '('}]"},
		{"list on decimal", "name: X\nfields:\n  - name: a\n    type: decimal\n    validate: [{rule: in_list, value: [1]}]"},
		{"bad default", "name: X\nfields:\n  - {name: a, type: int, default: many}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rowkit.ParseSchema([]byte(tt.yaml))
			assert.ErrorIs(t, err, rowkit.ErrInvalidSchema)
		})
	}
}

func TestParseSchema_Rules(t *testing.T) {
	t.Parallel()

	const doc = `
name: Rules
fields:
  - name: code
    type: string
    validate:
      - {rule: min_len, value: 2}
      - {rule: matches, value: '^[A-Z]+$', description: upper case}
  - name: qty
    type: int
    validate:
      - {rule: in_list, value: [1, 2, 3]}
  - name: due
    type: datetime
    validate:
      - {rule: date_after, value: "2020-01-01T00:00:00Z"}
`
	s, err := rowkit.ParseSchema([]byte(doc))
	require.NoError(t, err)

	row, err := s.Process(context.Background(), 2, map[string]any{
		"code": "a", "qty": "4", "due": "2019-05-05T00:00:00Z",
	})
	require.NoError(t, err)
	errs := row.Errors()
	assert.Len(t, errs.Get("code"), 2)
	assert.Len(t, errs.Get("qty"), 1)
	assert.Len(t, errs.Get("due"), 1)
	assert.Equal(t, field.KeyFormat, errs.GetErrors("qty")[0].TranslationKey)

	row, err = s.Process(context.Background(), 3, map[string]any{
		"code": "AB", "qty": "2", "due": "2021-05-05T00:00:00Z",
	})
	require.NoError(t, err)
	assert.False(t, row.Failed(), row.Errors())
}

func TestLoadSchemaFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "order.yaml")
	require.NoError(t, os.WriteFile(path, []byte(orderSchema), 0o600))

	s, err := rowkit.LoadSchemaFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Order", s.Name())

	_, err = rowkit.LoadSchemaFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, rowkit.ErrInvalidSchema)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
