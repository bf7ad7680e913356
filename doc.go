// Package rowkit validates and deserializes rows of raw cell values against a
// declared record type.
//
// A Schema is an explicit, ordered registry of named field declarations from
// package field. Each processed record is a Row holding one field.State per
// declared field: the typed value plus the human-readable messages recorded
// while converting it.
//
//	type Status string
//
//	people := rowkit.NewSchema("Person").
//		MustAdd("name", field.NewString(field.WithMaxLen(50))).
//		MustAdd("age", field.NewInt(field.WithMin(0), field.WithMax(130))).
//		MustAdd("born", field.NewDateTime(field.WithFormat("%d.%m.%Y"), field.Optional())).
//		MustAdd("status", field.NewEnum([]Status{"active", "blocked"}))
//
//	row, err := people.Process(ctx, 2, map[string]any{"name": "Ann", "age": "abc"})
//	if err != nil {
//		// one or more values were unrecoverable; the row is still usable
//	}
//	for _, e := range row.Errors() {
//		fmt.Println(e.Message) // Incorrect Format - Age = "abc" : Row 2.
//	}
//
// Processing never stops at a failed cell: every field of every row is
// assigned, and failures are reported per field. Only unrecoverable values
// (see field.ErrUnrecoverable) are returned as errors, joined per row.
//
// Schemas can also be loaded from YAML files (LoadSchemaFile, ParseSchema)
// and localized with an i18n.Catalog (WithCatalog). Processed rows bind into
// tagged structs with Row.Bind.
//
// A Schema must not be modified after it starts processing rows; from then on
// it is safe for concurrent use. A Row belongs to one goroutine.
package rowkit
