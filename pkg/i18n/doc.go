// Package i18n loads message catalogs that localize field error templates.
//
// A catalog document maps language codes to message keys. Top-level string
// entries apply to every field kind; entries under "kinds" apply to a single
// kind and override the shared ones:
//
//	en:
//	  required: "Missing Value - {field} = : Row {row_number}."
//	  format: 'Incorrect Format - {field} = "{value}" : Row {row_number}.'
//	de:
//	  required: "Fehlender Wert - {field} : Zeile {row_number}."
//	  kinds:
//	    DateTime:
//	      invalid: "Kein gültiges Datum."
//
// Documents are YAML or JSON and are read through an Adapter: MapAdapter for
// in-memory data, FileAdapter for a single file and FSAdapter for every
// catalog file in an fs.FS (an embed.FS or os.DirFS). Languages are matched
// with golang.org/x/text/language, so "de-CH" resolves to "de" and
// Accept-Language style lists such as "fr-CA, de;q=0.8" are honoured.
//
//	catalog, err := i18n.NewCatalog(ctx, i18n.NewFileAdapter(i18n.NewYAMLParser(), "messages.yaml"),
//		i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		return err
//	}
//	f := field.NewInt().Named("age").Localize(catalog.KindMessages("de", "IntField"))
//
// A Catalog is read-only after construction and safe for concurrent use.
package i18n
