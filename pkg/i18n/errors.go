package i18n

import "errors"

// Context cancellation errors are kept apart from parse errors so callers can
// tell timeouts from broken catalogs.
var (
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	ErrLoadingFileCancelled = errors.New("loading catalog file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read catalog file")
	ErrFailedToParseFile    = errors.New("failed to parse catalog file")
	ErrUnsupportedFile      = errors.New("unsupported catalog file extension")

	ErrFailedToReadDirectory = errors.New("failed to read catalog directory")
	ErrNoCatalogs            = errors.New("no catalog files found")

	ErrInvalidCatalog  = errors.New("invalid catalog structure")
	ErrInvalidLanguage = errors.New("invalid language code")
	ErrNilAdapter      = errors.New("catalog adapter is nil")
)
