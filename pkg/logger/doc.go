// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers so that row processing logs use consistent keys.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which adds attributes pulled from the
// logging context. RowExtractor is the extractor used by the row pipeline:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithService("rowcheck"),
//	    logger.WithContextExtractors(logger.RowExtractor),
//	)
//
//	ctx = logger.WithRow(ctx, 12)
//	log.WarnContext(ctx, "cell rejected", logger.Field("age"), logger.ErrorKey("format"))
//	// ... row=12 field=age error_key=format
//
// Error and Errors return an empty attribute for nil errors, which slog
// drops, so they can be passed unconditionally.
package logger
