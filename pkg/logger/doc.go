// Package logger builds *slog.Logger values for the useragentkit packages.
//
// New takes functional options selecting the output format (text or JSON),
// the level, the destination, static attributes and ContextExtractor
// callbacks. Extractors run on every record through LogHandlerDecorator, so
// request-scoped values such as the decoded client signature end up in the
// log line without being passed around explicitly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("gateway"),
//	    logger.WithContextExtractors(useragent.LoggerExtractor()),
//	)
//	handler := useragent.Middleware(log)(mux)
//
// Attribute helpers (Group, Error, Component, Signature, SignatureField)
// keep key names consistent. Error and Signature return an empty Attr for
// empty input, so they can be passed unconditionally.
package logger
