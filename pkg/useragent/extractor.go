package useragent

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/useragentkit/pkg/logger"
)

// LoggerExtractor returns a logger.ContextExtractor that adds the client
// stored by Middleware as a "client" group.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		ua, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return logger.Group("client", Attrs(ua)...), true
	}
}

// Attrs describes ua as log attributes. Absent fields are omitted.
func Attrs(ua UserAgent) []slog.Attr {
	attrs := make([]slog.Attr, 0, 7)
	if v, ok := ua.Executable(); ok {
		attrs = append(attrs, logger.SignatureField(string(FieldExecutable), v))
	}
	if v, ok := ua.AppVersion(); ok {
		attrs = append(attrs, logger.SignatureField(string(FieldAppVersion), v.String()))
	}
	if v, ok := ua.Bundle(); ok {
		attrs = append(attrs, logger.SignatureField(string(FieldBundle), v))
	}
	if v, ok := ua.AppBuild(); ok {
		attrs = append(attrs, logger.SignatureField(string(FieldAppBuild), v.String()))
	}
	if v, ok := ua.OSName(); ok {
		attrs = append(attrs, logger.SignatureField(string(FieldOSName), v.String()))
	}
	attrs = append(attrs,
		logger.SignatureField(string(FieldOSVersion), ua.OSVersion().String()),
		logger.SignatureField(string(FieldLibraryVersion), ua.LibraryVersion().String()),
	)
	return attrs
}
