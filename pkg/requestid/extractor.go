package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/useragentkit/pkg/logger"
)

// LoggerExtractor adds the request ID as "request_id" to records logged
// with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}
}
