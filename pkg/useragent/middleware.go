package useragent

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/useragentkit/pkg/logger"
)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	parse func(string) (UserAgent, error)
}

// WithCache memoizes header parsing in a CachedParser of the given size.
func WithCache(size int) MiddlewareOption {
	return WithParser(NewCachedParser(size))
}

// WithParser makes Middleware use p instead of a fresh parse per request.
func WithParser(p *CachedParser) MiddlewareOption {
	return func(c *middlewareConfig) {
		if p != nil {
			c.parse = p.Parse
		}
	}
}

// Middleware parses the User-Agent header of every request and stores the
// result in the request context (see FromContext). Requests whose header is
// missing or is not an Alamofire signature pass through unchanged; parse
// failures are logged at debug level on log, or on slog.Default() when log
// is nil.
func Middleware(log *slog.Logger, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("useragent"))

	cfg := &middlewareConfig{parse: Parse}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(Header)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			ua, err := cfg.parse(raw)
			if err != nil {
				log.DebugContext(r.Context(), "unrecognized user agent signature",
					logger.Signature(raw),
					logger.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), ua)))
		})
	}
}
