// Package requestid assigns correlation IDs to incoming HTTP requests.
//
// Middleware reuses a client supplied X-Request-ID when it is 1 to 128
// characters of letters, digits, '-' or '_', and generates a UUIDv7
// otherwise. The ID is echoed in the response header and stored in the
// request context, where LoggerExtractor picks it up for pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
