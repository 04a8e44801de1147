package inspector

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/useragentkit/pkg/httpserver"
	"github.com/dmitrymomot/useragentkit/pkg/logger"
	"github.com/dmitrymomot/useragentkit/pkg/requestid"
	"github.com/dmitrymomot/useragentkit/pkg/useragent"
)

const (
	// maxBodySize bounds request bodies; a signature is a single header line.
	maxBodySize = 8 << 10
	// cacheSize is the number of distinct header values kept parsed.
	cacheSize = 1024
)

type handler struct {
	log    *slog.Logger
	parser *useragent.CachedParser
}

// NewRouter returns the inspector API:
//
//	GET  /healthz                liveness probe
//	GET  /v1/signature           decode the caller's own User-Agent
//	POST /v1/signature/parse     decode the signature in the text/plain body
//	POST /v1/signature/format    render the JSON Signature body
func NewRouter(log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	h := &handler{
		log:    log.With(logger.Component("inspector")),
		parser: useragent.NewCachedParser(cacheSize),
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(useragent.Middleware(log, useragent.WithParser(h.parser)))

	r.Get("/healthz", httpserver.HealthCheckHandler(h.log))
	r.Route("/v1/signature", func(r chi.Router) {
		r.Get("/", h.self)
		r.Post("/parse", h.parse)
		r.Post("/format", h.format)
	})

	return r
}

func (h *handler) self(w http.ResponseWriter, r *http.Request) {
	if ua, ok := useragent.FromContext(r.Context()); ok {
		h.respond(w, r, http.StatusOK, NewSignature(ua))
		return
	}

	raw := r.Header.Get(useragent.Header)
	if raw == "" {
		h.fail(w, r, ErrMissingHeader)
		return
	}
	_, err := h.parser.Parse(raw)
	if err == nil {
		err = errors.New("signature parsed but missing from context")
	}
	h.fail(w, r, err)
}

func (h *handler) parse(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		h.fail(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return
	}

	ua, err := useragent.ParseBytes(body)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, NewSignature(ua))
}

func (h *handler) format(w http.ResponseWriter, r *http.Request) {
	var in Signature
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		h.fail(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return
	}

	ua, err := useragent.NewFromConfig(in.Config())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, NewSignature(ua))
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code, body := describe(err)
	body.RequestID = requestid.FromContext(r.Context())

	level := slog.LevelInfo
	if code >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.log.Log(r.Context(), level, "request failed",
		slog.Int("status", code),
		slog.String("path", r.URL.Path),
		logger.Error(err),
	)
	h.respond(w, r, code, body)
}

func (h *handler) respond(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.WarnContext(r.Context(), "failed to write response", logger.Error(err))
	}
}
