package inspector

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/useragentkit/pkg/useragent"
)

var (
	ErrMissingHeader = errors.New("request has no User-Agent header")
	ErrInvalidBody   = errors.New("invalid request body")
)

// problem is the JSON error body.
type problem struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	Stage     string `json:"stage,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// describe maps err to a status code and a problem body.
func describe(err error) (int, problem) {
	p := problem{Error: err.Error()}

	var perr *useragent.ParseError
	var merr *useragent.MismatchError
	switch {
	case errors.As(err, &perr):
		p.Field = string(perr.Field)
		p.Stage = string(perr.Stage)
		return http.StatusUnprocessableEntity, p
	case errors.As(err, &merr):
		p.Field = string(merr.After)
		return http.StatusUnprocessableEntity, p
	case errors.Is(err, ErrMissingHeader), errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest, p
	}
	return http.StatusInternalServerError, problem{Error: http.StatusText(http.StatusInternalServerError)}
}
