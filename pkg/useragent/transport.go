package useragent

import "net/http"

// Transport is an http.RoundTripper that sets the User-Agent header to a
// fixed signature. Requests that already carry a User-Agent are sent as is.
type Transport struct {
	base  http.RoundTripper
	value string
}

// NewTransport wraps base, or http.DefaultTransport when base is nil.
// The signature is rendered once here.
func NewTransport(base http.RoundTripper, ua UserAgent) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, value: ua.String()}
}

// RoundTrip implements http.RoundTripper. The caller's request is never
// modified; a clone carries the header.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(Header) != "" {
		return t.base.RoundTrip(req)
	}
	cloned := req.Clone(req.Context())
	if cloned.Header == nil {
		cloned.Header = make(http.Header)
	}
	cloned.Header.Set(Header, t.value)
	return t.base.RoundTrip(cloned)
}
