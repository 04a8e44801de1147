package useragent

import "strings"

// decodeOptional maps the Unknown sentinel to nil and hands any other text
// to decode. It is the single place where absence is recognized on input.
func decodeOptional[T any](raw string, decode func(string) (T, error)) (*T, error) {
	if raw == Unknown {
		return nil, nil
	}
	v, err := decode(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// encodeOptional is the inverse of decodeOptional.
func encodeOptional[T any](v *T, encode func(T) string) string {
	if v == nil {
		return Unknown
	}
	return encode(*v)
}

// text is the decoder for free-form fields. The result is detached from
// the input buffer.
func text(raw string) (string, error) {
	return strings.Clone(raw), nil
}

func identity(s string) string { return s }
