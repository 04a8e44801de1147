package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error".
// A nil error yields an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting package under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Signature records a raw User-Agent value under the key "user_agent".
// Empty values yield an empty Attr.
func Signature(raw string) slog.Attr {
	if raw == "" {
		return slog.Attr{}
	}
	return slog.String("user_agent", raw)
}

// SignatureField records one decoded signature field, keyed by the field name.
func SignatureField(field, value string) slog.Attr {
	return slog.String(field, value)
}
