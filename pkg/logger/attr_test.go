package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/dmitrymomot/useragentkit/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("client", slog.String("os_name", "iOS"), slog.String("os_version", "13.0.0"))
	require.Equal(t, "client", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "os_name", g[0].Key)
	assert.Equal(t, "os_version", g[1].Key)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestComponent(t *testing.T) {
	attr := logger.Component("useragent")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "useragent", attr.Value.String())
}

func TestSignature(t *testing.T) {
	raw := "iOS Example/1.0.0 (org.alamofire.iOS-Example; build:1; iOS 13.0.0) Alamofire/5.0.0"
	attr := logger.Signature(raw)
	require.Equal(t, "user_agent", attr.Key)
	assert.Equal(t, raw, attr.Value.String())

	empty := logger.Signature("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestSignatureField(t *testing.T) {
	attr := logger.SignatureField("bundle", "org.alamofire.iOS-Example")
	require.Equal(t, "bundle", attr.Key)
	assert.Equal(t, "org.alamofire.iOS-Example", attr.Value.String())
}
