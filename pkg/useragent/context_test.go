package useragent_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/useragentkit/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		ua := useragent.MustParse(exampleUA)
		got, ok := useragent.FromContext(useragent.WithContext(context.Background(), ua))
		require.True(t, ok)
		assert.True(t, ua.Equal(got))
	})

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()
		got, ok := useragent.FromContext(context.Background())
		assert.False(t, ok)
		assert.True(t, got.Equal(useragent.DefaultUserAgent()))
	})

	t.Run("nil context", func(t *testing.T) {
		t.Parallel()
		//nolint:staticcheck // SA1012
		_, ok := useragent.FromContext(nil)
		assert.False(t, ok)
	})

	t.Run("foreign value under another key", func(t *testing.T) {
		t.Parallel()
		type otherKey struct{}
		ctx := context.WithValue(context.Background(), otherKey{}, exampleUA)
		_, ok := useragent.FromContext(ctx)
		assert.False(t, ok)
	})
}
