package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findhelp-service/internal/repository/kv"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryRepository()

	t.Run("missing key returns nil without error", func(t *testing.T) {
		value, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", []byte("v")))

		value, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), value)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "c", []byte("abc")))

		value, err := store.Get(ctx, "c")
		require.NoError(t, err)
		value[0] = 'x'

		again, err := store.Get(ctx, "c")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})
}
