package kv_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findhelp-service/internal/repository/kv"
)

func TestSQLiteRepository(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	t.Run("missing key returns nil without error", func(t *testing.T) {
		value, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "device-unique-id", []byte("abc-123")))

		value, err := store.Get(ctx, "device-unique-id")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc-123"), value)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", []byte("one")))
		require.NoError(t, store.Set(ctx, "k", []byte("two")))

		value, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("two"), value)
	})
}

func TestSQLiteRepositoryPersistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	store, err := kv.NewSQLiteRepository(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "app-language", []byte("es")))
	require.NoError(t, store.Close())

	reopened, err := kv.NewSQLiteRepository(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, "app-language")
	require.NoError(t, err)
	assert.Equal(t, []byte("es"), value)
}
