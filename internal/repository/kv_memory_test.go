package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botdesk/internal/domain"
)

func TestMemoryKV(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get round-trips", func(t *testing.T) {
		store := NewMemoryKV()
		require.NoError(t, store.Set(ctx, "k", "v1"))

		value, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v1", value)
	})

	t.Run("set overwrites", func(t *testing.T) {
		store := NewMemoryKV()
		require.NoError(t, store.Set(ctx, "k", "v1"))
		require.NoError(t, store.Set(ctx, "k", "v2"))

		value, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v2", value)
	})

	t.Run("missing key returns ErrKeyNotFound", func(t *testing.T) {
		store := NewMemoryKV()
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("delete removes the key and tolerates repeats", func(t *testing.T) {
		store := NewMemoryKV()
		require.NoError(t, store.Set(ctx, "k", "v"))
		require.NoError(t, store.Delete(ctx, "k"))
		require.NoError(t, store.Delete(ctx, "k"))

		_, err := store.Get(ctx, "k")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})
}
