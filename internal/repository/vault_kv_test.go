package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"botdesk/internal/domain"
)

func TestKVVault(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the secret as a bcrypt hash", func(t *testing.T) {
		store := NewMemoryKV()
		vault := NewKVVault(store)

		require.NoError(t, vault.Set(ctx, "botdesk", "demo@botdesk.io", "demo123"))

		raw, err := store.Get(ctx, "vault:botdesk")
		require.NoError(t, err)

		var entry struct {
			Username   string `json:"username"`
			SecretHash string `json:"secret_hash"`
		}
		require.NoError(t, json.Unmarshal([]byte(raw), &entry))
		assert.Equal(t, "demo@botdesk.io", entry.Username)
		assert.NotContains(t, entry.SecretHash, "demo123")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(entry.SecretHash), []byte("demo123")))
	})

	t.Run("reset removes the entry", func(t *testing.T) {
		store := NewMemoryKV()
		vault := NewKVVault(store)

		require.NoError(t, vault.Set(ctx, "botdesk", "demo@botdesk.io", "demo123"))
		require.NoError(t, vault.Reset(ctx, "botdesk"))

		_, err := store.Get(ctx, "vault:botdesk")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("reset without an entry is a no-op", func(t *testing.T) {
		vault := NewKVVault(NewMemoryKV())
		assert.NoError(t, vault.Reset(ctx, "botdesk"))
	})
}
