package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"botdesk/internal/domain"
)

// KVVault implements domain.CredentialVault on top of a KVStore.
// The secret is stored as a bcrypt hash; the vault is write-only from
// the application's point of view.
type KVVault struct {
	store domain.KVStore
}

// NewKVVault creates a vault backed by the given store.
func NewKVVault(store domain.KVStore) *KVVault {
	return &KVVault{store: store}
}

type vaultEntry struct {
	Username   string `json:"username"`
	SecretHash string `json:"secret_hash"`
}

func vaultKey(account string) string {
	return "vault:" + account
}

// Set stores a username/secret pair under the account label.
func (v *KVVault) Set(ctx context.Context, account, username, secret string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash secret: %w", err)
	}

	data, err := json.Marshal(vaultEntry{Username: username, SecretHash: string(hash)})
	if err != nil {
		return fmt.Errorf("failed to marshal vault entry: %w", err)
	}

	return v.store.Set(ctx, vaultKey(account), string(data))
}

// Reset removes the stored pair for the account label.
func (v *KVVault) Reset(ctx context.Context, account string) error {
	err := v.store.Delete(ctx, vaultKey(account))
	if err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		return err
	}
	return nil
}
