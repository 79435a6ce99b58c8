package domain

import "context"

// KVStore is the persistence layer: an asynchronous key-value store
// addressed by string keys, holding UTF-8 JSON documents. Both state
// stores are the sole writers to their own keys.
type KVStore interface {
	// Get retrieves the value for a key. Returns ErrKeyNotFound when absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value under a key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// CredentialVault is an opaque per-account credential store keyed by a
// fixed account label. It is a best-effort mirror of login credentials
// and is never consulted for authentication decisions.
type CredentialVault interface {
	// Set stores a username/secret pair under the account label.
	Set(ctx context.Context, account, username, secret string) error

	// Reset removes the stored pair for the account label.
	Reset(ctx context.Context, account string) error
}
