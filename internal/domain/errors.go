package domain

import "errors"

var (
	// ErrKeyNotFound is returned by a KVStore when a key has no value.
	ErrKeyNotFound = errors.New("key not found")

	// ErrBotNotFound is returned when a bot ID does not exist in the registry.
	ErrBotNotFound = errors.New("bot not found")
)
