// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"venuealert/internal/errors"
)

// ErrKeyNotFound is returned when a key has never been written or was deleted.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the durable string-keyed storage shared by the API process and the geo worker.
// It is the only state the two processes share.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error

	// Close releases the underlying storage handle.
	Close() error
}
