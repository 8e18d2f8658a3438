// Package kv abstracts the shared fast key-value store carrying the
// active-session registry and one-time codes. The only mutation pattern
// needed is set-with-TTL / get / delete; expiry is handled by the store
// itself, not the application.
package kv

import (
	"context"
	"time"
)

// Store is implemented by the Redis client wrapper and by an in-memory store
// used in tests.
type Store interface {
	// Set writes key=value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Get returns the value for key or common.ErrorNotFound on a miss.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether key is present and unexpired.
	Exists(ctx context.Context, key string) (bool, error)
}
