// Package storage defines the durable-tier persistence contracts for client
// state. Each key holds one independently parsed value; corruption of one key
// must never affect another.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates a requested key has no stored value.
var ErrNotFound = errors.New("key not found")

// Durable-tier keys. CurrentUser also exists in the ephemeral tier as the
// session-scoped alternative.
const (
	KeyUsers         = "users"
	KeyPosts         = "posts"
	KeyMessages      = "messages"
	KeyNotifications = "notifications"
	KeyTheme         = "theme"
	KeyCurrentUser   = "currentUserId"
)

// KV persists one opaque value per key.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
