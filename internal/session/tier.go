// Package session establishes, persists and validates the identity of the
// active user across two durability tiers.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/louisbranch/plaza/internal/storage"
)

// ErrNoRecord indicates a tier holds no session record.
var ErrNoRecord = errors.New("no session record")

// Tier persists one opaque session record. The durable tier survives process
// restarts; the ephemeral tier is scoped to the current process.
type Tier interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, record string) error
	Clear(ctx context.Context) error
}

// MemoryTier is the process-scoped ephemeral tier.
type MemoryTier struct {
	mu     sync.Mutex
	record string
	set    bool
}

// NewMemoryTier returns an empty ephemeral tier.
func NewMemoryTier() *MemoryTier {
	return &MemoryTier{}
}

// Read returns the stored record or ErrNoRecord.
func (t *MemoryTier) Read(_ context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.set {
		return "", ErrNoRecord
	}
	return t.record, nil
}

// Write stores the record.
func (t *MemoryTier) Write(_ context.Context, record string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.record = record
	t.set = true
	return nil
}

// Clear drops the record.
func (t *MemoryTier) Clear(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.record = ""
	t.set = false
	return nil
}

// DurableTier stores the session record under the current-user key of the
// durable state store.
type DurableTier struct {
	kv storage.KV
}

// NewDurableTier wraps a durable key-value store.
func NewDurableTier(kv storage.KV) *DurableTier {
	return &DurableTier{kv: kv}
}

// Read returns the stored record or ErrNoRecord.
func (t *DurableTier) Read(ctx context.Context) (string, error) {
	record, err := t.kv.Get(ctx, storage.KeyCurrentUser)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrNoRecord
		}
		return "", fmt.Errorf("read session record: %w", err)
	}
	return record, nil
}

// Write stores the record.
func (t *DurableTier) Write(ctx context.Context, record string) error {
	if err := t.kv.Put(ctx, storage.KeyCurrentUser, record); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	return nil
}

// Clear drops the record.
func (t *DurableTier) Clear(ctx context.Context) error {
	if err := t.kv.Delete(ctx, storage.KeyCurrentUser); err != nil {
		return fmt.Errorf("clear session record: %w", err)
	}
	return nil
}
