package session

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/louisbranch/plaza/internal/social/domain"
	"github.com/louisbranch/plaza/internal/social/store"
	"github.com/louisbranch/plaza/internal/social/syncer"
	"github.com/louisbranch/plaza/internal/storage"
)

type memoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return value, nil
}

func (m *memoryKV) Put(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Exercises a full process lifetime twice over one durable store: login with
// remember, initial load against a directory that carries no credentials,
// snapshot save, then a fresh store and manager restoring from the same
// durable state the next day.
func TestRememberedSessionSurvivesReloadCycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newMemoryKV()
	secret := []byte("test-secret")

	// The directory never serves credentials or friend lists.
	svc := &fakeRemote{users: []domain.User{
		{ID: "user-ana", Name: "Ana", IsActive: true, IsVerified: true},
	}}

	entities := store.New()
	entities.UpsertUser(seededUser(t, "secret123"))
	manager := NewManager(entities, svc, NewDurableTier(kv), NewMemoryTier(), Options{
		Secret: secret,
		Clock:  fixedClock,
		Logger: zerolog.Nop(),
	})
	if _, err := manager.Login(ctx, "ana@example.com", "secret123", true); err != nil {
		t.Fatalf("Login: %v", err)
	}

	engine := syncer.New(entities, svc, syncer.Options{Clock: fixedClock, Logger: zerolog.Nop()})
	snapshot, _, err := storage.LoadSnapshot(ctx, kv)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if err := engine.LoadInitial(ctx, snapshot); err != nil {
		t.Fatalf("LoadInitial: %v", err)
	}
	snapshot.Users = entities.Users()
	snapshot.Posts = entities.Posts()
	snapshot.Messages = entities.Messages()
	snapshot.Notifications = entities.Notifications()
	if err := storage.SaveSnapshot(ctx, kv, snapshot); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	// Second lifetime over the same durable state.
	entities = store.New()
	snapshot, reset, err := storage.LoadSnapshot(ctx, kv)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(reset) != 0 {
		t.Fatalf("durable keys reset on reload: %v", reset)
	}
	entities.ReplaceUsers(snapshot.Users)
	manager = NewManager(entities, svc, NewDurableTier(kv), NewMemoryTier(), Options{
		Secret: secret,
		Clock:  fixedClock,
		Logger: zerolog.Nop(),
	})

	user, ok := manager.RestoreSession(ctx)
	if !ok {
		t.Fatal("remembered session not restored after reload")
	}
	if user.ID != "user-ana" {
		t.Fatalf("restored %q, want user-ana", user.ID)
	}
	if !user.CredentialMatches("secret123") {
		t.Error("credential lost across the reload cycle")
	}
}
