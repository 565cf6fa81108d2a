package repository

import (
	"testing"
	"time"

	"accountease/internal/data/entity"

	"github.com/google/uuid"
)

func newTestStore(ttl time.Duration) (*memoryResetSessionStore, *time.Time) {
	store := NewMemoryResetSessionStore(ttl).(*memoryResetSessionStore)
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	return store, &now
}

func TestResetSessionStoreGetMissing(t *testing.T) {
	store, _ := newTestStore(30 * time.Minute)

	if session := store.Get("absent"); session != nil {
		t.Errorf("Get on missing key = %+v, want nil", session)
	}
}

func TestResetSessionStorePutGetClear(t *testing.T) {
	store, _ := newTestStore(30 * time.Minute)
	userID := uuid.New()

	store.Put("key", &entity.ResetSession{UserID: userID, State: entity.ResetStateIdentified})

	session := store.Get("key")
	if session == nil {
		t.Fatal("expected session after Put")
	}
	if session.UserID != userID || session.State != entity.ResetStateIdentified {
		t.Errorf("Get = %+v, want user %s at Identified", session, userID)
	}

	store.Clear("key")
	if store.Get("key") != nil {
		t.Error("expected nil after Clear")
	}

	// Clearing an absent key is a no-op
	store.Clear("key")
}

func TestResetSessionStoreOverwrite(t *testing.T) {
	store, _ := newTestStore(30 * time.Minute)
	userID := uuid.New()

	store.Put("key", &entity.ResetSession{UserID: userID, State: entity.ResetStateIdentified})
	store.Put("key", &entity.ResetSession{UserID: userID, State: entity.ResetStateVerified})

	session := store.Get("key")
	if session == nil || session.State != entity.ResetStateVerified {
		t.Fatalf("Get = %+v, want Verified after overwrite", session)
	}
}

func TestResetSessionStoreReturnsCopy(t *testing.T) {
	store, _ := newTestStore(30 * time.Minute)
	userID := uuid.New()

	store.Put("key", &entity.ResetSession{UserID: userID, State: entity.ResetStateIdentified})

	first := store.Get("key")
	first.State = entity.ResetStateVerified

	second := store.Get("key")
	if second.State != entity.ResetStateIdentified {
		t.Error("mutating a returned session must not affect the stored one")
	}
}

func TestResetSessionStoreExpiry(t *testing.T) {
	store, now := newTestStore(30 * time.Minute)
	userID := uuid.New()

	store.Put("key", &entity.ResetSession{UserID: userID, State: entity.ResetStateIdentified})

	*now = now.Add(29 * time.Minute)
	if store.Get("key") == nil {
		t.Fatal("session inside TTL should survive")
	}

	*now = now.Add(2 * time.Minute)
	if store.Get("key") != nil {
		t.Error("session past TTL should be gone")
	}
}

func TestResetSessionStoreSweepsStaleEntriesOnPut(t *testing.T) {
	store, now := newTestStore(30 * time.Minute)
	userID := uuid.New()

	store.Put("stale", &entity.ResetSession{UserID: userID, State: entity.ResetStateIdentified})

	*now = now.Add(31 * time.Minute)
	store.Put("fresh", &entity.ResetSession{UserID: userID, State: entity.ResetStateIdentified})

	store.mu.Lock()
	_, staleExists := store.entries["stale"]
	store.mu.Unlock()

	if staleExists {
		t.Error("Put should sweep entries past their TTL")
	}
}

func TestNewMemoryResetSessionStoreDefaultTTL(t *testing.T) {
	store := NewMemoryResetSessionStore(0).(*memoryResetSessionStore)
	if store.ttl != 30*time.Minute {
		t.Errorf("default ttl = %v, want 30m", store.ttl)
	}
}
