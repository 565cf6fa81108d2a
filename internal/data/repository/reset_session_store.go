package repository

import (
	"sync"
	"time"

	"accountease/internal/data/entity"
)

// ResetSessionStore holds the per-caller password reset progress. Absence
// of a session means the caller is at the start of the flow.
type ResetSessionStore interface {
	Get(key string) *entity.ResetSession
	Put(key string, session *entity.ResetSession)
	Clear(key string)
}

type resetSessionEntry struct {
	session  entity.ResetSession
	storedAt time.Time
}

// memoryResetSessionStore is an in-process implementation. Entries carry a
// TTL as housekeeping so abandoned flows do not accumulate; correctness of
// the flow never depends on it since the OTP window is enforced separately.
type memoryResetSessionStore struct {
	mu      sync.Mutex
	entries map[string]resetSessionEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryResetSessionStore(ttl time.Duration) ResetSessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &memoryResetSessionStore{
		entries: make(map[string]resetSessionEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *memoryResetSessionStore) Get(key string) *entity.ResetSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil
	}

	if s.now().Sub(entry.storedAt) > s.ttl {
		delete(s.entries, key)
		return nil
	}

	session := entry.session
	return &session
}

func (s *memoryResetSessionStore) Put(key string, session *entity.ResetSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Opportunistically drop stale entries
	now := s.now()
	for k, e := range s.entries {
		if now.Sub(e.storedAt) > s.ttl {
			delete(s.entries, k)
		}
	}

	s.entries[key] = resetSessionEntry{session: *session, storedAt: now}
}

func (s *memoryResetSessionStore) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}
