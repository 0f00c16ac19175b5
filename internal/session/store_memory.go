package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"whateating/internal/selection"
)

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time // zero means never
}

// InMemoryStore keeps sessions in process; entries expire after ttl like
// the badger store.
type InMemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memoryEntry
}

// NewInMemoryStore returns a store whose entries live for ttl; 0 disables expiry.
func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	return &InMemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memoryEntry),
	}
}

// states are stored encoded so callers never share a pointer
func (s *InMemoryStore) Get(ctx context.Context, id string) (*selection.State, error) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if ok && !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.sessions, id)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}

	var state selection.State
	if err := json.Unmarshal(e.raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Save refreshes the expiry, as a badger SetEntry with TTL does.
func (s *InMemoryStore) Save(ctx context.Context, id string, state *selection.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}

	e := memoryEntry{raw: raw}
	s.mu.Lock()
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.sessions[id] = e
	s.mu.Unlock()
	return nil
}

func (s *InMemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
