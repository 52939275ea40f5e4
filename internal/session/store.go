package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio-gallery/internal/domain"
)

type entry struct {
	mu        sync.Mutex
	state     *State
	expiresAt time.Time
}

// Store keeps sessions in memory with a sliding expiry. Nothing is persisted.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

// NewStore returns a Store whose sessions expire after ttl without use.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create registers a fresh State and returns its id.
func (s *Store) Create() string {
	id := uuid.NewString()
	e := &entry{state: NewState(), expiresAt: s.now().Add(s.ttl)}
	s.mu.Lock()
	s.sessions[id] = e
	s.mu.Unlock()
	return id
}

// With runs fn against the session's State while holding its lock, and
// extends the session's expiry.
func (s *Store) With(id string, fn func(*State) error) error {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}

	e.mu.Lock()
	now := s.now()
	if now.After(e.expiresAt) {
		// Release before Delete: Sweep takes the store lock before entry locks.
		e.mu.Unlock()
		s.Delete(id)
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	defer e.mu.Unlock()
	e.expiresAt = now.Add(s.ttl)
	return fn(e.state)
}

// Delete drops a session; unknown ids are ignored.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live and not yet swept sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *Store) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.sessions {
		e.mu.Lock()
		expired := now.After(e.expiresAt)
		e.mu.Unlock()
		if expired {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled. onSweep, when non-nil, is
// called with the number of sessions removed by each sweep.
func (s *Store) Run(ctx context.Context, interval time.Duration, onSweep func(removed int)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n := s.Sweep()
			if onSweep != nil {
				onSweep(n)
			}
		}
	}
}
