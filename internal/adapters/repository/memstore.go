package repository

import (
	"context"
	"sync"

	"github.com/okian/heft/internal/session"
	"github.com/okian/heft/pkg/metrics"
)

// MemStore implements Store with a mutex-guarded map. Each session carries
// its own lock, so the store lock only covers membership.
type MemStore struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
	capacity int
}

// NewMemStore creates an in-memory session store with configuration options.
func NewMemStore(_ context.Context, opts ...Option) *MemStore {
	s := &MemStore{
		sessions: make(map[string]*session.Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	metrics.UpdateActiveSessions(0)
	metrics.UpdateStoreCapacity(s.capacity)
	return s
}

// Put registers a session, refusing once the capacity is reached.
func (s *MemStore) Put(ctx context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.capacity > 0 && len(s.sessions) >= s.capacity {
		metrics.RecordStoreRejection()
		return ErrStoreFull
	}
	s.sessions[sess.ID()] = sess
	metrics.UpdateActiveSessions(len(s.sessions))
	return nil
}

// Get returns the session with the given id.
func (s *MemStore) Get(ctx context.Context, id string) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Delete removes a session; unknown ids are ignored.
func (s *MemStore) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; ok {
		delete(s.sessions, id)
		metrics.UpdateActiveSessions(len(s.sessions))
	}
}

// Count returns the number of live sessions.
func (s *MemStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
