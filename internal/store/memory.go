// internal/store/memory.go
//
// In-memory session store.
// Sessions are ephemeral: they live as long as the process or until they
// expire, and are never written to disk.
//
// Characteristics:
//   - Stores *session.Session values keyed by a uuid.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Entries idle for longer than the TTL are dropped by Sweep.
//   - ErrNotFound is returned for unknown or expired IDs.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/multiwordle/internal/session"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the persistence interface for sessions.
type Store interface {
	// Create stores s under a new ID and returns the ID.
	Create(ctx context.Context, s *session.Session) (string, error)

	// Get retrieves a session by ID and marks it as used.
	Get(ctx context.Context, id string) (*session.Session, error)

	// Delete removes a session. Deleting an unknown ID returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}

type entry struct {
	sess     *session.Session
	lastUsed time.Time
}

// Memory is a map-based Store.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore constructs an in-memory Store. A ttl <= 0 disables expiry.
func NewMemoryStore(ttl time.Duration) *Memory {
	return &Memory{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create adds s under a fresh uuid.
func (m *Memory) Create(ctx context.Context, s *session.Session) (string, error) {
	id := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = &entry{sess: s, lastUsed: m.now()}
	return id, nil
}

// Get looks up a session by ID.
func (m *Memory) Get(ctx context.Context, id string) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok || m.expired(e) {
		return nil, ErrNotFound
	}
	e.lastUsed = m.now()
	return e.sess, nil
}

// Delete removes a session by ID.
func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops expired sessions and returns how many were removed.
func (m *Memory) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		if m.expired(e) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (m *Memory) RunSweeper(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := m.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}

func (m *Memory) expired(e *entry) bool {
	return m.ttl > 0 && m.now().Sub(e.lastUsed) > m.ttl
}
