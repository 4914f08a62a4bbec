// pkg/memcache/session_store.go
package memcache

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type SessionStore interface {
	Create(ttl time.Duration) *SessionState

	// Get returns the session for id if not expired and extends its lifetime.
	Get(id string) (*SessionState, bool)

	Delete(id string)

	// Sweep removes expired sessions and reports how many were dropped.
	Sweep() int
}

type entry struct {
	state     *SessionState
	ttl       time.Duration
	expiresAt time.Time
}

type Sessions struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewSessions() *Sessions {
	return &Sessions{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *Sessions) Create(ttl time.Duration) *SessionState {
	state := NewSessionState(uuid.New().String())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[state.ID] = entry{
		state:     state,
		ttl:       ttl,
		expiresAt: s.now().Add(ttl),
	}
	return state
}

func (s *Sessions) Get(id string) (*SessionState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.After(e.expiresAt) {
		delete(s.data, id) // cleanup expired
		return nil, false
	}
	e.expiresAt = now.Add(e.ttl)
	s.data[id] = e
	return e.state, true
}

func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}

func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
