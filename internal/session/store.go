package session

import (
	"context"
	"sync"
	"time"
)

// Store holds live sessions in memory. Sessions are the only state the
// gateway keeps; everything else lives upstream.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (st *Store) Create() *Session {
	s := newSession()

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s

	return s
}

// Get returns the session and refreshes its idle timer. Sessions idle past
// the TTL are expired here too, not only when the sweeper runs.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, false
	}

	now := time.Now()
	if s.idleSince(now) > st.ttl {
		st.mu.Lock()
		delete(st.sessions, id)
		st.mu.Unlock()
		return nil, false
	}

	s.touch(now)
	return s, true
}

// GetOrCreate resolves the caller's session by id, falling back to a fresh
// one when the id is empty or expired.
func (st *Store) GetOrCreate(id string) *Session {
	if id != "" {
		if s, ok := st.Get(id); ok {
			return s
		}
	}
	return st.Create()
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// SweepExpired drops sessions idle past the TTL and returns how many were
// removed. Called by the scheduler.
func (st *Store) SweepExpired(ctx context.Context) int {
	now := time.Now()

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if ctx.Err() != nil {
			break
		}
		if s.idleSince(now) > st.ttl {
			delete(st.sessions, id)
			removed++
		}
	}

	return removed
}
