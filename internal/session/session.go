package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/unifyevents/cartgate/internal/domain"
)

type FlowStage string

const (
	StageChooseCount         FlowStage = "choose_count"
	StageCollectParticipants FlowStage = "collect_participants"
	StagePickSlot            FlowStage = "pick_slot"
)

// Flow is one in-progress add-to-cart sequence. Nothing is written upstream
// until the slot is picked, so abandoning a flow is always consistent.
type Flow struct {
	EventID    int64
	EventName  string
	Constraint domain.Constraint
	Count      int
	Collector  *domain.Collector
	Stage      FlowStage
}

// Session scopes the constraint cache and the active flow to one cart-editing
// session, replacing the source system's ambient per-page caches.
type Session struct {
	ID string

	mu          sync.Mutex
	constraints map[int64]domain.Constraint
	flow        *Flow
	lastSeen    time.Time
}

func newSession() *Session {
	return &Session{
		ID:          uuid.New().String(),
		constraints: make(map[int64]domain.Constraint),
		lastSeen:    time.Now(),
	}
}

// Constraint returns the cached resolution for an event, if any.
func (s *Session) Constraint(eventID int64) (domain.Constraint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.constraints[eventID]
	return c, ok
}

// CacheConstraint stores a resolution. Unknown results are not cached so a
// later call can retry the fetch.
func (s *Session) CacheConstraint(eventID int64, c domain.Constraint) {
	if c.Kind == domain.ConstraintUnknown {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.constraints[eventID] = c
}

// Flow returns the active add-to-cart flow, or nil.
func (s *Session) Flow() *Flow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flow
}

// SetFlow replaces the active flow; starting a new one abandons the old,
// which made no upstream writes.
func (s *Session) SetFlow(f *Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow = f
}

func (s *Session) ClearFlow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow = nil
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
