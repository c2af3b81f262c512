package conversation

import (
	"sync"
	"time"
)

// State identifies where a session is in the booking dialogue.
type State int

const (
	// StateStart is the implicit state of a user with no session.
	StateStart State = iota
	// StateName waits for the user's display name.
	StateName
	// StatePhone waits for a contact phone.
	StatePhone
	// StateDate waits for one of the offered dates.
	StateDate
	// StateTime waits for one of the offered time slots.
	StateTime
)

// Session holds the fields collected so far for one user. Fields are
// only complete once the final step commits them; until then they are
// transient and may be discarded at any time.
type Session struct {
	RequesterID int64
	State       State
	Name        string
	Phone       string
	Date        string
	UpdatedAt   time.Time
}

// SessionStore maps requester ids to their in-flight session. Each key
// is touched by at most one in-flight update at a time (the transport
// delivers a user's events serially), but distinct users may arrive
// concurrently, hence the lock.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]Session)}
}

// Get returns the session for a requester, if any.
func (s *SessionStore) Get(requesterID int64) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[requesterID]
	return sess, ok
}

// Put replaces the requester's session wholesale.
func (s *SessionStore) Put(sess Session) {
	sess.UpdatedAt = time.Now()
	s.mu.Lock()
	s.sessions[sess.RequesterID] = sess
	s.mu.Unlock()
}

// Delete discards the requester's session.
func (s *SessionStore) Delete(requesterID int64) {
	s.mu.Lock()
	delete(s.sessions, requesterID)
	s.mu.Unlock()
}

// Len reports how many sessions are in flight.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
