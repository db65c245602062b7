package web

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

// DefaultMaxSessions is the number of browser sessions kept in memory.
const DefaultMaxSessions = 1000

// ErrSessionNotFound is returned for unknown or evicted session ids.
var ErrSessionNotFound = errors.New("session not found")

// session is one browser's wizard run.
type session struct {
	state      *wizard.State
	createdAt  time.Time
	lastSeenAt time.Time
}

// SessionStore keeps wizard states in memory, keyed by a random id.
// Nothing is written to disk; states are gone when the process exits.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	max      int

	newState func() *wizard.State
	now      func() time.Time
}

// NewSessionStore creates a store holding at most max sessions.
// newState builds the state for each new session.
func NewSessionStore(max int, newState func() *wizard.State) *SessionStore {
	if max <= 0 {
		max = DefaultMaxSessions
	}
	return &SessionStore{
		sessions: make(map[string]*session),
		max:      max,
		newState: newState,
		now:      time.Now,
	}
}

// Create starts a new session and returns its id.
func (s *SessionStore) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictOldest(s.max - 1)

	id := uuid.NewString()
	now := s.now()
	s.sessions[id] = &session{
		state:      s.newState(),
		createdAt:  now,
		lastSeenAt: now,
	}
	return id
}

// Exists reports whether id names a live session.
func (s *SessionStore) Exists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	return ok
}

// Do runs fn on the session's state under the store lock.
// fn must not keep the pointer after it returns.
func (s *SessionStore) Do(id string, fn func(st *wizard.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	sess.lastSeenAt = s.now()
	return fn(sess.state)
}

// Snapshot returns a copy of the session's state.
func (s *SessionStore) Snapshot(id string) (wizard.State, error) {
	var snap wizard.State
	err := s.Do(id, func(st *wizard.State) error {
		snap = *st
		return nil
	})
	return snap, err
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// evictOldest drops the least recently seen sessions until at most keep
// remain. Ties are broken by creation time, then by id.
// Caller must hold s.mu.
func (s *SessionStore) evictOldest(keep int) {
	if len(s.sessions) <= keep {
		return
	}

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	// Most recent first
	sort.Slice(ids, func(i, j int) bool {
		ti := s.sessions[ids[i]].lastSeenAt
		tj := s.sessions[ids[j]].lastSeenAt
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		ci := s.sessions[ids[i]].createdAt
		cj := s.sessions[ids[j]].createdAt
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return ids[i] > ids[j]
	})
	for _, id := range ids[keep:] {
		delete(s.sessions, id)
	}
}
