package memstore

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/hustlehub/hustle-api/internal/domain/auth"
	"github.com/hustlehub/hustle-api/internal/ports"
)

// Sessions is an in-process session store. Sessions are dropped lazily once
// they expire.
type Sessions struct {
	mu       sync.Mutex
	clock    Clock
	sessions map[string]domainauth.Session
}

var _ ports.SessionStore = (*Sessions)(nil)

// NewSessions creates an empty session store.
func NewSessions(clock Clock) *Sessions {
	if clock == nil {
		clock = systemClock{}
	}
	return &Sessions{clock: clock, sessions: make(map[string]domainauth.Session)}
}

// Save stores sess until its expiry.
func (s *Sessions) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if sess.Expired(s.clock.Now()) {
		return errors.New("session is expired")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

// Get returns a live session or ports.ErrSessionNotFound.
func (s *Sessions) Get(_ context.Context, id string) (domainauth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	if sess.Expired(s.clock.Now()) {
		delete(s.sessions, id)
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

// Delete removes a session. Deleting an unknown id is not an error.
func (s *Sessions) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
