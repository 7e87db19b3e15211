package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"
	"time"

	domainauth "github.com/hustlehub/hustle-api/internal/domain/auth"
	"github.com/hustlehub/hustle-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityProvider = (*MockIdentityProvider)(nil)
	_ ports.SessionStore     = (*MemorySessionStore)(nil)
)

// MockIdentityProvider accepts any user id unless AuthenticateFunc says otherwise.
type MockIdentityProvider struct {
	AuthenticateFunc func(ctx context.Context, in ports.LoginInput) (domainauth.Identity, error)

	// DefaultRole is used when the login carries no role.
	DefaultRole domainauth.Role
	Calls       []ports.LoginInput
}

func (m *MockIdentityProvider) Authenticate(ctx context.Context, in ports.LoginInput) (domainauth.Identity, error) {
	m.Calls = append(m.Calls, in)
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, in)
	}
	role := in.Role
	if role == "" {
		role = m.DefaultRole
	}
	if role == "" {
		role = domainauth.RoleHustler
	}
	return domainauth.Identity{
		UserID:      in.UserID,
		DisplayName: "Mock " + in.UserID,
		Role:        role,
		ExpiresAt:   time.Now().Add(time.Hour),
	}, nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domainauth.Session)}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len returns the number of stored sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
