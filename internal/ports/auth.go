package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/hustlehub/hustle-api/internal/domain/auth"
)

// ErrSessionNotFound is returned by session stores for unknown or expired ids.
var ErrSessionNotFound = errors.New("session not found")

// ErrUnknownIdentity is returned by identity providers that reject a login.
var ErrUnknownIdentity = errors.New("unknown identity")

// LoginInput carries the credentials presented to an IdentityProvider.
type LoginInput struct {
	UserID string
	Role   domainauth.Role
}

// IdentityProvider resolves login credentials to an identity. Production
// identities come from the external auth service; the dev provider serves a
// configured user list.
type IdentityProvider interface {
	Authenticate(ctx context.Context, in LoginInput) (domainauth.Identity, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
