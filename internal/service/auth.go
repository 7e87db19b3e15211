package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hustlehub/hustle-api/internal/core"
	domainauth "github.com/hustlehub/hustle-api/internal/domain/auth"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
	"github.com/hustlehub/hustle-api/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider ports.IdentityProvider
	Sessions ports.SessionStore
	Profiles core.ProfileRepository // Optional: identity fields are mirrored on login
}

// AuthService resolves logins to identities and persists bearer sessions.
type AuthService struct {
	provider ports.IdentityProvider
	sessions ports.SessionStore
	profiles core.ProfileRepository
	now      func() time.Time
}

var errSessionExpired = errors.New("session expired")

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Provider == nil {
		panic("IdentityProvider is required")
	}
	if opts.Sessions == nil {
		panic("SessionStore is required")
	}
	return &AuthService{
		provider: opts.Provider,
		sessions: opts.Sessions,
		profiles: opts.Profiles,
		now:      time.Now,
	}
}

// Login authenticates in and persists a new session. The session id is the
// bearer token handed to the client.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*domainauth.Session, error) {
	if in.UserID == "" {
		return nil, apperrors.ValidationField("user_id", "user id is required")
	}
	if in.Role != "" && !in.Role.Valid() {
		return nil, apperrors.ValidationField("role", "unknown role")
	}

	identity, err := s.provider.Authenticate(ctx, in)
	if errors.Is(err, ports.ErrUnknownIdentity) {
		return nil, apperrors.Unauthorized("unknown user")
	}
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	session := domainauth.Session{
		ID:          generateSessionID(),
		UserID:      identity.UserID,
		DisplayName: identity.DisplayName,
		Role:        identity.Role,
		ExpiresAt:   identity.ExpiresAt,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	if s.profiles != nil {
		profile := &model.Profile{
			UserID:      identity.UserID,
			DisplayName: identity.DisplayName,
			Role:        string(identity.Role),
		}
		if err := s.profiles.Upsert(ctx, profile); err != nil {
			return nil, fmt.Errorf("upsert profile: %w", err)
		}
	}

	return &session, nil
}

// GetSession retrieves a live session by ID. Unknown and expired sessions are
// reported as unauthorized.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, apperrors.Unauthorized("missing session")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, ports.ErrSessionNotFound) {
		return nil, apperrors.Unauthorized("session not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Expired(s.now()) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, apperrors.Unauthorized(errSessionExpired.Error())
	}

	return &session, nil
}

// Logout removes a session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// generateSessionID creates a random session ID.
func generateSessionID() string {
	return uuid.New().String()
}
