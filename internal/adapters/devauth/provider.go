// Package devauth provides a config-driven IdentityProvider for local development.
package devauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainauth "github.com/hustlehub/hustle-api/internal/domain/auth"
	"github.com/hustlehub/hustle-api/internal/ports"
)

// User is one login the dev provider accepts.
type User struct {
	ID          string
	DisplayName string
	Role        domainauth.Role
}

// Config controls the dev auth provider behavior.
type Config struct {
	Users           []User
	SessionDuration time.Duration // default 8h when zero
}

// Provider implements ports.IdentityProvider for local development. Any
// configured user may log in without a password.
type Provider struct {
	users           map[string]User
	sessionDuration time.Duration
	now             func() time.Time
}

var _ ports.IdentityProvider = (*Provider)(nil)

// NewProvider constructs a dev auth provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if len(cfg.Users) == 0 {
		return nil, errors.New("dev auth: at least one user is required")
	}
	users := make(map[string]User, len(cfg.Users))
	for _, u := range cfg.Users {
		if u.ID == "" {
			return nil, errors.New("dev auth: user id is required")
		}
		if !u.Role.Valid() {
			return nil, fmt.Errorf("dev auth: user %s has invalid role %q", u.ID, u.Role)
		}
		users[u.ID] = u
	}
	dur := cfg.SessionDuration
	if dur == 0 {
		dur = 8 * time.Hour
	}
	return &Provider{users: users, sessionDuration: dur, now: time.Now}, nil
}

// Authenticate returns the configured identity for in.UserID. A non-empty
// in.Role must match the configured role.
func (p *Provider) Authenticate(_ context.Context, in ports.LoginInput) (domainauth.Identity, error) {
	u, ok := p.users[in.UserID]
	if !ok || (in.Role != "" && in.Role != u.Role) {
		return domainauth.Identity{}, ports.ErrUnknownIdentity
	}
	name := u.DisplayName
	if name == "" {
		name = u.ID
	}
	return domainauth.Identity{
		UserID:      u.ID,
		DisplayName: name,
		Role:        u.Role,
		ExpiresAt:   p.now().Add(p.sessionDuration),
	}, nil
}

// ParseUsers reads a comma-separated list of id:role[:display name] entries.
// Empty entries are skipped; a missing id or unknown role is an error.
func ParseUsers(raw string) ([]User, error) {
	var users []User
	for entry := range strings.SplitSeq(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("dev auth: entry %q must be id:role[:name]", entry)
		}
		u := User{ID: strings.TrimSpace(parts[0]), Role: domainauth.Role(strings.TrimSpace(parts[1]))}
		if len(parts) == 3 {
			u.DisplayName = strings.TrimSpace(parts[2])
		}
		if u.ID == "" || !u.Role.Valid() {
			return nil, fmt.Errorf("dev auth: entry %q has an empty id or unknown role", entry)
		}
		users = append(users, u)
	}
	return users, nil
}
