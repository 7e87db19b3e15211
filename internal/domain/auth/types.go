package auth

// Package auth contains domain-level types for actors and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents a marketplace role.
type Role string

const (
	RoleJobGiver Role = "job_giver"
	RoleHustler  Role = "hustler"
	RoleAdmin    Role = "admin"
)

// Valid returns true if the role is known.
func (r Role) Valid() bool {
	return r == RoleJobGiver || r == RoleHustler || r == RoleAdmin
}

// Identity is the authenticated principal returned by an identity provider.
type Identity struct {
	UserID      string
	DisplayName string
	Role        Role
	ExpiresAt   time.Time
}

// Session is the server-side record persisted for an authenticated user.
// ID is the opaque bearer token.
type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Role        Role      `json:"role"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool { return !now.Before(s.ExpiresAt) }

// Actor is the (user, role) pair every marketplace operation runs as.
type Actor struct {
	ID   string
	Role Role
}

// Actor returns the session's actor.
func (s Session) Actor() Actor { return Actor{ID: s.UserID, Role: s.Role} }
