package config

import (
	"fmt"
	"strings"
	"time"
)

// SessionStoreKind selects where sessions are kept.
type SessionStoreKind string

const (
	// SessionStoreRedis keeps sessions in Redis so several instances share them.
	SessionStoreRedis SessionStoreKind = "redis"
	// SessionStoreMemory keeps sessions in process memory (single instance only).
	SessionStoreMemory SessionStoreKind = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionStoreKind.
func (k *SessionStoreKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "redis", "memory":
		*k = SessionStoreKind(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionStoreKind: %q (valid options: redis, memory)", v)
	}
}

// AuthConfig groups session and development identity configuration. Real
// credential checks belong to the external auth service; this process only
// resolves bearer tokens to sessions.
type AuthConfig struct {
	SessionStore SessionStoreKind `env:"AUTH_SESSION_STORE" envDefault:"redis"`
	SessionTTL   time.Duration    `env:"AUTH_SESSION_TTL"   envDefault:"8h"`
	// SessionPrefix namespaces session keys in Redis.
	SessionPrefix string `env:"AUTH_SESSION_PREFIX" envDefault:"hustle:session:"`

	// DevUsers is the login allow-list for the dev identity provider,
	// formatted "id:role[:display name],...".
	DevUsers string `env:"AUTH_DEV_USERS" envDefault:"giver-1:job_giver:Demo Giver,hustler-1:hustler:Demo Hustler,hustler-2:hustler:Second Hustler"`

	// ActorHeaders trusts X-Actor-ID / X-Actor-Role request headers. Only
	// honoured in dev mode.
	ActorHeaders bool `env:"AUTH_ACTOR_HEADERS" envDefault:"false"`
}

// Sanitize applies guardrails to auth configuration values.
func (c *AuthConfig) Sanitize() {
	if c.SessionStore == "" {
		c.SessionStore = SessionStoreRedis
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = 8 * time.Hour
	}
	c.DevUsers = strings.TrimSpace(c.DevUsers)
}
