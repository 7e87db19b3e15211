package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/hustlehub/hustle-api/config"
	"github.com/hustlehub/hustle-api/internal/adapters/devauth"
	redisadapter "github.com/hustlehub/hustle-api/internal/adapters/redis"
	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/data/memstore"
	"github.com/hustlehub/hustle-api/internal/ports"
	"github.com/hustlehub/hustle-api/internal/service"
)

// AuthConfig contains configuration for auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Profiles    core.ProfileRepository
	Logger      *slog.Logger
}

// BuildAuthService creates the session-backed auth service. It returns nil
// when no dev users are configured, which leaves only actor headers (dev) or
// no authentication at all.
func BuildAuthService(cfg AuthConfig) (*service.AuthService, error) {
	users, err := devauth.ParseUsers(cfg.Auth.DevUsers)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: no dev users configured")
		}
		return nil, nil
	}

	sessions, err := buildSessionStore(cfg)
	if err != nil {
		return nil, err
	}

	prov, err := devauth.NewProvider(devauth.Config{
		Users:           users,
		SessionDuration: cfg.Auth.SessionTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("create dev auth provider: %w", err)
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: prov,
		Sessions: sessions,
		Profiles: cfg.Profiles,
	}), nil
}

//nolint:ireturn // the concrete store depends on configuration.
func buildSessionStore(cfg AuthConfig) (ports.SessionStore, error) {
	switch cfg.Auth.SessionStore {
	case config.SessionStoreMemory:
		return memstore.NewSessions(nil), nil
	default:
		if cfg.RedisClient == nil {
			return nil, fmt.Errorf("session store %q requires redis", cfg.Auth.SessionStore)
		}
		return redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, cfg.Auth.SessionPrefix), nil
	}
}
