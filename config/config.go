package config

import (
	"fmt"
	"os"
	"strings"
)

// StoreDriver selects the repository implementation.
type StoreDriver string

const (
	// StoreDriverPostgres persists marketplace state in PostgreSQL.
	StoreDriverPostgres StoreDriver = "postgres"
	// StoreDriverMemory keeps all state in process memory (local development only).
	StoreDriverMemory StoreDriver = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for StoreDriver.
func (d *StoreDriver) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "postgres", "memory":
		*d = StoreDriver(v)
		return nil
	default:
		return fmt.Errorf("invalid StoreDriver: %q (valid options: postgres, memory)", v)
	}
}

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Session and dev login configuration
//   - database.go: Database and cache configuration
//   - http.go: HTTP server configuration
//   - marketplace.go: Lifecycle policy and listing limits
//   - realtime.go: Realtime event transport
type AppConfig struct {
	// IsDev controls development mode behavior (actor headers, verbose logging).
	// Set DEV=true or APP_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Store selects where marketplace state lives.
	Store StoreDriver `env:"STORE_DRIVER" envDefault:"postgres"`

	Auth AuthConfig

	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`
	Cache    CacheConfig

	HTTP HTTPConfig

	Marketplace MarketplaceConfig

	Realtime RealtimeConfig

	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.detectDevMode()

	c.Postgres.Sanitize()
	c.HTTP.Sanitize()
	c.Cache.Sanitize()
	c.Marketplace.Sanitize()
	c.Realtime.Sanitize()
	c.Observability.Sanitize()
	c.Auth.Sanitize()

	if c.Store == "" {
		c.Store = StoreDriverPostgres
	}
	if !c.IsDev {
		c.Auth.ActorHeaders = false
	}
}

// UsesRedis reports whether any enabled component needs a Redis connection.
func (c *AppConfig) UsesRedis() bool {
	return c.Realtime.Driver == RealtimeDriverRedis || c.Cache.Enabled || c.Auth.SessionStore == SessionStoreRedis
}

// detectDevMode checks both DEV and APP_ENV environment variables.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		appEnv := strings.ToLower(os.Getenv("APP_ENV"))
		c.IsDev = appEnv == "development" || appEnv == "dev"
	}
}
