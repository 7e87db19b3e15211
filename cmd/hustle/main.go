package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/hustlehub/hustle-api/config"
	"github.com/hustlehub/hustle-api/internal/bootstrap"
	httpx "github.com/hustlehub/hustle-api/internal/http"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := bootstrap.LoadConfig()
	logger := bootstrap.InitLogger(cfg.Observability.LogLevel)
	if err != nil {
		logger.ErrorContext(ctx, "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}

	if err := run(ctx, &cfg, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) error {
	logger.InfoContext(ctx, "starting hustle service",
		"store", cfg.Store,
		"realtime", cfg.Realtime.Driver,
		"dev", cfg.IsDev,
		"addr", cfg.HTTP.Addr)

	infra, err := initInfrastructure(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer infra.close(ctx, logger)

	repos := bootstrap.NewMemoryRepositories(logger)
	if infra.db != nil {
		repos = bootstrap.NewPostgresRepositories(infra.db, logger)
	}

	channel, closeChannel, err := bootstrap.BuildRealtime(bootstrap.RealtimeDeps{
		Config:      cfg.Realtime,
		RedisClient: infra.redis,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeChannel(); cerr != nil {
			logger.ErrorContext(ctx, "close realtime channel failed", "error", cerr)
		}
	}()

	services, err := bootstrap.NewServices(bootstrap.ServiceDeps{
		Config:      cfg,
		Repos:       repos,
		RedisClient: infra.redis,
		Realtime:    channel,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := services.Metrics.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close metrics client failed", "error", cerr)
		}
	}()

	handler := bootstrap.BuildHTTPHandler(&bootstrap.HTTPServerConfig{
		Config:    cfg,
		Services:  services,
		Readiness: infra.readiness(),
		Logger:    logger,
	})
	server := bootstrap.NewHTTPServer(cfg.HTTP, handler)
	return bootstrap.ServeHTTP(ctx, server, cfg.HTTP.ShutdownTimeout, logger)
}

type infrastructure struct {
	db    *sql.DB
	redis redis.UniversalClient
}

// initInfrastructure connects the dependencies the configuration asks for.
func initInfrastructure(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*infrastructure, error) {
	infra := &infrastructure{}
	dbCfg := bootstrap.DatabaseConfig{DBConfig: cfg.Postgres, RedisConfig: cfg.Redis, Logger: logger}

	if cfg.Store == config.StoreDriverPostgres {
		db, err := bootstrap.ConnectDB(ctx, dbCfg)
		if err != nil {
			return nil, fmt.Errorf("connect db: %w", err)
		}
		infra.db = db

		if cfg.Postgres.RunMigrationsOnStart {
			if err := bootstrap.RunMigrations(ctx, db, logger); err != nil {
				infra.close(ctx, logger)
				return nil, err
			}
		} else {
			logger.InfoContext(ctx, "skipping database migrations on startup", "reason", "disabled via config")
		}
	}

	if cfg.UsesRedis() {
		client, err := bootstrap.ConnectRedis(ctx, dbCfg)
		if err != nil {
			infra.close(ctx, logger)
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		infra.redis = client
	}
	return infra, nil
}

func (i *infrastructure) readiness() map[string]httpx.HealthCheck {
	checks := make(map[string]httpx.HealthCheck)
	if i.db != nil {
		checks["postgres"] = i.db.PingContext
	}
	if i.redis != nil {
		checks["redis"] = func(ctx context.Context) error { return i.redis.Ping(ctx).Err() }
	}
	return checks
}

func (i *infrastructure) close(ctx context.Context, logger *slog.Logger) {
	var errs []error
	if i.redis != nil {
		if err := i.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if i.db != nil {
		if err := i.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		logger.ErrorContext(ctx, "close infrastructure failed", "error", err)
	}
}
