package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/hustlehub/hustle-api/config"
	"github.com/hustlehub/hustle-api/internal/adapters/location"
	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/data"
	"github.com/hustlehub/hustle-api/internal/data/memstore"
	"github.com/hustlehub/hustle-api/internal/domain/marketplace"
	"github.com/hustlehub/hustle-api/internal/observability/statsd"
	"github.com/hustlehub/hustle-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Jobs          *service.JobService
	Bids          *service.BidService
	Assignments   *service.AssignmentService
	Reviews       *service.ReviewService
	Notifications *service.NotificationService
	Chat          *service.ChatService
	Auth          *service.AuthService // nil when login is disabled
	JobCache      *core.JobCacheService
	Metrics       *statsd.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	Repos       Repositories
	RedisClient redis.UniversalClient // Optional: job cache and sessions
	Realtime    core.Channel
	Logger      *slog.Logger
}

// NewServices wires the marketplace services over deps.
func NewServices(deps ServiceDeps) (ServiceContainer, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	locations, err := loadLocations(cfg.Marketplace.LocationsFile)
	if err != nil {
		return ServiceContainer{}, err
	}
	withdraw, err := marketplace.NewWithdrawPolicy(cfg.Marketplace.WithdrawWindow)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("withdraw policy: %w", err)
	}
	metrics := buildMetrics(logger, cfg.Observability.Metrics)

	repos := deps.Repos
	cache := newJobCache(deps, repos.Jobs)

	notifications := service.NewNotificationService(service.NotificationServiceOptions{
		Repo:     repos.Notifications,
		Lookups:  service.NotificationLookups{Jobs: repos.Jobs, Profiles: repos.Profiles},
		Realtime: deps.Realtime,
		Logger:   logger,
	})
	fx := service.SideEffects{
		Notifier: notifications,
		Realtime: deps.Realtime,
		JobCache: cache,
		Metrics:  metrics,
	}

	bids := service.NewBidService(service.BidServiceOptions{
		Stores:   service.BidStores{Bids: repos.Bids, Jobs: repos.Jobs},
		Withdraw: withdraw,
		Effects:  fx,
		Logger:   logger,
	})

	auth, err := BuildAuthService(AuthConfig{
		Auth:        cfg.Auth,
		RedisClient: deps.RedisClient,
		Profiles:    repos.Profiles,
		Logger:      logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build auth service: %w", err)
	}

	return ServiceContainer{
		Jobs: service.NewJobService(service.JobServiceOptions{
			Repo:      repos.Jobs,
			Locations: locations,
			Config: service.JobListConfig{
				DefaultLimit: cfg.Marketplace.JobsDefaultLimit,
				MaxLimit:     cfg.Marketplace.JobsMaxLimit,
				Tags: marketplace.TagRules{
					StudentFriendlyMax: cfg.Marketplace.StudentFriendlyMax,
					UrgentWithin:       cfg.Marketplace.UrgentWithin,
				},
			},
			Cache:  cache,
			Logger: logger,
		}),
		Bids: bids,
		Assignments: service.NewAssignmentService(service.AssignmentServiceOptions{
			Repo:    repos.Assignments,
			Bids:    bids,
			Effects: fx,
			Logger:  logger,
		}),
		Reviews: service.NewReviewService(service.ReviewServiceOptions{
			Repo:    repos.Reviews,
			Effects: fx,
			Logger:  logger,
		}),
		Notifications: notifications,
		Chat: service.NewChatService(service.ChatServiceOptions{
			Jobs:     repos.Jobs,
			Messages: repos.Messages,
			Realtime: deps.Realtime,
			Logger:   logger,
		}),
		Auth:     auth,
		JobCache: cache,
		Metrics:  metrics,
	}, nil
}

func loadLocations(path string) (*location.StaticValidator, error) {
	if path == "" {
		v, err := location.NewStaticValidator()
		if err != nil {
			return nil, fmt.Errorf("load embedded locations: %w", err)
		}
		return v, nil
	}
	v, err := location.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load locations %s: %w", path, err)
	}
	return v, nil
}

// newJobCache picks the Redis cache when enabled, an in-process cache when the
// whole store is in memory, and no cache otherwise.
func newJobCache(deps ServiceDeps, jobs core.JobRepository) *core.JobCacheService {
	cfg := deps.Config
	var repo core.CacheRepository
	switch {
	case cfg.Cache.Enabled && deps.RedisClient != nil:
		repo = data.NewRedisCacheRepo(deps.RedisClient, cfg.Cache.Prefix)
	case cfg.Store == config.StoreDriverMemory:
		repo = memstore.NewCache(nil)
	default:
		return nil
	}
	return core.NewJobCacheService(core.JobCacheServiceOptions{
		Cache:  repo,
		Jobs:   jobs,
		Config: core.JobCacheConfig{TTL: cfg.Cache.JobTTL},
		Logger: deps.Logger,
	})
}

// buildMetrics returns a disabled client when metrics are off or the sink
// cannot be reached; a disabled client drops every metric.
func buildMetrics(logger *slog.Logger, cfg config.ObservabilityMetricsConfig) *statsd.Client {
	client, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.IsEnabled(),
		Address: cfg.StatsdAddress,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		client, _ = statsd.NewClient(statsd.Config{Prefix: cfg.Prefix, Logger: logger})
	}
	return client
}
