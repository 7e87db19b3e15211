package core

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hustlehub/hustle-api/internal/domain/model"
)

// CacheRepository defines the interface for caching operations.
type CacheRepository interface {
	// Set stores a value in the cache with the given key and TTL.
	// If TTL is 0, the key will not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves a value from the cache by key.
	// Returns nil if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes a key from the cache.
	// Returns true if the key was deleted, false if it didn't exist.
	Delete(ctx context.Context, key string) (bool, error)

	// Health checks the health of the cache connection.
	Health(ctx context.Context) error
}

// JobCacheConfig holds configuration for job detail caching.
type JobCacheConfig struct {
	TTL time.Duration `json:"ttl"`
}

// DefaultJobCacheConfig returns a JobCacheConfig with sensible defaults.
func DefaultJobCacheConfig() JobCacheConfig {
	return JobCacheConfig{TTL: 5 * time.Minute}
}

// JobCacheServiceOptions bundles dependencies for NewJobCacheService.
type JobCacheServiceOptions struct {
	Cache  CacheRepository
	Jobs   JobRepository
	Config JobCacheConfig
	Logger *slog.Logger
}

// JobCacheService is a read-through cache for job details. Every lifecycle
// transition must call Invalidate for the jobs it touched.
type JobCacheService struct {
	cache  CacheRepository
	jobs   JobRepository
	ttl    time.Duration
	logger *slog.Logger
}

// NewJobCacheService creates a new JobCacheService.
func NewJobCacheService(opts JobCacheServiceOptions) *JobCacheService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ttl := opts.Config.TTL
	if ttl <= 0 {
		ttl = DefaultJobCacheConfig().TTL
	}
	return &JobCacheService{
		cache:  opts.Cache,
		jobs:   opts.Jobs,
		ttl:    ttl,
		logger: logger.With("component", "job_cache"),
	}
}

// cachedJob keeps the applicant ids that the public JSON form of a job omits.
type cachedJob struct {
	*model.Job
	ApplicantIDs []string `json:"applicant_ids"`
}

// GetJob returns the job from cache, loading and storing it on a miss. Cache
// failures degrade to a repository read.
func (s *JobCacheService) GetJob(ctx context.Context, id string) (*model.Job, error) {
	if s.cache == nil {
		return s.jobs.GetByID(ctx, id)
	}
	key := jobCacheKey(id)
	if raw, err := s.cache.Get(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "job cache read failed", "job_id", id, "error", err)
	} else if len(raw) > 0 {
		var cj cachedJob
		if err := json.Unmarshal(raw, &cj); err == nil && cj.Job != nil {
			cj.Job.ApplicantIDs = cj.ApplicantIDs
			return cj.Job, nil
		}
	}

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(cachedJob{Job: job, ApplicantIDs: job.ApplicantIDs})
	if err == nil {
		if setErr := s.cache.Set(ctx, key, raw, s.ttl); setErr != nil {
			s.logger.WarnContext(ctx, "job cache write failed", "job_id", id, "error", setErr)
		}
	}
	return job, nil
}

// Invalidate removes cached entries for the given job ids. It is a no-op on a
// nil service.
func (s *JobCacheService) Invalidate(ctx context.Context, ids ...string) {
	if s == nil || s.cache == nil {
		return
	}
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, err := s.cache.Delete(ctx, jobCacheKey(id)); err != nil {
			s.logger.WarnContext(ctx, "job cache invalidation failed", "job_id", id, "error", err)
		}
	}
}

// JobCacheKeyPrefix prefixes every cached job detail key.
const JobCacheKeyPrefix = "job:detail:"

func jobCacheKey(id string) string {
	return JobCacheKeyPrefix + id
}
