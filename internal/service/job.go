package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/domain/marketplace"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// JobListConfig bounds job listing pagination and tagging.
type JobListConfig struct {
	DefaultLimit int // default 10
	MaxLimit     int // default 50
	Tags         marketplace.TagRules
}

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	Repo      core.JobRepository     // Required: job repository
	Locations core.LocationValidator // Required: division/district/upazila reference data
	Config    JobListConfig
	Cache     *core.JobCacheService // Optional: read-through job detail cache
	Logger    *slog.Logger          // Optional: structured logger
}

// JobService posts, lists and reads jobs. It never changes a job's status;
// that happens only through the assignment and review services.
type JobService struct {
	repo      core.JobRepository
	locations core.LocationValidator
	cfg       JobListConfig
	cache     *core.JobCacheService
	logger    *slog.Logger
	now       func() time.Time
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	if opts.Repo == nil {
		panic("JobRepository is required")
	}
	if opts.Locations == nil {
		panic("LocationValidator is required")
	}
	cfg := opts.Config
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 10
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 50
	}
	if cfg.DefaultLimit > cfg.MaxLimit {
		cfg.DefaultLimit = cfg.MaxLimit
	}
	if cfg.Tags == (marketplace.TagRules{}) {
		cfg.Tags = marketplace.DefaultTagRules()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &JobService{
		repo:      opts.Repo,
		locations: opts.Locations,
		cfg:       cfg,
		cache:     opts.Cache,
		logger:    logger.With("component", "job_service"),
		now:       time.Now,
	}
}

// Create validates req and posts an open job owned by owner.
func (s *JobService) Create(ctx context.Context, req *model.CreateJobRequest, owner string) (*model.Job, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	loc := req.Location
	if !s.locations.IsValid(loc.Division, loc.District, loc.Upazila) {
		return nil, apperrors.ValidationField("location", "unknown division, district or upazila")
	}

	job, err := s.repo.Create(ctx, req, owner)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	s.logger.InfoContext(ctx, "job created",
		"job_id", job.ID,
		"owner", owner,
		"hiring_type", job.HiringType,
	)
	return job, nil
}

// Get returns a job by id. A malformed id is a validation error.
func (s *JobService) Get(ctx context.Context, id string) (*model.Job, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	var (
		job *model.Job
		err error
	)
	if s.cache != nil {
		job, err = s.cache.GetJob(ctx, id)
	} else {
		job, err = s.repo.GetByID(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}

// List filters, sorts and pages jobs, transforming each one for requester.
// An empty requester is anonymous.
func (s *JobService) List(ctx context.Context, opts model.JobListOptions, requester string) (*model.JobListPage, error) {
	if opts.Sort == "" {
		opts.Sort = model.JobSortNewest
	}
	if !opts.Sort.Valid() {
		return nil, apperrors.ValidationField("sort", "unknown sort order")
	}
	if opts.Filters.Status == nil {
		open := model.JobStatusOpen
		opts.Filters.Status = &open
	} else if !opts.Filters.Status.Valid() {
		return nil, apperrors.ValidationField("status", "unknown job status")
	}
	if f := opts.Filters; f.MinPay != nil && f.MaxPay != nil && *f.MinPay > *f.MaxPay {
		return nil, apperrors.ValidationField("min_pay", "min_pay must not exceed max_pay")
	}
	if opts.Page < 1 {
		opts.Page = 1
	}
	opts.Limit = clampLimit(opts.Limit, s.cfg.DefaultLimit, s.cfg.MaxLimit)

	res, err := s.repo.List(ctx, &opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	now := s.now()
	listings := make([]*model.JobListing, 0, len(res.Jobs))
	for _, job := range res.Jobs {
		listings = append(listings, s.cfg.Tags.ToListing(job, requester, now))
	}
	return &model.JobListPage{
		Jobs:  listings,
		Total: res.Total,
		Page:  opts.Page,
		Pages: marketplace.PageCount(res.Total, opts.Limit),
	}, nil
}

func validateID(field, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ValidationField(field, "malformed id")
	}
	return nil
}
