package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
	"github.com/hustlehub/hustle-api/internal/observability/metrics"
)

const (
	defaultReviewLimit = 20
	maxReviewLimit     = 100
)

// ReviewServiceOptions groups dependencies for ReviewService.
type ReviewServiceOptions struct {
	Repo    core.ReviewRepository // Required
	Effects SideEffects
	Logger  *slog.Logger
}

// ReviewService finalizes in-progress jobs with the owner's review.
type ReviewService struct {
	repo   core.ReviewRepository
	fx     effects
	logger *slog.Logger
}

// NewReviewService constructs a new ReviewService.
func NewReviewService(opts ReviewServiceOptions) *ReviewService {
	if opts.Repo == nil {
		panic("ReviewRepository is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "review_service")
	return &ReviewService{
		repo:   opts.Repo,
		fx:     newEffects(opts.Effects, logger),
		logger: logger,
	}
}

// Submit records actor's review of jobID. The job becomes completed, its chat
// is purged and the hustler's rating is recomputed in the same commit.
func (s *ReviewService) Submit(
	ctx context.Context,
	jobID, actor string,
	req *model.SubmitReviewRequest,
) (res *core.FinalizeResult, err error) {
	start := time.Now()
	defer func() { s.fx.record(metrics.EntityJob, "review", start, err) }()

	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res, err = s.repo.Finalize(ctx, core.FinalizeParams{
		JobID:   jobID,
		Actor:   actor,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}

	job, review := res.Job, res.Review
	s.logger.InfoContext(ctx, "job completed",
		"job_id", job.ID,
		"hustler", review.HustlerID,
		"rating", review.Rating,
		"messages_purged", res.MessagesPurged,
	)
	s.fx.invalidate(ctx, job.ID)

	closed := s.fx.event(model.EventChatClosed, job.ID, nil)
	completed := s.fx.event(model.EventJobCompleted, job.ID, review)
	s.fx.broadcast(ctx,
		toUser(job.CreatedBy, closed),
		toUser(review.HustlerID, closed),
		toUser(review.HustlerID, completed),
		toJob(job.ID, completed),
	)
	return res, nil
}

// ListForHustler returns the reviews a hustler has received, newest first.
func (s *ReviewService) ListForHustler(ctx context.Context, hustlerID string, limit, offset int) ([]*model.Review, error) {
	if offset < 0 {
		offset = 0
	}
	reviews, err := s.repo.ListByHustler(ctx, hustlerID, clampLimit(limit, defaultReviewLimit, maxReviewLimit), offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []*model.Review{}
	}
	return reviews, nil
}
