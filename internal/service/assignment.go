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
	"github.com/hustlehub/hustle-api/internal/realtime"
)

// AssignmentServiceOptions groups dependencies for AssignmentService.
type AssignmentServiceOptions struct {
	Repo    core.AssignmentRepository // Required
	Bids    *BidService               // Required: routes public status updates to withdraw
	Effects SideEffects
	Logger  *slog.Logger
}

// AssignmentService accepts and rejects bids and cancels jobs. Each operation
// commits atomically before any notification or realtime event goes out.
type AssignmentService struct {
	repo   core.AssignmentRepository
	bids   *BidService
	fx     effects
	logger *slog.Logger
}

// NewAssignmentService constructs a new AssignmentService.
func NewAssignmentService(opts AssignmentServiceOptions) *AssignmentService {
	if opts.Repo == nil {
		panic("AssignmentRepository is required")
	}
	if opts.Bids == nil {
		panic("BidService is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "assignment_service")
	return &AssignmentService{
		repo:   opts.Repo,
		bids:   opts.Bids,
		fx:     newEffects(opts.Effects, logger),
		logger: logger,
	}
}

// Accept assigns the job to the bid's hustler and rejects every other pending
// bid on it.
func (s *AssignmentService) Accept(ctx context.Context, p core.AssignmentParams) (res *core.AcceptResult, err error) {
	start := time.Now()
	defer func() { s.fx.record(metrics.EntityBid, "accept", start, err) }()

	res, err = s.repo.Accept(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("accept bid: %w", err)
	}

	job, winner := res.Job, res.Accepted
	s.logger.InfoContext(ctx, "bid accepted",
		"job_id", job.ID,
		"bid_id", winner.ID,
		"hustler", winner.HustlerID,
		"rejected", len(res.Rejected),
	)
	s.fx.invalidate(ctx, job.ID)

	s.fx.notify(ctx, NotifyParams{
		Recipient: winner.HustlerID,
		Sender:    p.Actor,
		JobID:     job.ID,
		Type:      model.NotificationBidAccepted,
		Price:     &winner.Price,
	})
	s.notifyRejected(ctx, job.ID, p.Actor, res.Rejected)

	msgs := []realtime.Message{
		toJob(job.ID, s.fx.event(model.EventJobAssigned, job.ID, job)),
		toUser(winner.HustlerID, s.fx.event(model.EventBidAccepted, job.ID, winner)),
	}
	for _, b := range res.Rejected {
		msgs = append(msgs, toUser(b.HustlerID, s.fx.event(model.EventBidRejected, job.ID, b)))
	}
	s.fx.broadcast(ctx, msgs...)

	return res, nil
}

// Reject turns down a single pending bid. The job is not changed.
func (s *AssignmentService) Reject(ctx context.Context, p core.AssignmentParams) (res *core.RejectResult, err error) {
	start := time.Now()
	defer func() { s.fx.record(metrics.EntityBid, "reject", start, err) }()

	res, err = s.repo.Reject(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("reject bid: %w", err)
	}

	s.logger.InfoContext(ctx, "bid rejected", "job_id", res.Job.ID, "bid_id", res.Bid.ID)
	s.fx.invalidate(ctx, res.Job.ID)
	s.notifyRejected(ctx, res.Job.ID, p.Actor, []*model.Bid{res.Bid})
	s.fx.broadcast(ctx,
		toJob(res.Job.ID, s.fx.event(model.EventBidRejected, res.Job.ID, res.Bid)),
		toUser(res.Bid.HustlerID, s.fx.event(model.EventBidRejected, res.Job.ID, res.Bid)),
	)
	return res, nil
}

// Cancel withdraws an open job posting and rejects its pending bids.
func (s *AssignmentService) Cancel(ctx context.Context, jobID, actor string) (res *core.CancelResult, err error) {
	start := time.Now()
	defer func() { s.fx.record(metrics.EntityJob, "cancel", start, err) }()

	res, err = s.repo.Cancel(ctx, jobID, actor)
	if err != nil {
		return nil, fmt.Errorf("cancel job: %w", err)
	}

	s.logger.InfoContext(ctx, "job cancelled", "job_id", res.Job.ID, "rejected", len(res.Rejected))
	s.fx.invalidate(ctx, res.Job.ID)
	s.notifyRejected(ctx, res.Job.ID, actor, res.Rejected)

	msgs := []realtime.Message{toJob(res.Job.ID, s.fx.event(model.EventJobCancelled, res.Job.ID, res.Job))}
	for _, b := range res.Rejected {
		msgs = append(msgs, toUser(b.HustlerID, s.fx.event(model.EventBidRejected, res.Job.ID, b)))
	}
	s.fx.broadcast(ctx, msgs...)
	return res, nil
}

// UpdateBidStatusParams groups parameters for UpdateBidStatus.
type UpdateBidStatusParams struct {
	BidID  string
	Status model.BidStatus
	Actor  string
}

// UpdateBidStatus routes a requested bid status to the operation that owns
// it: accepted and rejected go through the job owner's assignment paths,
// withdrawn through the applicant's withdraw. Any other target is invalid.
func (s *AssignmentService) UpdateBidStatus(ctx context.Context, p UpdateBidStatusParams) (*model.Bid, error) {
	switch p.Status {
	case model.BidStatusAccepted, model.BidStatusRejected, model.BidStatusWithdrawn:
	default:
		return nil, apperrors.ValidationField("status", "status must be accepted, rejected or withdrawn")
	}

	if p.Status == model.BidStatusWithdrawn {
		return s.bids.Withdraw(ctx, p.BidID, p.Actor)
	}

	bid, err := s.bids.Get(ctx, p.BidID, p.Actor)
	if err != nil {
		return nil, err
	}
	params := core.AssignmentParams{JobID: bid.JobID, BidID: bid.ID, Actor: p.Actor}
	if p.Status == model.BidStatusAccepted {
		res, err := s.Accept(ctx, params)
		if err != nil {
			return nil, err
		}
		return res.Accepted, nil
	}
	res, err := s.Reject(ctx, params)
	if err != nil {
		return nil, err
	}
	return res.Bid, nil
}

func (s *AssignmentService) notifyRejected(ctx context.Context, jobID, sender string, bids []*model.Bid) {
	for _, b := range bids {
		s.fx.notify(ctx, NotifyParams{
			Recipient: b.HustlerID,
			Sender:    sender,
			JobID:     jobID,
			Type:      model.NotificationBidRejected,
			Price:     &b.Price,
		})
	}
}
