package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/domain/marketplace"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
	"github.com/hustlehub/hustle-api/internal/observability/metrics"
)

// BidStores are the repositories BidService reads and writes.
type BidStores struct {
	Bids core.BidRepository // Required
	Jobs core.JobRepository // Required: visibility checks
}

// BidServiceOptions groups dependencies for BidService.
type BidServiceOptions struct {
	Stores BidStores
	// Withdraw decides whether a pending bid may still be withdrawn. Defaults
	// to the 24 hour window.
	Withdraw core.WithdrawChecker
	Effects  SideEffects
	Logger   *slog.Logger
}

// BidService places, withdraws and reads bids.
type BidService struct {
	bids     core.BidRepository
	jobs     core.JobRepository
	withdraw core.WithdrawChecker
	fx       effects
	logger   *slog.Logger
}

// NewBidService constructs a new BidService.
func NewBidService(opts BidServiceOptions) *BidService {
	if opts.Stores.Bids == nil {
		panic("BidRepository is required")
	}
	if opts.Stores.Jobs == nil {
		panic("JobRepository is required")
	}
	withdraw := opts.Withdraw
	if withdraw == nil {
		policy, _ := marketplace.NewWithdrawPolicy(marketplace.DefaultWithdrawWindow)
		withdraw = policy
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "bid_service")
	return &BidService{
		bids:     opts.Stores.Bids,
		jobs:     opts.Stores.Jobs,
		withdraw: withdraw,
		fx:       newEffects(opts.Effects, logger),
		logger:   logger,
	}
}

// Place records a pending bid by hustler on jobID and notifies the job owner.
func (s *BidService) Place(
	ctx context.Context,
	jobID, hustler string,
	req *model.PlaceBidRequest,
) (bid *model.Bid, err error) {
	start := time.Now()
	defer func() { s.fx.record(metrics.EntityBid, "place", start, err) }()

	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res, err := s.bids.Place(ctx, core.PlaceBidParams{
		JobID:     jobID,
		HustlerID: hustler,
		Price:     req.Price,
		Notes:     req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("place bid: %w", err)
	}
	bid, job := res.Bid, res.Job

	s.logger.InfoContext(ctx, "bid placed", "bid_id", bid.ID, "job_id", job.ID, "hustler", hustler)
	s.fx.invalidate(ctx, job.ID)

	notice := NotifyParams{
		Recipient: job.CreatedBy,
		Sender:    hustler,
		JobID:     job.ID,
		Type:      model.NotificationBidPlaced,
		Price:     &bid.Price,
	}
	if job.HiringType == model.HiringInstant {
		notice.Type = model.NotificationJobApplication
		notice.Price = nil
	}
	s.fx.notify(ctx, notice)
	s.fx.broadcast(ctx, toJob(job.ID, s.fx.event(model.EventBidPlaced, job.ID, bid)))

	return bid, nil
}

// Withdraw pulls back a pending bid. Only the applicant may withdraw, and only
// within the withdraw window.
func (s *BidService) Withdraw(ctx context.Context, bidID, actor string) (bid *model.Bid, err error) {
	start := time.Now()
	defer func() { s.fx.record(metrics.EntityBid, "withdraw", start, err) }()

	bid, err = s.bids.Withdraw(ctx, core.WithdrawBidParams{
		BidID:  bidID,
		Actor:  actor,
		Policy: s.withdraw,
	})
	if err != nil {
		return nil, fmt.Errorf("withdraw bid: %w", err)
	}

	s.logger.InfoContext(ctx, "bid withdrawn", "bid_id", bid.ID, "job_id", bid.JobID)
	s.fx.invalidate(ctx, bid.JobID)
	s.fx.broadcast(ctx, toJob(bid.JobID, s.fx.event(model.EventBidWithdrawn, bid.JobID, bid)))
	return bid, nil
}

// Get returns a bid visible to actor: its applicant or the job owner.
func (s *BidService) Get(ctx context.Context, bidID, actor string) (*model.Bid, error) {
	bid, err := s.bids.GetByID(ctx, bidID)
	if err != nil {
		return nil, fmt.Errorf("get bid: %w", err)
	}
	if bid.HustlerID == actor {
		return bid, nil
	}
	job, err := s.jobs.GetByID(ctx, bid.JobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if !marketplace.CanViewBid(job, bid, actor) {
		return nil, apperrors.Forbidden("you cannot view this bid")
	}
	return bid, nil
}

// ListForJob returns every bid on the job to its owner, and only the actor's
// own bid to anyone else.
func (s *BidService) ListForJob(ctx context.Context, jobID, actor string) ([]*model.Bid, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	bids, err := s.bids.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	if job.CreatedBy == actor {
		return bids, nil
	}
	own := make([]*model.Bid, 0, 1)
	for _, b := range bids {
		if b.HustlerID == actor {
			own = append(own, b)
		}
	}
	return own, nil
}

// ListMine returns the hustler's bids, newest first.
func (s *BidService) ListMine(ctx context.Context, hustler string) ([]*model.Bid, error) {
	bids, err := s.bids.ListByHustler(ctx, hustler)
	if err != nil {
		return nil, fmt.Errorf("list my bids: %w", err)
	}
	if bids == nil {
		bids = []*model.Bid{}
	}
	return bids, nil
}
