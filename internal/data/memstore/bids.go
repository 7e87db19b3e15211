package memstore

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/domain/marketplace"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// BidRepo implements core.BidRepository.
type BidRepo struct{ s *Store }

var _ core.BidRepository = (*BidRepo)(nil)

// Place creates a pending bid and appends it to the job's bid set.
func (r *BidRepo) Place(_ context.Context, params core.PlaceBidParams) (*core.PlaceBidResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	job := r.s.jobs[params.JobID]
	if err := marketplace.CheckPlaceBid(job, params.HustlerID); err != nil {
		return nil, err
	}

	now := r.s.clock.Now()
	bid := &model.Bid{
		ID:               newID(),
		JobID:            job.ID,
		HustlerID:        params.HustlerID,
		Price:            params.Price,
		Notes:            params.Notes,
		Status:           model.BidStatusPending,
		CanWithdraw:      true,
		CreatedAt:        now,
		LastStatusChange: now,
		StatusHistory: model.NewStatusHistory(model.StatusChange{
			Status:    model.BidStatusPending,
			Timestamp: now,
			Actor:     params.HustlerID,
			Reason:    model.ReasonInitialApplication,
		}),
	}
	r.s.bids[bid.ID] = bid
	job.Bids = append(job.Bids, bid.ID)
	job.ApplicantIDs = append(job.ApplicantIDs, params.HustlerID)

	return &core.PlaceBidResult{Bid: cloneBid(bid), Job: cloneJob(job)}, nil
}

// GetByID returns a bid by id.
func (r *BidRepo) GetByID(_ context.Context, id string) (*model.Bid, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	bid, ok := r.s.bids[id]
	if !ok {
		return nil, apperrors.NotFound("bid not found")
	}
	return cloneBid(bid), nil
}

// ListByJob returns a job's bids in creation order.
func (r *BidRepo) ListByJob(_ context.Context, jobID string) ([]*model.Bid, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	job, ok := r.s.jobs[jobID]
	if !ok {
		return []*model.Bid{}, nil
	}
	out := make([]*model.Bid, 0, len(job.Bids))
	for _, id := range job.Bids {
		out = append(out, cloneBid(r.s.bids[id]))
	}
	return out, nil
}

// ListByHustler returns a hustler's bids, newest first.
func (r *BidRepo) ListByHustler(_ context.Context, hustlerID string) ([]*model.Bid, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*model.Bid{}
	for _, b := range r.s.bids {
		if b.HustlerID == hustlerID {
			out = append(out, cloneBid(b))
		}
	}
	slices.SortFunc(out, func(a, b *model.Bid) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return out, nil
}

// Withdraw moves a pending bid to withdrawn if the policy allows it now.
func (r *BidRepo) Withdraw(_ context.Context, params core.WithdrawBidParams) (*model.Bid, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	bid := r.s.bids[params.BidID]
	if bid == nil {
		return nil, apperrors.NotFound("bid not found")
	}
	now := r.s.clock.Now()
	if err := params.Policy.Check(cloneBid(bid), params.Actor, now); err != nil {
		return nil, err
	}
	return r.s.transitionLocked(core.BidTransition{
		BidID:  bid.ID,
		From:   model.BidStatusPending,
		To:     model.BidStatusWithdrawn,
		Actor:  params.Actor,
		Reason: model.ReasonWithdrawn,
	}, now)
}

// transitionLocked is the only writer of bid status. Callers hold s.mu.
func (s *Store) transitionLocked(t core.BidTransition, at time.Time) (*model.Bid, error) {
	if !t.To.Valid() {
		return nil, apperrors.Validationf("unknown bid status %q", t.To)
	}
	bid := s.bids[t.BidID]
	if bid.Status != t.From {
		return nil, apperrors.Conflictf("bid is no longer %s", t.From)
	}
	bid.Transition(t.To, t.Actor, t.Reason, at)
	return cloneBid(bid), nil
}

// rejectPendingLocked demotes every pending bid on job except keepBidID.
func (s *Store) rejectPendingLocked(job *model.Job, keepBidID, actor, reason string, at time.Time) ([]*model.Bid, error) {
	rejected := []*model.Bid{}
	for _, id := range job.Bids {
		if id == keepBidID || s.bids[id].Status != model.BidStatusPending {
			continue
		}
		bid, err := s.transitionLocked(core.BidTransition{
			BidID:  id,
			From:   model.BidStatusPending,
			To:     model.BidStatusRejected,
			Actor:  actor,
			Reason: reason,
		}, at)
		if err != nil {
			return nil, err
		}
		rejected = append(rejected, bid)
	}
	return rejected, nil
}
