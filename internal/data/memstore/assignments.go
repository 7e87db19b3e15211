package memstore

import (
	"context"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/domain/marketplace"
	"github.com/hustlehub/hustle-api/internal/domain/model"
)

// AssignmentRepo implements core.AssignmentRepository.
type AssignmentRepo struct{ s *Store }

var _ core.AssignmentRepository = (*AssignmentRepo)(nil)

// Accept assigns the job and rejects competing pending bids.
func (r *AssignmentRepo) Accept(_ context.Context, params core.AssignmentParams) (*core.AcceptResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	job, bid := r.s.jobs[params.JobID], r.s.bids[params.BidID]
	if err := marketplace.CheckAccept(job, bid, params.Actor); err != nil {
		return nil, err
	}

	// Checks passed under the lock; the writes below cannot fail part way.
	now := r.s.clock.Now()
	accepted, err := r.s.transitionLocked(core.BidTransition{
		BidID:  bid.ID,
		From:   model.BidStatusPending,
		To:     model.BidStatusAccepted,
		Actor:  params.Actor,
		Reason: model.ReasonAccepted,
	}, now)
	if err != nil {
		return nil, err
	}
	rejected, err := r.s.rejectPendingLocked(job, bid.ID, params.Actor, model.ReasonAnotherSelected, now)
	if err != nil {
		return nil, err
	}

	hustler := bid.HustlerID
	job.Status = model.JobStatusInProgress
	job.AssignedTo = &hustler
	job.UpdatedAt = now

	return &core.AcceptResult{Job: cloneJob(job), Accepted: accepted, Rejected: rejected}, nil
}

// Reject turns down one pending bid.
func (r *AssignmentRepo) Reject(_ context.Context, params core.AssignmentParams) (*core.RejectResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	job, bid := r.s.jobs[params.JobID], r.s.bids[params.BidID]
	if err := marketplace.CheckReject(job, bid, params.Actor); err != nil {
		return nil, err
	}
	rejected, err := r.s.transitionLocked(core.BidTransition{
		BidID:  bid.ID,
		From:   model.BidStatusPending,
		To:     model.BidStatusRejected,
		Actor:  params.Actor,
		Reason: model.ReasonRejectedByOwner,
	}, r.s.clock.Now())
	if err != nil {
		return nil, err
	}
	return &core.RejectResult{Job: cloneJob(job), Bid: rejected}, nil
}

// Cancel closes an open job and rejects its pending bids.
func (r *AssignmentRepo) Cancel(_ context.Context, jobID, actor string) (*core.CancelResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	job := r.s.jobs[jobID]
	if err := marketplace.CheckCancel(job, actor); err != nil {
		return nil, err
	}
	now := r.s.clock.Now()
	rejected, err := r.s.rejectPendingLocked(job, "", actor, model.ReasonJobCancelled, now)
	if err != nil {
		return nil, err
	}
	job.Status = model.JobStatusCancelled
	job.UpdatedAt = now
	return &core.CancelResult{Job: cloneJob(job), Rejected: rejected}, nil
}
