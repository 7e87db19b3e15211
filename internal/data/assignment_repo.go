package data

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/data/pgxutil"
	"github.com/hustlehub/hustle-api/internal/domain/marketplace"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// AssignmentRepo performs the job-owner transitions that touch a job and
// several of its bids. Each method runs in one transaction holding the job row
// lock, so at most one accept or cancel can win per job.
type AssignmentRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
	logger       *slog.Logger
}

var _ core.AssignmentRepository = (*AssignmentRepo)(nil)

// NewAssignmentRepo creates a new AssignmentRepo.
func NewAssignmentRepo(db *sql.DB, cfg RepoConfig) *AssignmentRepo {
	return &AssignmentRepo{
		DB:           db,
		timeProvider: cfg.clock(),
		logger:       cfg.log("assignment_repo"),
	}
}

// Accept assigns the job to the bid's hustler and rejects every other pending bid.
func (r *AssignmentRepo) Accept(ctx context.Context, params core.AssignmentParams) (*core.AcceptResult, error) {
	now := r.timeProvider.Now()
	result := &core.AcceptResult{}

	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			job, bid, err := lockJobAndBid(ctx, tx, params)
			if err != nil {
				return err
			}
			if checkErr := marketplace.CheckAccept(job, bid, params.Actor); checkErr != nil {
				return checkErr
			}

			result.Accepted, err = transitionBidInTx(ctx, tx, core.BidTransition{
				BidID:  bid.ID,
				From:   model.BidStatusPending,
				To:     model.BidStatusAccepted,
				Actor:  params.Actor,
				Reason: model.ReasonAccepted,
			}, now)
			if err != nil {
				return err
			}

			result.Rejected, err = rejectPendingInTx(ctx, tx, rejectPendingParams{
				JobID:     job.ID,
				KeepBidID: bid.ID,
				Actor:     params.Actor,
				Reason:    model.ReasonAnotherSelected,
				At:        now,
			})
			if err != nil {
				return err
			}

			tag, err := tx.Exec(ctx, `
				UPDATE jobs SET status = 'in-progress', assigned_to = $2, updated_at = $3
				WHERE id = $1::uuid AND status = 'open'`,
				job.ID, bid.HustlerID, now)
			if err != nil {
				return fmt.Errorf("assign job: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return apperrors.Conflict("job has already been assigned")
			}

			result.Job, err = loadJob(ctx, tx, job.ID)
			return err
		},
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	r.logger.InfoContext(ctx, "bid accepted",
		"job_id", params.JobID,
		"bid_id", params.BidID,
		"rejected", len(result.Rejected))
	return result, nil
}

// Reject turns down a single pending bid. The job stays open.
func (r *AssignmentRepo) Reject(ctx context.Context, params core.AssignmentParams) (*core.RejectResult, error) {
	now := r.timeProvider.Now()
	result := &core.RejectResult{}

	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			job, bid, err := lockJobAndBid(ctx, tx, params)
			if err != nil {
				return err
			}
			if checkErr := marketplace.CheckReject(job, bid, params.Actor); checkErr != nil {
				return checkErr
			}
			result.Job = job
			result.Bid, err = transitionBidInTx(ctx, tx, core.BidTransition{
				BidID:  bid.ID,
				From:   model.BidStatusPending,
				To:     model.BidStatusRejected,
				Actor:  params.Actor,
				Reason: model.ReasonRejectedByOwner,
			}, now)
			return err
		},
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return result, nil
}

// Cancel closes an open job and rejects all of its pending bids.
func (r *AssignmentRepo) Cancel(ctx context.Context, jobID, actor string) (*core.CancelResult, error) {
	now := r.timeProvider.Now()
	result := &core.CancelResult{}

	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			job, err := lockJob(ctx, tx, jobID, lockForUpdate)
			if err != nil {
				return err
			}
			if checkErr := marketplace.CheckCancel(job, actor); checkErr != nil {
				return checkErr
			}

			result.Rejected, err = rejectPendingInTx(ctx, tx, rejectPendingParams{
				JobID:  job.ID,
				Actor:  actor,
				Reason: model.ReasonJobCancelled,
				At:     now,
			})
			if err != nil {
				return err
			}

			if err := setJobStatus(ctx, tx, job.ID, model.JobStatusOpen, model.JobStatusCancelled, now); err != nil {
				return err
			}
			result.Job, err = loadJob(ctx, tx, job.ID)
			return err
		},
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return result, nil
}

// lockJobAndBid locks the job before the bid. Every multi-row writer takes
// locks in this order.
func lockJobAndBid(ctx context.Context, tx pgx.Tx, params core.AssignmentParams) (*model.Job, *model.Bid, error) {
	job, err := lockJob(ctx, tx, params.JobID, lockForUpdate)
	if err != nil || job == nil {
		return job, nil, err
	}
	bid, err := lockBid(ctx, tx, params.BidID)
	if err != nil {
		return nil, nil, err
	}
	return job, bid, nil
}

func setJobStatus(ctx context.Context, tx pgx.Tx, jobID string, from, to model.JobStatus, at time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE jobs SET status = $3, updated_at = $4
		WHERE id = $1::uuid AND status = $2`,
		jobID, string(from), string(to), at)
	if err != nil {
		return fmt.Errorf("update job status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.Conflictf("job is no longer %s", from)
	}
	return nil
}
