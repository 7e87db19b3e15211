// Package marketplace holds the job and bid lifecycle rules. The functions here
// are pure: repositories call them on rows they hold locked, and the in-memory
// store calls them under its mutex, so both backends decide identically.
package marketplace

import (
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// CheckPlaceBid validates a new bid by hustlerID on job.
func CheckPlaceBid(job *model.Job, hustlerID string) error {
	if job == nil {
		return apperrors.NotFound("job not found")
	}
	if job.Status != model.JobStatusOpen {
		return apperrors.InvalidStatef("job is %s and no longer accepts bids", job.Status)
	}
	if job.CreatedBy == hustlerID {
		return apperrors.Forbidden("you cannot bid on your own job")
	}
	if job.HasApplicant(hustlerID) {
		return apperrors.Duplicate("You have already applied to this job.")
	}
	return nil
}

// CheckAccept validates accepting bid on job by actor. A nil bid, or one that
// belongs to another job, is reported as not found.
func CheckAccept(job *model.Job, bid *model.Bid, actor string) error {
	if err := checkOwnerAndBid(job, bid, actor); err != nil {
		return err
	}
	if job.Status.Terminal() {
		return apperrors.InvalidStatef("job is %s", job.Status)
	}
	if bid.Status == model.BidStatusAccepted {
		return apperrors.InvalidState("bid has already been accepted")
	}
	if job.Status == model.JobStatusInProgress {
		return apperrors.Conflict("job has already been assigned")
	}
	if bid.Status != model.BidStatusPending {
		return apperrors.InvalidStatef("bid is %s", bid.Status)
	}
	return nil
}

// CheckReject validates a direct rejection of bid on job by actor.
func CheckReject(job *model.Job, bid *model.Bid, actor string) error {
	if err := checkOwnerAndBid(job, bid, actor); err != nil {
		return err
	}
	if job.Status.Terminal() {
		return apperrors.InvalidStatef("job is %s", job.Status)
	}
	if bid.Status != model.BidStatusPending {
		return apperrors.InvalidStatef("bid is %s", bid.Status)
	}
	return nil
}

// CheckCancel validates the owner cancelling an open job.
func CheckCancel(job *model.Job, actor string) error {
	if job == nil {
		return apperrors.NotFound("job not found")
	}
	if job.CreatedBy != actor {
		return apperrors.Forbidden("only the job owner can cancel this job")
	}
	if job.Status != model.JobStatusOpen {
		return apperrors.InvalidStatef("job is %s and can no longer be cancelled", job.Status)
	}
	return nil
}

// CheckReview validates the owner finalizing job with a review.
func CheckReview(job *model.Job, actor string) error {
	if job == nil {
		return apperrors.NotFound("job not found")
	}
	if job.CreatedBy != actor {
		return apperrors.Forbidden("only the job owner can review this job")
	}
	if job.IsReviewed {
		return apperrors.Duplicate("This job has already been reviewed.")
	}
	if job.Status != model.JobStatusInProgress {
		return apperrors.InvalidStatef("job is %s and cannot be reviewed", job.Status)
	}
	if job.AssignedTo == nil {
		return apperrors.InvalidState("job has no assigned hustler")
	}
	return nil
}

// CanMessage reports whether userID may chat on job right now.
func CanMessage(job *model.Job, userID string) bool {
	if job == nil || job.Status != model.JobStatusInProgress {
		return false
	}
	return job.IsParticipant(userID)
}

// CanViewBid reports whether actor may read bid on job.
func CanViewBid(job *model.Job, bid *model.Bid, actor string) bool {
	if bid == nil {
		return false
	}
	if bid.HustlerID == actor {
		return true
	}
	return job != nil && job.CreatedBy == actor
}

func checkOwnerAndBid(job *model.Job, bid *model.Bid, actor string) error {
	if job == nil {
		return apperrors.NotFound("job not found")
	}
	if job.CreatedBy != actor {
		return apperrors.Forbidden("only the job owner can manage bids on this job")
	}
	if bid == nil || bid.JobID != job.ID {
		return apperrors.NotFound("bid not found")
	}
	return nil
}
