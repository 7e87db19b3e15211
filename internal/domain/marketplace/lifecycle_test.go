package marketplace

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

func strPtr(s string) *string { return &s }

func openJob() *model.Job {
	return &model.Job{
		ID:           "j1",
		CreatedBy:    "owner",
		Status:       model.JobStatusOpen,
		Bids:         []string{"b1", "b2"},
		ApplicantIDs: []string{"h1", "h2"},
	}
}

func pendingBid(id, hustler string) *model.Bid {
	return &model.Bid{ID: id, JobID: "j1", HustlerID: hustler, Status: model.BidStatusPending, CanWithdraw: true}
}

func TestCheckPlaceBid(t *testing.T) {
	tests := []struct {
		name    string
		job     func() *model.Job
		hustler string
		check   func(error) bool
	}{
		{"missing job", func() *model.Job { return nil }, "h3", apperrors.IsNotFound},
		{"own job", openJob, "owner", apperrors.IsForbidden},
		{"already applied", openJob, "h1", apperrors.IsDuplicate},
		{"job not open", func() *model.Job {
			j := openJob()
			j.Status = model.JobStatusInProgress
			return j
		}, "h3", apperrors.IsInvalidState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPlaceBid(tt.job(), tt.hustler)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}

	assert.NoError(t, CheckPlaceBid(openJob(), "h3"))
}

func TestCheckAccept(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		assert.NoError(t, CheckAccept(openJob(), pendingBid("b1", "h1"), "owner"))
	})

	t.Run("missing job", func(t *testing.T) {
		assert.True(t, apperrors.IsNotFound(CheckAccept(nil, pendingBid("b1", "h1"), "owner")))
	})

	t.Run("not owner", func(t *testing.T) {
		assert.True(t, apperrors.IsForbidden(CheckAccept(openJob(), pendingBid("b1", "h1"), "h1")))
	})

	t.Run("bid on another job", func(t *testing.T) {
		bid := pendingBid("b9", "h9")
		bid.JobID = "j2"
		assert.True(t, apperrors.IsNotFound(CheckAccept(openJob(), bid, "owner")))
	})

	t.Run("double accept is invalid state", func(t *testing.T) {
		job := openJob()
		job.Status = model.JobStatusInProgress
		job.AssignedTo = strPtr("h1")
		bid := pendingBid("b1", "h1")
		bid.Status = model.BidStatusAccepted
		assert.True(t, apperrors.IsInvalidState(CheckAccept(job, bid, "owner")))
	})

	t.Run("race loser is conflict", func(t *testing.T) {
		job := openJob()
		job.Status = model.JobStatusInProgress
		job.AssignedTo = strPtr("h1")
		assert.True(t, apperrors.IsConflict(CheckAccept(job, pendingBid("b2", "h2"), "owner")))
	})

	t.Run("completed job", func(t *testing.T) {
		job := openJob()
		job.Status = model.JobStatusCompleted
		job.AssignedTo = strPtr("h1")
		job.IsReviewed = true
		assert.True(t, apperrors.IsInvalidState(CheckAccept(job, pendingBid("b2", "h2"), "owner")))
	})

	t.Run("withdrawn bid", func(t *testing.T) {
		bid := pendingBid("b1", "h1")
		bid.Status = model.BidStatusWithdrawn
		assert.True(t, apperrors.IsInvalidState(CheckAccept(openJob(), bid, "owner")))
	})
}

func TestCheckReject(t *testing.T) {
	assert.NoError(t, CheckReject(openJob(), pendingBid("b1", "h1"), "owner"))
	assert.True(t, apperrors.IsForbidden(CheckReject(openJob(), pendingBid("b1", "h1"), "h2")))
	assert.True(t, apperrors.IsNotFound(CheckReject(openJob(), nil, "owner")))

	bid := pendingBid("b1", "h1")
	bid.Status = model.BidStatusRejected
	assert.True(t, apperrors.IsInvalidState(CheckReject(openJob(), bid, "owner")))

	job := openJob()
	job.Status = model.JobStatusCancelled
	assert.True(t, apperrors.IsInvalidState(CheckReject(job, pendingBid("b1", "h1"), "owner")))
}

func TestCheckCancel(t *testing.T) {
	assert.NoError(t, CheckCancel(openJob(), "owner"))
	assert.True(t, apperrors.IsNotFound(CheckCancel(nil, "owner")))
	assert.True(t, apperrors.IsForbidden(CheckCancel(openJob(), "h1")))

	job := openJob()
	job.Status = model.JobStatusInProgress
	job.AssignedTo = strPtr("h1")
	assert.True(t, apperrors.IsInvalidState(CheckCancel(job, "owner")))
}

func TestCheckReview(t *testing.T) {
	assigned := func() *model.Job {
		j := openJob()
		j.Status = model.JobStatusInProgress
		j.AssignedTo = strPtr("h1")
		return j
	}

	assert.NoError(t, CheckReview(assigned(), "owner"))
	assert.True(t, apperrors.IsNotFound(CheckReview(nil, "owner")))
	assert.True(t, apperrors.IsForbidden(CheckReview(assigned(), "h1")))
	assert.True(t, apperrors.IsInvalidState(CheckReview(openJob(), "owner")))

	reviewed := assigned()
	reviewed.Status = model.JobStatusCompleted
	reviewed.IsReviewed = true
	assert.True(t, apperrors.IsDuplicate(CheckReview(reviewed, "owner")))

	unassigned := assigned()
	unassigned.AssignedTo = nil
	assert.True(t, apperrors.IsInvalidState(CheckReview(unassigned, "owner")))
}

func TestCanMessage(t *testing.T) {
	job := openJob()
	assert.False(t, CanMessage(job, "owner"), "open job has no chat")

	job.Status = model.JobStatusInProgress
	job.AssignedTo = strPtr("h1")
	assert.True(t, CanMessage(job, "owner"))
	assert.True(t, CanMessage(job, "h1"))
	assert.False(t, CanMessage(job, "h2"))
	assert.False(t, CanMessage(job, ""))
	assert.False(t, CanMessage(nil, "owner"))

	job.Status = model.JobStatusCompleted
	assert.False(t, CanMessage(job, "h1"))
}
