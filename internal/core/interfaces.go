// Package core defines the ports between the marketplace services and their
// storage and transport adapters.
package core

import (
	"context"
	"time"

	"github.com/hustlehub/hustle-api/internal/domain/model"
)

// Repository ports. Lifecycle writes (place, withdraw, accept, reject, cancel,
// finalize) are single atomic operations: implementations lock the rows they
// read, apply the rules in internal/domain/marketplace, and commit or roll back
// as a unit.

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	Create(ctx context.Context, req *model.CreateJobRequest, owner string) (*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context, opts *model.JobListOptions) (*model.JobListResult, error)
	// ListActiveForUser returns in-progress jobs where userID is the owner or the assignee.
	ListActiveForUser(ctx context.Context, userID string) ([]*model.Job, error)
}

// PlaceBidParams groups parameters for BidRepository.Place.
type PlaceBidParams struct {
	JobID     string
	HustlerID string
	Price     float64
	Notes     string
}

// PlaceBidResult is the outcome of a bid placement.
type PlaceBidResult struct {
	Bid *model.Bid
	Job *model.Job
}

// WithdrawBidParams groups parameters for BidRepository.Withdraw.
type WithdrawBidParams struct {
	BidID  string
	Actor  string
	Policy WithdrawChecker
}

// WithdrawChecker decides whether a locked bid may be withdrawn now.
type WithdrawChecker interface {
	Check(bid *model.Bid, actor string, now time.Time) error
}

// BidTransition describes one compare-and-swap status change of a bid.
// Repositories apply it inside their lifecycle transactions only.
type BidTransition struct {
	BidID  string
	From   model.BidStatus
	To     model.BidStatus
	Actor  string
	Reason string
}

// BidRepository defines the interface for bid data operations.
type BidRepository interface {
	Place(ctx context.Context, params PlaceBidParams) (*PlaceBidResult, error)
	GetByID(ctx context.Context, id string) (*model.Bid, error)
	ListByJob(ctx context.Context, jobID string) ([]*model.Bid, error)
	ListByHustler(ctx context.Context, hustlerID string) ([]*model.Bid, error)
	Withdraw(ctx context.Context, params WithdrawBidParams) (*model.Bid, error)
}

// AssignmentParams identifies a bid on a job acted on by the job owner.
type AssignmentParams struct {
	JobID string
	BidID string
	Actor string
}

// AcceptResult is the outcome of accepting a bid.
type AcceptResult struct {
	Job      *model.Job `json:"job"`
	Accepted *model.Bid `json:"accepted"`
	// Rejected holds the bids demoted by the cascade.
	Rejected []*model.Bid `json:"rejected"`
}

// RejectResult is the outcome of a direct rejection.
type RejectResult struct {
	Job *model.Job `json:"job"`
	Bid *model.Bid `json:"bid"`
}

// CancelResult is the outcome of cancelling a job.
type CancelResult struct {
	Job      *model.Job   `json:"job"`
	Rejected []*model.Bid `json:"rejected"`
}

// AssignmentRepository performs the multi-record assignment transitions.
type AssignmentRepository interface {
	Accept(ctx context.Context, params AssignmentParams) (*AcceptResult, error)
	Reject(ctx context.Context, params AssignmentParams) (*RejectResult, error)
	Cancel(ctx context.Context, jobID, actor string) (*CancelResult, error)
}

// FinalizeParams groups parameters for ReviewRepository.Finalize.
type FinalizeParams struct {
	JobID   string
	Actor   string
	Rating  int
	Comment string
}

// FinalizeResult is the outcome of a review submission.
type FinalizeResult struct {
	Review  *model.Review  `json:"review"`
	Job     *model.Job     `json:"job"`
	Profile *model.Profile `json:"profile"`
	// MessagesPurged counts chat messages deleted with the job's completion.
	MessagesPurged int `json:"messages_purged"`
}

// ReviewRepository defines the interface for review data operations.
type ReviewRepository interface {
	// Finalize records the review, completes the job, purges its chat and
	// recomputes the hustler's rating in one atomic unit.
	Finalize(ctx context.Context, params FinalizeParams) (*FinalizeResult, error)
	ListByHustler(ctx context.Context, hustlerID string, limit, offset int) ([]*model.Review, error)
}

// NotificationRepository defines the interface for notification data operations.
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)
	GetByID(ctx context.Context, id string) (*model.Notification, error)
	List(ctx context.Context, opts model.NotificationListOptions) ([]*model.Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)
	MarkRead(ctx context.Context, id string) (bool, error)
}

// MessageRepository defines the interface for chat message operations.
type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) (*model.Message, error)
	ListByJob(ctx context.Context, jobID string, limit, offset int) ([]*model.Message, error)
}

// ProfileRepository is the marketplace's view of the profile store.
type ProfileRepository interface {
	GetByID(ctx context.Context, userID string) (*model.Profile, error)
	Upsert(ctx context.Context, p *model.Profile) error
}

// LocationValidator checks a division/district/upazila triple against the reference dataset.
type LocationValidator interface {
	IsValid(division, district, upazila string) bool
}

// Channel publishes advisory realtime events by topic.
type Channel interface {
	Publish(ctx context.Context, topic string, event model.RealtimeEvent) error
}
