package model

import (
	"encoding/json"
	"strings"
	"time"

	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// BidStatus represents the lifecycle status of a bid.
type BidStatus string

const (
	BidStatusPending   BidStatus = "pending"
	BidStatusAccepted  BidStatus = "accepted"
	BidStatusRejected  BidStatus = "rejected"
	BidStatusWithdrawn BidStatus = "withdrawn"
)

// Valid returns true if the BidStatus is valid.
func (s BidStatus) Valid() bool {
	switch s {
	case BidStatusPending, BidStatusAccepted, BidStatusRejected, BidStatusWithdrawn:
		return true
	}
	return false
}

// Reasons recorded in bid status history.
const (
	ReasonInitialApplication = "Initial application"
	ReasonAnotherSelected    = "Another applicant was selected"
	ReasonAccepted           = "Selected by job owner"
	ReasonRejectedByOwner    = "Rejected by job owner"
	ReasonWithdrawn          = "Withdrawn by applicant"
	ReasonJobCancelled       = "Job was cancelled"
)

// StatusChange is one entry of a bid's status history.
type StatusChange struct {
	Status    BidStatus `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Reason    string    `json:"reason"`
}

// StatusHistory is an append-only log of status changes. Entries can be read
// but never replaced or removed.
type StatusHistory struct {
	entries []StatusChange
}

// NewStatusHistory builds a history from persisted entries, oldest first.
func NewStatusHistory(entries ...StatusChange) StatusHistory {
	return StatusHistory{entries: append([]StatusChange(nil), entries...)}
}

// Append records a new status change.
func (h *StatusHistory) Append(c StatusChange) {
	h.entries = append(h.entries, c)
}

// Len returns the number of entries.
func (h StatusHistory) Len() int { return len(h.entries) }

// Entries returns a copy of the log, oldest first.
func (h StatusHistory) Entries() []StatusChange {
	return append([]StatusChange(nil), h.entries...)
}

// Last returns the most recent entry.
func (h StatusHistory) Last() (StatusChange, bool) {
	if len(h.entries) == 0 {
		return StatusChange{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// MarshalJSON renders the history as a plain array.
func (h StatusHistory) MarshalJSON() ([]byte, error) {
	if h.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(h.entries)
}

// UnmarshalJSON reads a plain array.
func (h *StatusHistory) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &h.entries)
}

// Bid represents a hustler's priced application to a job.
type Bid struct {
	ID               string        `json:"id"`
	JobID            string        `json:"job_id"`
	HustlerID        string        `json:"hustler_id"`
	Price            float64       `json:"price"`
	Notes            string        `json:"notes"`
	Status           BidStatus     `json:"status"`
	StatusHistory    StatusHistory `json:"status_history"`
	CanWithdraw      bool          `json:"can_withdraw"`
	CreatedAt        time.Time     `json:"created_at"`
	LastStatusChange time.Time     `json:"last_status_change"`
}

// CanBeWithdrawn reports whether the bid is still withdrawable at now. A bid
// exactly window old is still withdrawable.
func (b *Bid) CanBeWithdrawn(now time.Time, window time.Duration) bool {
	if b.Status != BidStatusPending || !b.CanWithdraw {
		return false
	}
	return now.Sub(b.CreatedAt) <= window
}

// Transition moves the bid to status and appends a history entry. Once the bid
// leaves pending, CanWithdraw is cleared and never set again.
func (b *Bid) Transition(status BidStatus, actor, reason string, at time.Time) {
	b.Status = status
	b.LastStatusChange = at
	if status != BidStatusPending {
		b.CanWithdraw = false
	}
	b.StatusHistory.Append(StatusChange{
		Status:    status,
		Timestamp: at,
		Actor:     actor,
		Reason:    reason,
	})
}

// PlaceBidRequest is the body of a bid placement.
type PlaceBidRequest struct {
	Price float64 `json:"price"`
	Notes string  `json:"notes,omitempty"`
}

const maxNotesLength = 2000

// Validate checks the bid request.
func (r *PlaceBidRequest) Validate() error {
	r.Notes = strings.TrimSpace(r.Notes)
	if r.Price <= 0 {
		return apperrors.ValidationField("price", "price must be positive")
	}
	if len(r.Notes) > maxNotesLength {
		return apperrors.ValidationField("notes", "notes are too long")
	}
	return nil
}

// UpdateBidStatusRequest is the body of the public bid status update.
type UpdateBidStatusRequest struct {
	Status BidStatus `json:"status"`
}
