package marketplace

import (
	"errors"
	"time"

	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// DefaultWithdrawWindow is how long after placement a pending bid may be withdrawn.
const DefaultWithdrawWindow = 24 * time.Hour

// ErrInvalidWithdrawWindow indicates the configured withdraw window is not positive.
var ErrInvalidWithdrawWindow = errors.New("withdraw window must be positive")

// WithdrawPolicy decides whether an applicant may still pull a bid back.
type WithdrawPolicy struct {
	window time.Duration
}

// NewWithdrawPolicy constructs a WithdrawPolicy with the provided window.
func NewWithdrawPolicy(window time.Duration) (*WithdrawPolicy, error) {
	if window <= 0 {
		return nil, ErrInvalidWithdrawWindow
	}
	return &WithdrawPolicy{window: window}, nil
}

// Window returns the configured window, falling back to the default on a nil policy.
func (p *WithdrawPolicy) Window() time.Duration {
	if p == nil {
		return DefaultWithdrawWindow
	}
	return p.window
}

// Check validates a withdraw request by actor at now. The window is inclusive:
// a bid exactly Window old can still be withdrawn.
func (p *WithdrawPolicy) Check(bid *model.Bid, actor string, now time.Time) error {
	if bid == nil {
		return apperrors.NotFound("bid not found")
	}
	if bid.HustlerID != actor {
		return apperrors.Forbidden("only the applicant can withdraw this bid")
	}
	if bid.Status != model.BidStatusPending {
		return apperrors.InvalidStatef("bid is %s and can no longer be withdrawn", bid.Status)
	}
	if !bid.CanBeWithdrawn(now, p.Window()) {
		return apperrors.InvalidState("withdraw window has passed")
	}
	return nil
}
