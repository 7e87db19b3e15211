package marketplace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

func TestNewWithdrawPolicy(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		policy, err := NewWithdrawPolicy(time.Hour)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, policy.Window())
	})

	t.Run("invalid window", func(t *testing.T) {
		policy, err := NewWithdrawPolicy(0)
		require.ErrorIs(t, err, ErrInvalidWithdrawWindow)
		assert.Nil(t, policy)
	})

	t.Run("nil policy uses default", func(t *testing.T) {
		var policy *WithdrawPolicy
		assert.Equal(t, DefaultWithdrawWindow, policy.Window())
	})
}

func TestWithdrawPolicy_Check(t *testing.T) {
	policy, err := NewWithdrawPolicy(24 * time.Hour)
	require.NoError(t, err)

	placed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	newBid := func() *model.Bid {
		return &model.Bid{
			ID:          "b1",
			JobID:       "j1",
			HustlerID:   "h1",
			Status:      model.BidStatusPending,
			CanWithdraw: true,
			CreatedAt:   placed,
		}
	}

	t.Run("within window", func(t *testing.T) {
		require.NoError(t, policy.Check(newBid(), "h1", placed.Add(time.Hour)))
	})

	t.Run("exactly at window is allowed", func(t *testing.T) {
		require.NoError(t, policy.Check(newBid(), "h1", placed.Add(24*time.Hour)))
	})

	t.Run("past window", func(t *testing.T) {
		err := policy.Check(newBid(), "h1", placed.Add(24*time.Hour+time.Nanosecond))
		assert.True(t, apperrors.IsInvalidState(err))
	})

	t.Run("other actor", func(t *testing.T) {
		err := policy.Check(newBid(), "h2", placed)
		assert.True(t, apperrors.IsForbidden(err))
	})

	t.Run("not pending", func(t *testing.T) {
		bid := newBid()
		bid.Transition(model.BidStatusRejected, "owner", model.ReasonRejectedByOwner, placed)
		err := policy.Check(bid, "h1", placed)
		assert.True(t, apperrors.IsInvalidState(err))
	})

	t.Run("missing bid", func(t *testing.T) {
		assert.True(t, apperrors.IsNotFound(policy.Check(nil, "h1", placed)))
	})
}
