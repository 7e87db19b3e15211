package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

func TestBid_Transition(t *testing.T) {
	placed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	bid := &Bid{
		ID:          "b1",
		HustlerID:   "h1",
		CanWithdraw: true,
		CreatedAt:   placed,
	}
	bid.Transition(BidStatusPending, "h1", ReasonInitialApplication, placed)
	assert.True(t, bid.CanWithdraw)
	assert.Equal(t, 1, bid.StatusHistory.Len())

	bid.Transition(BidStatusWithdrawn, "h1", ReasonWithdrawn, placed.Add(time.Hour))
	assert.False(t, bid.CanWithdraw)
	assert.Equal(t, placed.Add(time.Hour), bid.LastStatusChange)
	require.Equal(t, 2, bid.StatusHistory.Len())

	last, ok := bid.StatusHistory.Last()
	require.True(t, ok)
	assert.Equal(t, bid.Status, last.Status)
	assert.Equal(t, ReasonWithdrawn, last.Reason)
}

func TestBid_CanBeWithdrawn(t *testing.T) {
	placed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	bid := &Bid{Status: BidStatusPending, CanWithdraw: true, CreatedAt: placed}

	assert.True(t, bid.CanBeWithdrawn(placed.Add(24*time.Hour), 24*time.Hour))
	assert.False(t, bid.CanBeWithdrawn(placed.Add(24*time.Hour+time.Nanosecond), 24*time.Hour))

	bid.CanWithdraw = false
	assert.False(t, bid.CanBeWithdrawn(placed, 24*time.Hour))
}

func TestStatusHistory_EntriesAreCopies(t *testing.T) {
	h := NewStatusHistory(StatusChange{Status: BidStatusPending, Actor: "h1"})
	entries := h.Entries()
	entries[0].Status = BidStatusAccepted

	first, _ := h.Last()
	assert.Equal(t, BidStatusPending, first.Status)
}

func TestStatusHistory_JSON(t *testing.T) {
	var empty StatusHistory
	b, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))

	h := NewStatusHistory(StatusChange{Status: BidStatusPending, Actor: "h1", Reason: ReasonInitialApplication})
	b, err = json.Marshal(h)
	require.NoError(t, err)

	var decoded StatusHistory
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, h.Entries(), decoded.Entries())
}

func TestPlaceBidRequest_Validate(t *testing.T) {
	assert.NoError(t, (&PlaceBidRequest{Price: 500}).Validate())

	err := (&PlaceBidRequest{Price: 0}).Validate()
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "price", apperrors.GetField(err))
}

func TestSubmitReviewRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SubmitReviewRequest{Rating: 5, Comment: "Great"}).Validate())
	assert.True(t, apperrors.IsValidation((&SubmitReviewRequest{Rating: 0}).Validate()))
	assert.True(t, apperrors.IsValidation((&SubmitReviewRequest{Rating: 6}).Validate()))
}
