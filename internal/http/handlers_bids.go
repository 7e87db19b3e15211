package httpx

import (
	"log/slog"
	"net/http"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	"github.com/hustlehub/hustle-api/internal/service"
)

// BidHandlers provides HTTP handlers for bids and their lifecycle.
type BidHandlers struct {
	Svc         *service.BidService
	Assignments *service.AssignmentService
	Logger      *slog.Logger
}

// PlaceBid applies to a job.
// POST /api/jobs/{id}/bids.
func (h *BidHandlers) PlaceBid(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.PlaceBidRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	bid, err := h.Svc.Place(r.Context(), jobID, ActorFromContext(r.Context()).ID, &req)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, bid)
}

// ListBids lists the bids on a job visible to the caller.
// GET /api/jobs/{id}/bids.
func (h *BidHandlers) ListBids(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	bids, err := h.Svc.ListForJob(r.Context(), jobID, ActorFromContext(r.Context()).ID)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"bids": bids})
}

// GetBid returns one bid to its applicant or the job owner.
// GET /api/bids/{id}.
func (h *BidHandlers) GetBid(w http.ResponseWriter, r *http.Request) {
	bidID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	bid, err := h.Svc.Get(r.Context(), bidID, ActorFromContext(r.Context()).ID)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, bid)
}

// MyBids lists the caller's bids.
// GET /api/me/bids.
func (h *BidHandlers) MyBids(w http.ResponseWriter, r *http.Request) {
	bids, err := h.Svc.ListMine(r.Context(), ActorFromContext(r.Context()).ID)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"bids": bids})
}

// WithdrawBid pulls back the caller's pending bid.
// POST /api/bids/{id}/withdraw.
func (h *BidHandlers) WithdrawBid(w http.ResponseWriter, r *http.Request) {
	bidID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	bid, err := h.Svc.Withdraw(r.Context(), bidID, ActorFromContext(r.Context()).ID)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, bid)
}

// UpdateBidStatus routes a target status to accept, reject or withdraw.
// PATCH /api/bids/{id}/status.
func (h *BidHandlers) UpdateBidStatus(w http.ResponseWriter, r *http.Request) {
	bidID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.UpdateBidStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	bid, err := h.Assignments.UpdateBidStatus(r.Context(), service.UpdateBidStatusParams{
		BidID:  bidID,
		Status: req.Status,
		Actor:  ActorFromContext(r.Context()).ID,
	})
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, bid)
}

// AcceptBid assigns the job to the bid's hustler.
// POST /api/jobs/{id}/bids/{bidID}/accept.
func (h *BidHandlers) AcceptBid(w http.ResponseWriter, r *http.Request) {
	params, ok := assignmentParams(w, r)
	if !ok {
		return
	}

	res, err := h.Assignments.Accept(r.Context(), params)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

// RejectBid declines one pending bid.
// POST /api/jobs/{id}/bids/{bidID}/reject.
func (h *BidHandlers) RejectBid(w http.ResponseWriter, r *http.Request) {
	params, ok := assignmentParams(w, r)
	if !ok {
		return
	}

	res, err := h.Assignments.Reject(r.Context(), params)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

func assignmentParams(w http.ResponseWriter, r *http.Request) (core.AssignmentParams, bool) {
	jobID, ok := pathID(w, r, "id")
	if !ok {
		return core.AssignmentParams{}, false
	}
	bidID, ok := pathID(w, r, "bidID")
	if !ok {
		return core.AssignmentParams{}, false
	}
	return core.AssignmentParams{JobID: jobID, BidID: bidID, Actor: ActorFromContext(r.Context()).ID}, true
}
