package httpx

import (
	"log/slog"
	"net/http"

	"github.com/hustlehub/hustle-api/internal/domain/model"
	"github.com/hustlehub/hustle-api/internal/service"
)

// ReviewHandlers provides HTTP handlers for job reviews.
type ReviewHandlers struct {
	Svc    *service.ReviewService
	Logger *slog.Logger
}

// SubmitReview completes an in-progress job.
// POST /api/jobs/{id}/review.
func (h *ReviewHandlers) SubmitReview(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.SubmitReviewRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	res, err := h.Svc.Submit(r.Context(), jobID, ActorFromContext(r.Context()).ID, &req)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, res.Review)
}

// ListHustlerReviews lists the reviews a hustler has received.
// GET /api/hustlers/{id}/reviews.
func (h *ReviewHandlers) ListHustlerReviews(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	reviews, err := h.Svc.ListForHustler(r.Context(), r.PathValue("id"), limit, offset)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"reviews": reviews})
}
