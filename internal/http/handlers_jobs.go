// Package httpx provides the HTTP handlers, middleware and router of the marketplace API.
package httpx

import (
	"log/slog"
	"net/http"

	"github.com/hustlehub/hustle-api/internal/domain/model"
	"github.com/hustlehub/hustle-api/internal/service"
)

// JobHandlers provides HTTP handlers for job postings.
type JobHandlers struct {
	Svc         *service.JobService
	Assignments *service.AssignmentService
	Logger      *slog.Logger
}

// CreateJob posts a job owned by the caller.
// POST /api/jobs.
func (h *JobHandlers) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Create(r.Context(), &req, ActorFromContext(r.Context()).ID)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, job)
}

// ListJobs lists jobs for the (possibly anonymous) caller.
// GET /api/jobs.
func (h *JobHandlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	opts, err := ParseJobListOptions(r.URL.Query())
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}

	page, err := h.Svc.List(r.Context(), opts, ActorFromContext(r.Context()).ID)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// GetJob returns one job.
// GET /api/jobs/{id}.
func (h *JobHandlers) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// CancelJob withdraws an open posting.
// POST /api/jobs/{id}/cancel.
func (h *JobHandlers) CancelJob(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.Assignments.Cancel(r.Context(), id, ActorFromContext(r.Context()).ID)
	if err != nil {
		WriteServiceError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, res.Job)
}
