package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/domain/marketplace"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// JobRepo implements core.JobRepository.
type JobRepo struct{ s *Store }

var _ core.JobRepository = (*JobRepo)(nil)

// Create stores a new open job owned by owner.
func (r *JobRepo) Create(_ context.Context, req *model.CreateJobRequest, owner string) (*model.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.clock.Now()
	job := &model.Job{
		ID:             newID(),
		Title:          req.Title,
		Description:    req.Description,
		JobType:        req.JobType,
		Location:       req.Location,
		Schedule:       req.Schedule,
		Payment:        req.Payment,
		HiringType:     req.HiringType,
		SkillsRequired: append([]string{}, req.SkillsRequired...),
		Status:         model.JobStatusOpen,
		CreatedBy:      owner,
		Bids:           []string{},
		ApplicantIDs:   []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	r.s.jobs[job.ID] = job
	r.s.jobOrder = append(r.s.jobOrder, job.ID)
	return cloneJob(job), nil
}

// GetByID returns a job by id.
func (r *JobRepo) GetByID(_ context.Context, id string) (*model.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	job, ok := r.s.jobs[id]
	if !ok {
		return nil, apperrors.NotFound("job not found")
	}
	return cloneJob(job), nil
}

// List filters, sorts and pages jobs.
func (r *JobRepo) List(_ context.Context, opts *model.JobListOptions) (*model.JobListResult, error) {
	if opts == nil {
		opts = &model.JobListOptions{}
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	matched := make([]*model.Job, 0, len(r.s.jobOrder))
	for _, id := range r.s.jobOrder {
		if job := r.s.jobs[id]; matchesFilters(job, opts.Filters) {
			matched = append(matched, job)
		}
	}
	slices.SortStableFunc(matched, jobComparator(opts.Sort))

	result := &model.JobListResult{Total: len(matched), Jobs: []*model.Job{}}
	start := min(opts.Offset(), len(matched))
	end := len(matched)
	if opts.Limit > 0 {
		end = min(start+opts.Limit, len(matched))
	}
	for _, job := range matched[start:end] {
		result.Jobs = append(result.Jobs, cloneJob(job))
	}
	return result, nil
}

// ListActiveForUser returns in-progress jobs where userID is a participant.
func (r *JobRepo) ListActiveForUser(_ context.Context, userID string) ([]*model.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*model.Job{}
	for _, id := range r.s.jobOrder {
		job := r.s.jobs[id]
		if job.Status == model.JobStatusInProgress && job.IsParticipant(userID) {
			out = append(out, cloneJob(job))
		}
	}
	slices.SortStableFunc(out, func(a, b *model.Job) int { return b.UpdatedAt.Compare(a.UpdatedAt) })
	return out, nil
}

func matchesFilters(job *model.Job, f model.JobFilters) bool {
	status := model.JobStatusOpen
	if f.Status != nil && *f.Status != "" {
		status = *f.Status
	}
	if job.Status != status {
		return false
	}
	eq := func(want *string, got string) bool { return want == nil || *want == "" || *want == got }
	if !eq(f.JobType, job.JobType) ||
		!eq(f.Division, job.Location.Division) ||
		!eq(f.District, job.Location.District) ||
		!eq(f.Upazila, job.Location.Upazila) ||
		!eq(f.CreatedBy, job.CreatedBy) {
		return false
	}
	if f.HiringType != nil && *f.HiringType != "" && *f.HiringType != job.HiringType {
		return false
	}
	if f.PaymentMethod != nil && *f.PaymentMethod != "" && *f.PaymentMethod != job.Payment.Method {
		return false
	}
	pay := job.Payment.Value()
	if f.MinPay != nil && pay < *f.MinPay {
		return false
	}
	if f.MaxPay != nil && pay > *f.MaxPay {
		return false
	}
	if f.Search != nil && *f.Search != "" {
		needle := strings.ToLower(*f.Search)
		if !strings.Contains(strings.ToLower(job.Title), needle) &&
			!strings.Contains(strings.ToLower(job.Description), needle) {
			return false
		}
	}
	return true
}

func jobComparator(sort model.JobSort) func(a, b *model.Job) int {
	newest := func(a, b *model.Job) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	}
	switch sort {
	case model.JobSortOldest:
		return func(a, b *model.Job) int { return newest(b, a) }
	case model.JobSortPayHigh:
		return func(a, b *model.Job) int {
			return cmp.Or(cmp.Compare(b.Payment.Value(), a.Payment.Value()), newest(a, b))
		}
	case model.JobSortPayLow:
		return func(a, b *model.Job) int {
			return cmp.Or(cmp.Compare(a.Payment.Value(), b.Payment.Value()), newest(a, b))
		}
	case model.JobSortSoonest:
		return func(a, b *model.Job) int {
			return cmp.Or(
				marketplace.StartsAt(a.Schedule).Compare(marketplace.StartsAt(b.Schedule)),
				cmp.Compare(a.ID, b.ID),
			)
		}
	default:
		return newest
	}
}
