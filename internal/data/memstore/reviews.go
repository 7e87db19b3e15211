package memstore

import (
	"context"
	"slices"
	"strings"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/domain/marketplace"
	"github.com/hustlehub/hustle-api/internal/domain/model"
)

// ReviewRepo implements core.ReviewRepository.
type ReviewRepo struct{ s *Store }

var _ core.ReviewRepository = (*ReviewRepo)(nil)

// Finalize records the review, completes the job, purges its chat and
// recomputes the hustler's rating.
func (r *ReviewRepo) Finalize(_ context.Context, params core.FinalizeParams) (*core.FinalizeResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	job := r.s.jobs[params.JobID]
	if err := marketplace.CheckReview(job, params.Actor); err != nil {
		return nil, err
	}

	now := r.s.clock.Now()
	review := &model.Review{
		ID:         newID(),
		JobID:      job.ID,
		JobGiverID: job.CreatedBy,
		HustlerID:  *job.AssignedTo,
		Rating:     params.Rating,
		Comment:    params.Comment,
		CreatedAt:  now,
	}
	r.s.reviews[job.ID] = review
	r.s.reviewOrder = append(r.s.reviewOrder, job.ID)

	job.Status = model.JobStatusCompleted
	job.IsReviewed = true
	job.UpdatedAt = now

	purged := len(r.s.messages[job.ID])
	delete(r.s.messages, job.ID)

	profile := r.s.recomputeRatingLocked(review.HustlerID)

	copied := *review
	return &core.FinalizeResult{
		Review:         &copied,
		Job:            cloneJob(job),
		Profile:        profile,
		MessagesPurged: purged,
	}, nil
}

// ListByHustler returns the reviews a hustler received, newest first.
func (r *ReviewRepo) ListByHustler(_ context.Context, hustlerID string, limit, offset int) ([]*model.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	matched := []*model.Review{}
	for _, jobID := range r.s.reviewOrder {
		if rv := r.s.reviews[jobID]; rv.HustlerID == hustlerID {
			copied := *rv
			matched = append(matched, &copied)
		}
	}
	slices.SortStableFunc(matched, func(a, b *model.Review) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return page(matched, limit, offset), nil
}

// recomputeRatingLocked sets the hustler's average and count from all of
// their reviews. Callers hold s.mu.
func (s *Store) recomputeRatingLocked(hustlerID string) *model.Profile {
	var sum, count int
	for _, rv := range s.reviews {
		if rv.HustlerID == hustlerID {
			sum += rv.Rating
			count++
		}
	}
	p, ok := s.profiles[hustlerID]
	if !ok {
		p = &model.Profile{UserID: hustlerID, Role: "hustler", Skills: []string{}}
		s.profiles[hustlerID] = p
	}
	p.ReviewCount = count
	p.AverageRating = 0
	if count > 0 {
		p.AverageRating = float64(sum) / float64(count)
	}
	return cloneProfile(p)
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
