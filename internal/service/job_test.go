package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hustlehub/hustle-api/internal/domain/marketplace"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
	"github.com/hustlehub/hustle-api/internal/mocks"
	"github.com/hustlehub/hustle-api/internal/testutil"
)

const validJobID = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"

func newJobServiceWithMocks(t *testing.T) (*JobService, *mocks.MockJobRepository, *mocks.MockLocationValidator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockJobRepository(ctrl)
	locs := mocks.NewMockLocationValidator(ctrl)
	svc := NewJobService(JobServiceOptions{Repo: repo, Locations: locs})
	return svc, repo, locs
}

func TestNewJobService_RequiresDeps(t *testing.T) {
	ctrl := gomock.NewController(t)
	assert.Panics(t, func() { NewJobService(JobServiceOptions{Locations: mocks.NewMockLocationValidator(ctrl)}) })
	assert.Panics(t, func() { NewJobService(JobServiceOptions{Repo: mocks.NewMockJobRepository(ctrl)}) })
}

func TestJobService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid request", func(t *testing.T) {
		svc, repo, locs := newJobServiceWithMocks(t)
		req := testutil.NewJobRequest().WithTitle("  Paint a room  ").Build()

		locs.EXPECT().IsValid("Dhaka", "Dhaka", "Dhanmondi").Return(true)
		repo.EXPECT().Create(ctx, req, "giver-1").
			DoAndReturn(func(_ context.Context, r *model.CreateJobRequest, owner string) (*model.Job, error) {
				return &model.Job{ID: validJobID, Title: r.Title, CreatedBy: owner, Status: model.JobStatusOpen}, nil
			})

		job, err := svc.Create(ctx, req, "giver-1")
		require.NoError(t, err)
		assert.Equal(t, "Paint a room", job.Title)
		assert.Equal(t, model.JobStatusOpen, job.Status)
	})

	t.Run("validation failure names the field", func(t *testing.T) {
		svc, _, _ := newJobServiceWithMocks(t)
		req := testutil.NewJobRequest().Build()
		req.Payment = model.Payment{Method: model.PaymentHourly, Platform: "nagad"}

		_, err := svc.Create(ctx, req, "giver-1")
		require.True(t, apperrors.IsValidation(err))
		assert.Equal(t, "payment.rate", apperrors.GetField(err))
	})

	t.Run("unknown location", func(t *testing.T) {
		svc, _, locs := newJobServiceWithMocks(t)
		req := testutil.NewJobRequest().WithLocation("Dhaka", "Sylhet", "Dhanmondi").Build()
		locs.EXPECT().IsValid("Dhaka", "Sylhet", "Dhanmondi").Return(false)

		_, err := svc.Create(ctx, req, "giver-1")
		require.True(t, apperrors.IsValidation(err))
		assert.Equal(t, "location", apperrors.GetField(err))
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		svc, repo, locs := newJobServiceWithMocks(t)
		locs.EXPECT().IsValid(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.Create(ctx, testutil.NewJobRequest().Build(), "giver-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create job")
	})
}

func TestJobService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		svc, _, _ := newJobServiceWithMocks(t)
		_, err := svc.Get(ctx, "not-a-uuid")
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, _ := newJobServiceWithMocks(t)
		repo.EXPECT().GetByID(ctx, validJobID).Return(nil, apperrors.NotFound("job not found"))
		_, err := svc.Get(ctx, validJobID)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestJobService_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("applies defaults and transforms", func(t *testing.T) {
		svc, repo, _ := newJobServiceWithMocks(t)
		svc.now = func() time.Time { return now }

		job := &model.Job{
			ID:           validJobID,
			Payment:      model.Payment{Method: model.PaymentHourly, Rate: 200, Platform: "bkash"},
			Schedule:     model.Schedule{Date: now.Add(24 * time.Hour), StartTime: "09:00", DurationMinutes: 120},
			Bids:         []string{"b1"},
			ApplicantIDs: []string{"hustler-1"},
		}
		repo.EXPECT().List(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, opts *model.JobListOptions) (*model.JobListResult, error) {
				require.NotNil(t, opts.Filters.Status)
				assert.Equal(t, model.JobStatusOpen, *opts.Filters.Status)
				assert.Equal(t, model.JobSortNewest, opts.Sort)
				assert.Equal(t, 1, opts.Page)
				assert.Equal(t, 10, opts.Limit)
				return &model.JobListResult{Jobs: []*model.Job{job}, Total: 21}, nil
			})

		page, err := svc.List(ctx, model.JobListOptions{}, "hustler-1")
		require.NoError(t, err)
		assert.Equal(t, 3, page.Pages)
		require.Len(t, page.Jobs, 1)
		listing := page.Jobs[0]
		assert.Equal(t, "BDT 200/hr", listing.StandardPayment.Display)
		assert.True(t, listing.UserHasApplied)
		assert.ElementsMatch(t, []string{
			marketplace.TagNoSkillNeeded,
			marketplace.TagStudentFriendly,
			marketplace.TagUrgent,
		}, listing.Tags)
	})

	t.Run("limit is capped", func(t *testing.T) {
		svc, repo, _ := newJobServiceWithMocks(t)
		repo.EXPECT().List(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, opts *model.JobListOptions) (*model.JobListResult, error) {
				assert.Equal(t, 50, opts.Limit)
				assert.Equal(t, 100, opts.Offset())
				return &model.JobListResult{}, nil
			})

		page, err := svc.List(ctx, model.JobListOptions{Page: 3, Limit: 500}, "")
		require.NoError(t, err)
		assert.Empty(t, page.Jobs)
		assert.Equal(t, 0, page.Pages)
	})

	t.Run("invalid sort", func(t *testing.T) {
		svc, _, _ := newJobServiceWithMocks(t)
		_, err := svc.List(ctx, model.JobListOptions{Sort: "random"}, "")
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("inverted pay range", func(t *testing.T) {
		svc, _, _ := newJobServiceWithMocks(t)
		lo, hi := 500.0, 100.0
		_, err := svc.List(ctx, model.JobListOptions{Filters: model.JobFilters{MinPay: &lo, MaxPay: &hi}}, "")
		assert.True(t, apperrors.IsValidation(err))
	})
}
