package core_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/data/memstore"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	"github.com/hustlehub/hustle-api/internal/mocks"
)

func sampleJob() *model.Job {
	return &model.Job{
		ID:           "6b0f3a3e-0c59-4a51-9d8e-6d0d9e1d7a10",
		Title:        "Paint fence",
		Status:       model.JobStatusOpen,
		CreatedBy:    "giver-1",
		Bids:         []string{"bid-1"},
		ApplicantIDs: []string{"hustler-1"},
	}
}

func TestJobCacheService_ReadThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := mocks.NewMockJobRepository(ctrl)
	job := sampleJob()

	jobs.EXPECT().GetByID(gomock.Any(), job.ID).Return(job, nil).Times(1)

	svc := core.NewJobCacheService(core.JobCacheServiceOptions{
		Cache: memstore.NewCache(nil),
		Jobs:  jobs,
	})

	first, err := svc.GetJob(context.Background(), job.ID)
	require.NoError(t, err)
	second, err := svc.GetJob(context.Background(), job.ID)
	require.NoError(t, err)

	assert.Equal(t, job.Title, second.Title)
	assert.Equal(t, first.Bids, second.Bids)
	assert.True(t, second.HasApplicant("hustler-1"), "applicant ids must survive the cache round trip")
}

func TestJobCacheService_InvalidateForcesReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := mocks.NewMockJobRepository(ctrl)
	job := sampleJob()
	assigned := "hustler-1"
	updated := sampleJob()
	updated.Status = model.JobStatusInProgress
	updated.AssignedTo = &assigned

	gomock.InOrder(
		jobs.EXPECT().GetByID(gomock.Any(), job.ID).Return(job, nil),
		jobs.EXPECT().GetByID(gomock.Any(), job.ID).Return(updated, nil),
	)

	svc := core.NewJobCacheService(core.JobCacheServiceOptions{
		Cache:  memstore.NewCache(nil),
		Jobs:   jobs,
		Config: core.JobCacheConfig{TTL: time.Minute},
	})
	ctx := context.Background()

	_, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	svc.Invalidate(ctx, job.ID, "")

	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusInProgress, got.Status)
}

func TestJobCacheService_CacheFailureFallsBackToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCacheRepository(ctrl)
	jobs := mocks.NewMockJobRepository(ctrl)
	job := sampleJob()

	cache.EXPECT().Get(gomock.Any(), "job:detail:"+job.ID).Return(nil, errors.New("redis down"))
	jobs.EXPECT().GetByID(gomock.Any(), job.ID).Return(job, nil)
	cache.EXPECT().Set(gomock.Any(), "job:detail:"+job.ID, gomock.Any(), core.DefaultJobCacheConfig().TTL).
		Return(errors.New("redis down"))

	svc := core.NewJobCacheService(core.JobCacheServiceOptions{Cache: cache, Jobs: jobs})

	got, err := svc.GetJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
}

func TestJobCacheService_RepositoryErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := mocks.NewMockJobRepository(ctrl)
	notFound := errors.New("job not found")
	jobs.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, notFound)

	svc := core.NewJobCacheService(core.JobCacheServiceOptions{Cache: memstore.NewCache(nil), Jobs: jobs})

	_, err := svc.GetJob(context.Background(), "missing")
	assert.ErrorIs(t, err, notFound)
}

func TestJobCacheService_NilCacheReadsRepository(t *testing.T) {
	store := memstore.New(memstore.Options{})
	ctx := context.Background()
	req := &model.CreateJobRequest{Title: "Tutor", JobType: "tutoring"}
	created, err := store.Jobs().Create(ctx, req, "giver-1")
	require.NoError(t, err)

	svc := core.NewJobCacheService(core.JobCacheServiceOptions{Jobs: store.Jobs()})
	svc.Invalidate(ctx, created.ID)

	got, err := svc.GetJob(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tutor", got.Title)
}
