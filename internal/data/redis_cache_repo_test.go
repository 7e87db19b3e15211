package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/testutil"
)

func TestRedisCacheRepo_RoundTrip(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	repo := NewRedisCacheRepo(client, "test:cache:")
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, core.JobCacheKeyPrefix+"j1", []byte(`{"id":"j1"}`), time.Minute))

	got, err := repo.Get(ctx, core.JobCacheKeyPrefix+"j1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"j1"}`, string(got))

	ttl := client.TTL(ctx, "test:cache:"+core.JobCacheKeyPrefix+"j1").Val()
	assert.True(t, ttl > 0 && ttl <= time.Minute, "ttl = %v", ttl)

	existed, err := repo.Delete(ctx, core.JobCacheKeyPrefix+"j1")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = repo.Delete(ctx, core.JobCacheKeyPrefix+"j1")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestRedisCacheRepo_MissReturnsNil(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	repo := NewRedisCacheRepo(client, "test:cache:")

	got, err := repo.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, repo.Health(context.Background()))
}

func TestRedisCacheRepo_RejectsEmptyKey(t *testing.T) {
	repo := NewRedisCacheRepo(nil, "test:cache:")
	ctx := context.Background()

	require.Error(t, repo.Set(ctx, "", []byte("x"), time.Minute))
	_, err := repo.Get(ctx, "")
	require.Error(t, err)
	_, err = repo.Delete(ctx, "")
	require.Error(t, err)
}
