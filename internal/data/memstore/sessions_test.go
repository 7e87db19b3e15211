package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/hustlehub/hustle-api/internal/domain/auth"
	"github.com/hustlehub/hustle-api/internal/ports"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func TestSessions_ExpireLazily(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	store := NewSessions(clock)

	sess := domainauth.Session{ID: "tok", UserID: "giver-1", Role: domainauth.RoleJobGiver, ExpiresAt: clock.t.Add(time.Hour)}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "giver-1", got.UserID)

	clock.t = clock.t.Add(time.Hour)
	_, err = store.Get(ctx, "tok")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessions_SaveRejects(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	store := NewSessions(clock)

	require.Error(t, store.Save(ctx, domainauth.Session{ExpiresAt: clock.t.Add(time.Hour)}))
	require.Error(t, store.Save(ctx, domainauth.Session{ID: "old", ExpiresAt: clock.t}))
	require.NoError(t, store.Delete(ctx, "missing"))
}

func TestCache_TTL(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	cache := NewCache(clock)

	require.NoError(t, cache.Set(ctx, "job:1", []byte("v1"), time.Minute))
	got, err := cache.Get(ctx, "job:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	clock.t = clock.t.Add(2 * time.Minute)
	got, err = cache.Get(ctx, "job:1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
