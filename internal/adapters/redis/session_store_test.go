package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/hustlehub/hustle-api/internal/domain/auth"
	"github.com/hustlehub/hustle-api/internal/ports"
	"github.com/hustlehub/hustle-api/internal/testutil"
)

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	session := domainauth.Session{
		ID:          "test-session-1",
		UserID:      "hustler-1",
		DisplayName: "Rafi",
		Role:        domainauth.RoleHustler,
		ExpiresAt:   time.Now().Add(30 * time.Minute),
	}
	require.NoError(t, store.Save(ctx, session))

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.UserID, retrieved.UserID)
	assert.Equal(t, session.Role, retrieved.Role)
	assert.WithinDuration(t, session.ExpiresAt, retrieved.ExpiresAt, time.Second)

	ttl := client.TTL(ctx, DefaultSessionPrefix+"test-session-1").Val()
	assert.True(t, ttl > 0 && ttl <= 30*time.Minute, "ttl = %v", ttl)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	store := NewSessionStore(testutil.SetupTestRedis(t))

	_, err := store.Get(context.Background(), "non-existent")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStoreWithPrefix(testutil.SetupTestRedis(t), "test:session:")
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "to-delete",
		UserID:    "giver-1",
		Role:      domainauth.RoleJobGiver,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, session.ID))
	require.NoError(t, store.Delete(ctx, ""))

	_, err := store.Get(ctx, session.ID)
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_ExpiredSessions(t *testing.T) {
	store := NewSessionStore(testutil.SetupTestRedis(t))
	ctx := context.Background()

	err := store.Save(ctx, domainauth.Session{ID: "old", UserID: "u", ExpiresAt: time.Now().Add(-time.Minute)})
	require.Error(t, err)

	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "skewed", UserID: "u", ExpiresAt: time.Now().Add(time.Hour)}))
	store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = store.Get(ctx, "skewed")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}
