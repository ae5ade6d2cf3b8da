package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/npapadam/openclaw-dashboard/internal/database"
	"github.com/npapadam/openclaw-dashboard/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	client, err := database.NewRedisClient(context.Background(), url)
	require.NoError(t, err, "Failed to connect to test redis")
	t.Cleanup(func() { client.Close() })
	return client
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	repo := NewRedisSessionRepository(getTestRedis(t))
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	session := &models.Session{
		ID:        uuid.New().String(),
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, session))
	t.Cleanup(func() { repo.Delete(ctx, session.ID) })

	got, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.True(t, session.ExpiresAt.Equal(got.ExpiresAt))
}

func TestSessionRepository_GetMissing(t *testing.T) {
	repo := NewRedisSessionRepository(getTestRedis(t))

	_, err := repo.GetByID(context.Background(), uuid.New().String())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepository_Delete(t *testing.T) {
	repo := NewRedisSessionRepository(getTestRedis(t))
	ctx := context.Background()

	session := &models.Session{
		ID:        uuid.New().String(),
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, session))

	require.NoError(t, repo.Delete(ctx, session.ID))

	_, err := repo.GetByID(ctx, session.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepository_ExpiredSessionRejected(t *testing.T) {
	repo := NewRedisSessionRepository(getTestRedis(t))

	session := &models.Session{
		ID:        uuid.New().String(),
		ExpiresAt: time.Now().Add(-time.Minute),
		CreatedAt: time.Now(),
	}
	err := repo.Create(context.Background(), session)

	require.Error(t, err, "a session that is already expired must not be stored")
}
