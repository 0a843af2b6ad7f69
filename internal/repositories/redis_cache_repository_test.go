package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCacheRepository(t *testing.T) (CacheRepositoryInterface, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisCacheRepository(client), mr
}

func TestRedisCacheRepository_SetGet(t *testing.T) {
	repo, _ := newTestCacheRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "cle", "valeur", time.Minute))

	got, err := repo.Get(ctx, "cle")
	require.NoError(t, err)
	assert.Equal(t, "valeur", got)
}

func TestRedisCacheRepository_Expiration(t *testing.T) {
	repo, mr := newTestCacheRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "cle", "valeur", time.Second))

	mr.FastForward(2 * time.Second)

	_, err := repo.Get(ctx, "cle")
	assert.Error(t, err)
}

func TestRedisCacheRepository_ExistsAndDel(t *testing.T) {
	repo, _ := newTestCacheRepository(t)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "absente")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Set(ctx, "cle", "1", time.Minute))

	exists, err = repo.Exists(ctx, "cle")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Del(ctx, "cle"))

	exists, err = repo.Exists(ctx, "cle")
	require.NoError(t, err)
	assert.False(t, exists)
}
