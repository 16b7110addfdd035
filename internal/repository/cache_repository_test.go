package repository_test

import (
	"bookstore-server/config"
	"bookstore-server/internal/model"
	"bookstore-server/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCacheRepo(t *testing.T) (*repository.CacheRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return repository.NewCacheRepository(&config.RedisClient{Client: client}, 10*time.Minute), mr
}

// 1. jti в denylist виден до истечения ttl и исчезает после
func TestBlacklistRefreshJTI_TTL(t *testing.T) {
	repo, mr := newTestCacheRepo(t)
	ctx := context.Background()

	err := repo.BlacklistRefreshJTI(ctx, "jti-1", 30*time.Minute)
	require.NoError(t, err)

	blacklisted, err := repo.IsRefreshJTIBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	mr.FastForward(31 * time.Minute)

	blacklisted, err = repo.IsRefreshJTIBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

// 2. Неизвестный jti не в denylist
func TestIsRefreshJTIBlacklisted_Miss(t *testing.T) {
	repo, _ := newTestCacheRepo(t)

	blacklisted, err := repo.IsRefreshJTIBlacklisted(context.Background(), "unknown")

	assert.NoError(t, err)
	assert.False(t, blacklisted)
}

// 3. Просроченный токен в denylist не пишется
func TestBlacklistRefreshJTI_NonPositiveTTL(t *testing.T) {
	repo, mr := newTestCacheRepo(t)

	err := repo.BlacklistRefreshJTI(context.Background(), "jti-1", -time.Minute)

	assert.NoError(t, err)
	assert.False(t, mr.Exists("revoked_jti:jti-1"))
}

// 4. Недоступный Redis даёт ошибку, а не ложное «не в denylist»
func TestIsRefreshJTIBlacklisted_RedisDown(t *testing.T) {
	repo, mr := newTestCacheRepo(t)
	mr.Close()

	_, err := repo.IsRefreshJTIBlacklisted(context.Background(), "jti-1")

	assert.Error(t, err)
}

// 5. Карточка книги: запись, чтение, инвалидация
func TestBookCache_RoundTrip(t *testing.T) {
	repo, _ := newTestCacheRepo(t)
	ctx := context.Background()

	book := &model.Book{UUID: "b1", Title: "Мастер и Маргарита", Author: "М. Булгаков", Price: 750, Stock: 12}

	require.NoError(t, repo.SetBook(ctx, book))

	cached, err := repo.GetBook(ctx, "b1")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, book.Title, cached.Title)
	assert.Equal(t, book.Price, cached.Price)

	require.NoError(t, repo.DeleteBook(ctx, "b1"))

	cached, err = repo.GetBook(ctx, "b1")
	require.NoError(t, err)
	assert.Nil(t, cached)
}

// 6. Промах кэша — (nil, nil)
func TestGetBook_Miss(t *testing.T) {
	repo, _ := newTestCacheRepo(t)

	book, err := repo.GetBook(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, book)
}
