package repository

import (
	"bookstore-server/config"
	"bookstore-server/internal/model"
	"bookstore-server/internal/util"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type CacheRepository struct {
	client  *config.RedisClient
	bookTTL time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, bookTTL time.Duration) *CacheRepository {
	return &CacheRepository{rdb, bookTTL}
}

// BlacklistRefreshJTI кладёт jti в denylist на остаток жизни токена.
// После истечения ttl запись исчезает сама — дольше токен всё равно не живёт
func (r *CacheRepository) BlacklistRefreshJTI(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := r.client.Client.Set(ctx, r.revokedKey(jti), "1", ttl).Err(); err != nil {
		return util.Unavailable("ошибка записи denylist в Redis", err)
	}
	return nil
}

// IsRefreshJTIBlacklisted проверяет jti по denylist.
// Отсутствие записи не означает валидность токена, реестр остаётся источником истины
func (r *CacheRepository) IsRefreshJTIBlacklisted(ctx context.Context, jti string) (bool, error) {
	_, err := r.client.Client.Get(ctx, r.revokedKey(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	} else if err != nil {
		return false, util.Unavailable("ошибка чтения denylist из Redis", err)
	}
	return true, nil
}

// SetBook кэширует карточку книги
func (r *CacheRepository) SetBook(ctx context.Context, book *model.Book) error {
	data, err := json.Marshal(book)
	if err != nil {
		return util.LogError("ошибка сериализации книги", err)
	}

	if err := r.client.Client.Set(ctx, r.bookKey(book.UUID), data, r.bookTTL).Err(); err != nil {
		return util.LogError("ошибка сохранения книги в Redis", err)
	}

	return nil
}

// GetBook возвращает карточку книги из кэша, (nil, nil) при промахе
func (r *CacheRepository) GetBook(ctx context.Context, uuid string) (*model.Book, error) {
	val, err := r.client.Client.Get(ctx, r.bookKey(uuid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения книги из Redis", err)
	}

	var book model.Book
	if err := json.Unmarshal([]byte(val), &book); err != nil {
		return nil, util.LogError("ошибка десериализации книги из кэша", err)
	}
	return &book, nil
}

// DeleteBook инвалидирует кэш книги после изменения или удаления
func (r *CacheRepository) DeleteBook(ctx context.Context, uuid string) error {
	if err := r.client.Client.Del(ctx, r.bookKey(uuid)).Err(); err != nil {
		return util.LogError("ошибка удаления книги из Redis", err)
	}
	return nil
}

func (r *CacheRepository) revokedKey(jti string) string {
	return fmt.Sprintf("revoked_jti:%s", jti)
}

func (r *CacheRepository) bookKey(uuid string) string {
	return fmt.Sprintf("book:%s", uuid)
}
