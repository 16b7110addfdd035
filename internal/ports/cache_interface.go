package ports

import (
	"bookstore-server/internal/model"
	"context"
	"time"
)

// RevocationCache : Redis слой, быстрый denylist для jti refresh-токенов.
// Это оптимизация поверх реестра, отсутствие записи ничего не гарантирует
type RevocationCache interface {
	BlacklistRefreshJTI(ctx context.Context, jti string, ttl time.Duration) error
	IsRefreshJTIBlacklisted(ctx context.Context, jti string) (bool, error)
}

// BookCache : Redis слой для карточек книг
type BookCache interface {
	SetBook(ctx context.Context, book *model.Book) error
	GetBook(ctx context.Context, uuid string) (*model.Book, error)
	DeleteBook(ctx context.Context, uuid string) error
}
