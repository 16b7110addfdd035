package ports

import (
	"bookstore-server/internal/model"
	"context"
)

type FavoriteRepository interface {
	Add(ctx context.Context, favorite *model.Favorite) error
	Exists(ctx context.Context, userUUID, bookUUID string) (bool, error)
	ListByUser(ctx context.Context, userUUID string) ([]model.Favorite, error)
	Remove(ctx context.Context, userUUID, bookUUID string) error
}

type FavoriteService interface {
	AddFavorite(ctx context.Context, userUUID, bookUUID string) (*model.Favorite, error)
	ListMine(ctx context.Context, userUUID string) ([]model.Favorite, error)
	RemoveFavorite(ctx context.Context, userUUID, bookUUID string) error
}
