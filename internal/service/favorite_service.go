package service

import (
	"bookstore-server/internal/model"
	"bookstore-server/internal/ports"
	"bookstore-server/internal/util"
	"context"

	"github.com/google/uuid"
)

type FavoriteService struct {
	favoriteRepository ports.FavoriteRepository
	bookRepository     ports.BookRepository
}

func NewFavoriteService(favoriteRepository ports.FavoriteRepository, bookRepository ports.BookRepository) *FavoriteService {
	return &FavoriteService{
		favoriteRepository: favoriteRepository,
		bookRepository:     bookRepository,
	}
}

// AddFavorite : кладёт книгу в избранное, повтор даёт Conflict
func (s *FavoriteService) AddFavorite(ctx context.Context, userUUID, bookUUID string) (*model.Favorite, error) {
	if _, err := s.bookRepository.GetByUUID(ctx, bookUUID); err != nil {
		return nil, err
	}

	exists, err := s.favoriteRepository.Exists(ctx, userUUID, bookUUID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.Conflict("книга уже в избранном")
	}

	favorite := &model.Favorite{
		UUID:     uuid.New().String(),
		UserUUID: userUUID,
		BookUUID: bookUUID,
	}
	if err := s.favoriteRepository.Add(ctx, favorite); err != nil {
		return nil, err
	}

	return favorite, nil
}

func (s *FavoriteService) ListMine(ctx context.Context, userUUID string) ([]model.Favorite, error) {
	return s.favoriteRepository.ListByUser(ctx, userUUID)
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, userUUID, bookUUID string) error {
	return s.favoriteRepository.Remove(ctx, userUUID, bookUUID)
}
