package repository

import (
	"bookstore-server/config"
	"bookstore-server/internal/model"
	"bookstore-server/internal/util"
	"context"

	"github.com/jmoiron/sqlx"
)

type FavoriteRepository struct {
	database *config.Database
}

func NewFavoriteRepository(database *config.Database) *FavoriteRepository {
	return &FavoriteRepository{database: database}
}

// Add : добавляет книгу в избранное, повтор по паре (user, book) игнорируется
func (r *FavoriteRepository) Add(ctx context.Context, favorite *model.Favorite) error {
	query := `
		INSERT INTO favorites (uuid, user_uuid, book_uuid)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_uuid, book_uuid) DO NOTHING
	`
	_, err := r.database.DB.ExecContext(ctx, query, favorite.UUID, favorite.UserUUID, favorite.BookUUID)
	if err != nil {
		return util.Unavailable("[FavoriteRepo] не удалось добавить в избранное", err)
	}
	return nil
}

// Exists : проверяет, есть ли книга в избранном пользователя
func (r *FavoriteRepository) Exists(ctx context.Context, userUUID, bookUUID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM favorites WHERE user_uuid = $1 AND book_uuid = $2)`
	err := sqlx.GetContext(ctx, r.database.DB, &exists, query, userUUID, bookUUID)
	if err != nil {
		return false, util.Unavailable("[FavoriteRepo] ошибка проверки избранного", err)
	}
	return exists, nil
}

// ListByUser : избранное пользователя, новые первыми
func (r *FavoriteRepository) ListByUser(ctx context.Context, userUUID string) ([]model.Favorite, error) {
	var favorites []model.Favorite
	err := sqlx.SelectContext(ctx, r.database.DB, &favorites, `
		SELECT uuid, user_uuid, book_uuid, created_at
		FROM favorites
		WHERE user_uuid = $1
		ORDER BY created_at DESC
	`, userUUID)
	if err != nil {
		return nil, util.Unavailable("[FavoriteRepo] не удалось получить избранное", err)
	}
	return favorites, nil
}

// Remove : убирает книгу из избранного
func (r *FavoriteRepository) Remove(ctx context.Context, userUUID, bookUUID string) error {
	result, err := r.database.DB.ExecContext(ctx, `
		DELETE FROM favorites
		WHERE user_uuid = $1 AND book_uuid = $2
	`, userUUID, bookUUID)
	if err != nil {
		return util.Unavailable("[FavoriteRepo] не удалось удалить из избранного", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.Unavailable("[FavoriteRepo] не удалось проверить удаление из избранного", err)
	}
	if rowsAffected == 0 {
		return util.NotFound(util.CodeNotFound, "книга не найдена в избранном")
	}

	return nil
}
