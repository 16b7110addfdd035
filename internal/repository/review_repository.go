package repository

import (
	"bookstore-server/config"
	"bookstore-server/internal/model"
	"bookstore-server/internal/util"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type ReviewRepository struct {
	*config.Database
}

func NewReviewRepository(database *config.Database) *ReviewRepository {
	return &ReviewRepository{database}
}

// Create : сохраняет отзыв
func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `INSERT INTO reviews (uuid, user_uuid, book_uuid, rating, content)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING created_at`

	err := r.DB.QueryRowxContext(ctx, query,
		review.UUID, review.UserUUID, review.BookUUID, review.Rating, review.Content,
	).Scan(&review.CreatedAt)
	if err != nil {
		return util.Unavailable("[ReviewRepo] не удалось сохранить отзыв", err)
	}
	return nil
}

// FindByUUID : отзыв по UUID
func (r *ReviewRepository) FindByUUID(ctx context.Context, uuid string) (*model.Review, error) {
	query := `SELECT uuid, user_uuid, book_uuid, rating, content, created_at, updated_at
				FROM reviews WHERE uuid = $1`

	var review model.Review
	err := sqlx.GetContext(ctx, r.DB, &review, query, uuid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.NotFound(util.CodeNotFound, "отзыв не найден")
		}
		return nil, util.Unavailable("[ReviewRepo] не удалось найти отзыв", err)
	}
	return &review, nil
}

// ListByBook : отзывы книги, новые первыми
func (r *ReviewRepository) ListByBook(ctx context.Context, bookUUID string, page, size int) ([]model.Review, int, error) {
	var total int
	if err := sqlx.GetContext(ctx, r.DB, &total,
		`SELECT COUNT(*) FROM reviews WHERE book_uuid = $1`, bookUUID); err != nil {
		return nil, 0, util.Unavailable("[ReviewRepo] не удалось посчитать отзывы", err)
	}

	query := `SELECT uuid, user_uuid, book_uuid, rating, content, created_at, updated_at
				FROM reviews WHERE book_uuid = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	var reviews []model.Review
	if err := sqlx.SelectContext(ctx, r.DB, &reviews, query, bookUUID, size, page*size); err != nil {
		return nil, 0, util.Unavailable("[ReviewRepo] не удалось получить отзывы", err)
	}

	return reviews, total, nil
}

// Update : правит рейтинг и текст отзыва
func (r *ReviewRepository) Update(ctx context.Context, review *model.Review) error {
	query := `UPDATE reviews SET rating = $2, content = $3, updated_at = NOW() WHERE uuid = $1`
	_, err := r.DB.ExecContext(ctx, query, review.UUID, review.Rating, review.Content)
	if err != nil {
		return util.Unavailable("[ReviewRepo] не удалось обновить отзыв", err)
	}
	return nil
}

// Delete : удаляет отзыв
func (r *ReviewRepository) Delete(ctx context.Context, uuid string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE uuid = $1`, uuid)
	if err != nil {
		return util.Unavailable("[ReviewRepo] не удалось удалить отзыв", err)
	}
	return nil
}
