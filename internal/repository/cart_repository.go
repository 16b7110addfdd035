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

type CartRepository struct {
	*config.Database
}

func NewCartRepository(database *config.Database) *CartRepository {
	return &CartRepository{database}
}

// ListByUser : содержимое корзины пользователя, свежие позиции первыми
func (r *CartRepository) ListByUser(ctx context.Context, userUUID string) ([]model.CartItem, error) {
	query := `SELECT uuid, user_uuid, book_uuid, quantity, created_at
				FROM cart_items WHERE user_uuid = $1 ORDER BY created_at DESC`

	var items []model.CartItem
	if err := sqlx.SelectContext(ctx, r.DB, &items, query, userUUID); err != nil {
		return nil, util.Unavailable("[CartRepo] не удалось получить корзину", err)
	}
	return items, nil
}

// FindByUUID : позиция корзины, доступна только владельцу
func (r *CartRepository) FindByUUID(ctx context.Context, uuid string, userUUID string) (*model.CartItem, error) {
	query := `SELECT uuid, user_uuid, book_uuid, quantity, created_at
				FROM cart_items WHERE uuid = $1 AND user_uuid = $2`

	var item model.CartItem
	err := sqlx.GetContext(ctx, r.DB, &item, query, uuid, userUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.NotFound(util.CodeNotFound, "позиция корзины не найдена")
		}
		return nil, util.Unavailable("[CartRepo] не удалось найти позицию корзины", err)
	}
	return &item, nil
}

// FindByUserAndBook : существующая позиция для пары (user, book), (nil, nil) если её нет
func (r *CartRepository) FindByUserAndBook(ctx context.Context, userUUID, bookUUID string) (*model.CartItem, error) {
	query := `SELECT uuid, user_uuid, book_uuid, quantity, created_at
				FROM cart_items WHERE user_uuid = $1 AND book_uuid = $2`

	var item model.CartItem
	err := sqlx.GetContext(ctx, r.DB, &item, query, userUUID, bookUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.Unavailable("[CartRepo] не удалось найти позицию корзины", err)
	}
	return &item, nil
}

// Create : новая позиция корзины. При гонке двух одновременных добавлений
// одной книги строка не дублируется, количество суммируется в существующей
func (r *CartRepository) Create(ctx context.Context, item *model.CartItem) error {
	query := `INSERT INTO cart_items (uuid, user_uuid, book_uuid, quantity)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (user_uuid, book_uuid)
				DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
				RETURNING uuid, quantity, created_at`

	err := r.DB.QueryRowxContext(ctx, query, item.UUID, item.UserUUID, item.BookUUID, item.Quantity).
		Scan(&item.UUID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		return util.Unavailable("[CartRepo] не удалось добавить позицию корзины", err)
	}
	return nil
}

// UpdateQuantity : меняет количество в позиции
func (r *CartRepository) UpdateQuantity(ctx context.Context, uuid string, quantity int) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE cart_items SET quantity = $2 WHERE uuid = $1`, uuid, quantity)
	if err != nil {
		return util.Unavailable("[CartRepo] не удалось изменить количество", err)
	}
	return nil
}

// Delete : удаляет позицию корзины владельца
func (r *CartRepository) Delete(ctx context.Context, uuid string, userUUID string) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM cart_items WHERE uuid = $1 AND user_uuid = $2`, uuid, userUUID)
	if err != nil {
		return util.Unavailable("[CartRepo] не удалось удалить позицию корзины", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.Unavailable("[CartRepo] не удалось проверить удаление позиции", err)
	}
	if rowsAffected == 0 {
		return util.NotFound(util.CodeNotFound, "позиция корзины не найдена")
	}

	return nil
}

// Clear : полностью очищает корзину пользователя
func (r *CartRepository) Clear(ctx context.Context, userUUID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM cart_items WHERE user_uuid = $1`, userUUID)
	if err != nil {
		return util.Unavailable("[CartRepo] не удалось очистить корзину", err)
	}
	return nil
}
