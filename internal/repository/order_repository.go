package repository

import (
	"bookstore-server/config"
	"bookstore-server/internal/model"
	"bookstore-server/internal/util"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type OrderRepository struct {
	*config.Database
}

func NewOrderRepository(database *config.Database) *OrderRepository {
	return &OrderRepository{database}
}

// BeginTX открывает транзакцию оформления заказа.
// Возвращает executor, commit и rollback
func (r *OrderRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, nil, util.Unavailable("[OrderRepo] не удалось открыть транзакцию", err)
	}
	return tx, func() error { return tx.Commit() }, func() error { return tx.Rollback() }, nil
}

// CreateOrder : сохраняет шапку заказа
func (r *OrderRepository) CreateOrder(ctx context.Context, exec sqlx.ExtContext, order *model.Order) error {
	query := `INSERT INTO orders (uuid, user_uuid, status, total_price)
				VALUES ($1, $2, $3, $4)
				RETURNING created_at`

	err := exec.QueryRowxContext(ctx, query, order.UUID, order.UserUUID, order.Status, order.TotalPrice).
		Scan(&order.CreatedAt)
	if err != nil {
		return util.Unavailable("[OrderRepo] не удалось сохранить заказ", err)
	}
	return nil
}

// CreateOrderItem : сохраняет позицию заказа в той же транзакции
func (r *OrderRepository) CreateOrderItem(ctx context.Context, exec sqlx.ExtContext, item *model.OrderItem) error {
	query := `INSERT INTO order_items (uuid, order_uuid, book_uuid, quantity, unit_price)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING created_at`

	err := exec.QueryRowxContext(ctx, query, item.UUID, item.OrderUUID, item.BookUUID, item.Quantity, item.UnitPrice).
		Scan(&item.CreatedAt)
	if err != nil {
		return util.Unavailable("[OrderRepo] не удалось сохранить позицию заказа", err)
	}
	return nil
}

// GetByUUID : заказ по UUID
func (r *OrderRepository) GetByUUID(ctx context.Context, uuid string) (*model.Order, error) {
	query := `SELECT uuid, user_uuid, status, total_price, created_at FROM orders WHERE uuid = $1`

	var order model.Order
	err := sqlx.GetContext(ctx, r.DB, &order, query, uuid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.NotFound(util.CodeNotFound, "заказ не найден")
		}
		return nil, util.Unavailable("[OrderRepo] не удалось найти заказ", err)
	}
	return &order, nil
}

// ListByUser : заказы пользователя с опциональным фильтром по статусу
func (r *OrderRepository) ListByUser(ctx context.Context, userUUID string, status string, page, size int) ([]model.Order, int, error) {
	where := "user_uuid = $1"
	args := []interface{}{userUUID}

	if status != "" {
		args = append(args, status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int
	if err := sqlx.GetContext(ctx, r.DB, &total, `SELECT COUNT(*) FROM orders WHERE `+where, args...); err != nil {
		return nil, 0, util.Unavailable("[OrderRepo] не удалось посчитать заказы", err)
	}

	args = append(args, size, page*size)
	query := fmt.Sprintf(`SELECT uuid, user_uuid, status, total_price, created_at
		FROM orders WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	var orders []model.Order
	if err := sqlx.SelectContext(ctx, r.DB, &orders, query, args...); err != nil {
		return nil, 0, util.Unavailable("[OrderRepo] не удалось получить список заказов", err)
	}

	return orders, total, nil
}

// ListItems : позиции заказа
func (r *OrderRepository) ListItems(ctx context.Context, orderUUID string) ([]model.OrderItem, error) {
	query := `SELECT uuid, order_uuid, book_uuid, quantity, unit_price, created_at
				FROM order_items WHERE order_uuid = $1 ORDER BY created_at ASC`

	var items []model.OrderItem
	if err := sqlx.SelectContext(ctx, r.DB, &items, query, orderUUID); err != nil {
		return nil, util.Unavailable("[OrderRepo] не удалось получить позиции заказа", err)
	}
	return items, nil
}

// UpdateStatus : смена статуса заказа администратором
func (r *OrderRepository) UpdateStatus(ctx context.Context, uuid string, status string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE orders SET status = $2 WHERE uuid = $1`, uuid, status)
	if err != nil {
		return util.Unavailable("[OrderRepo] не удалось изменить статус заказа", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.Unavailable("[OrderRepo] не удалось проверить смену статуса", err)
	}
	if rowsAffected == 0 {
		return util.NotFound(util.CodeNotFound, "заказ не найден")
	}

	return nil
}
