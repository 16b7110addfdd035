package ports

import (
	"bookstore-server/internal/model"
	"context"

	"github.com/jmoiron/sqlx"
)

type OrderRepository interface {
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
	CreateOrder(ctx context.Context, exec sqlx.ExtContext, order *model.Order) error
	CreateOrderItem(ctx context.Context, exec sqlx.ExtContext, item *model.OrderItem) error
	GetByUUID(ctx context.Context, uuid string) (*model.Order, error)
	ListByUser(ctx context.Context, userUUID string, status string, page, size int) ([]model.Order, int, error)
	ListItems(ctx context.Context, orderUUID string) ([]model.OrderItem, error)
	UpdateStatus(ctx context.Context, uuid string, status string) error
}

type OrderService interface {
	CreateOrder(ctx context.Context, userUUID string, items []model.OrderItem) (*model.Order, error)
	GetMyOrder(ctx context.Context, userUUID, orderUUID string) (*model.Order, error)
	ListMyOrders(ctx context.Context, userUUID string, status string, page, size int) ([]model.Order, int, error)
	UpdateStatus(ctx context.Context, orderUUID, status string) (*model.Order, error)
}
