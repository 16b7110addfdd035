package ports

import (
	"bookstore-server/internal/model"
	"context"
)

type CartRepository interface {
	ListByUser(ctx context.Context, userUUID string) ([]model.CartItem, error)
	FindByUUID(ctx context.Context, uuid string, userUUID string) (*model.CartItem, error)
	FindByUserAndBook(ctx context.Context, userUUID, bookUUID string) (*model.CartItem, error)
	Create(ctx context.Context, item *model.CartItem) error
	UpdateQuantity(ctx context.Context, uuid string, quantity int) error
	Delete(ctx context.Context, uuid string, userUUID string) error
	Clear(ctx context.Context, userUUID string) error
}

type CartService interface {
	ListItems(ctx context.Context, userUUID string) ([]model.CartItem, error)
	AddItem(ctx context.Context, userUUID, bookUUID string, quantity int) (*model.CartItem, error)
	UpdateItem(ctx context.Context, userUUID, itemUUID string, quantity int) (*model.CartItem, error)
	RemoveItem(ctx context.Context, userUUID, itemUUID string) error
	Clear(ctx context.Context, userUUID string) error
}
