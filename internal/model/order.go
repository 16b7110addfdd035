package model

import "time"

const (
	OrderStatusCreated   = "CREATED"
	OrderStatusPaid      = "PAID"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCanceled  = "CANCELED"
)

type Order struct {
	UUID       string      `db:"uuid" json:"uuid"`
	UserUUID   string      `db:"user_uuid" json:"user_uuid"`
	Status     string      `db:"status" json:"status"`
	TotalPrice int64       `db:"total_price" json:"total_price"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
	Items      []OrderItem `db:"-" json:"items,omitempty"`
}

type OrderItem struct {
	UUID      string    `db:"uuid" json:"uuid"`
	OrderUUID string    `db:"order_uuid" json:"order_uuid"`
	BookUUID  string    `db:"book_uuid" json:"book_uuid"`
	Quantity  int       `db:"quantity" json:"quantity"`
	// UnitPrice : цена книги на момент заказа
	UnitPrice int64     `db:"unit_price" json:"unit_price"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ValidOrderStatus проверяет статус по закрытому списку
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusCreated, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}
