package model

import "time"

// CartItem : позиция корзины, у пары (user, book) всегда одна строка
type CartItem struct {
	UUID      string    `db:"uuid" json:"uuid"`
	UserUUID  string    `db:"user_uuid" json:"user_uuid"`
	BookUUID  string    `db:"book_uuid" json:"book_uuid"`
	Quantity  int       `db:"quantity" json:"quantity"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
