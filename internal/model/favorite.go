package model

import "time"

// Favorite : закладка пользователя на книгу, пара (user, book) уникальна
type Favorite struct {
	UUID      string    `db:"uuid" json:"uuid"`
	UserUUID  string    `db:"user_uuid" json:"user_uuid"`
	BookUUID  string    `db:"book_uuid" json:"book_uuid"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
