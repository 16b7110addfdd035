package model

import "time"

type Review struct {
	UUID      string     `db:"uuid" json:"uuid"`
	UserUUID  string     `db:"user_uuid" json:"user_uuid"`
	BookUUID  string     `db:"book_uuid" json:"book_uuid"`
	Rating    int        `db:"rating" json:"rating"` // 1..5
	Content   *string    `db:"content" json:"content,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
