package model

import "time"

type Book struct {
	UUID        string     `db:"uuid" json:"uuid"`
	Title       string     `db:"title" json:"title"`
	Author      string     `db:"author" json:"author"`
	Category    *string    `db:"category" json:"category,omitempty"`
	Description *string    `db:"description" json:"description,omitempty"`
	Price       int64      `db:"price" json:"price"`
	Stock       int        `db:"stock" json:"stock"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// BookFilter : параметры выборки списка книг
type BookFilter struct {
	Keyword  string // частичное совпадение по title/author
	Category string
	Sort     string // "поле,ASC|DESC", белый список полей в репозитории
	Page     int
	Size     int
}
