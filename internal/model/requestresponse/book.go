package requestresponse

import "bookstore-server/internal/model"

// CreateBookRequest : запрос на создание книги (админ)
type CreateBookRequest struct {
	Title       string  `json:"title" example:"Мастер и Маргарита"`
	Author      string  `json:"author" example:"М. Булгаков"`
	Category    *string `json:"category,omitempty" example:"роман"`
	Description *string `json:"description,omitempty"`
	Price       int64   `json:"price" example:"750"`
	Stock       int     `json:"stock" example:"12"`
}

// UpdateBookRequest : частичное обновление книги, меняются только переданные поля
type UpdateBookRequest struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
}

// BookResponse : карточка книги
type BookResponse struct {
	Message string      `json:"message"`
	Payload *model.Book `json:"payload"`
}

// BooksPageResponse : страница каталога
type BooksPageResponse struct {
	Message string `json:"message"`
	Payload Page   `json:"payload"`
}
