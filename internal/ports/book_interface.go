package ports

import (
	"bookstore-server/internal/model"
	"context"

	"github.com/jmoiron/sqlx"
)

// BookRepository : SQL слой каталога.
// Методы со sqlx.ExtContext участвуют в транзакции оформления заказа
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	GetByUUID(ctx context.Context, uuid string) (*model.Book, error)
	List(ctx context.Context, filter model.BookFilter) ([]model.Book, int, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, uuid string) error
	GetForUpdate(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.Book, error)
	DecrementStock(ctx context.Context, exec sqlx.ExtContext, uuid string, quantity int) error
}

type BookService interface {
	CreateBook(ctx context.Context, book *model.Book) (*model.Book, error)
	GetBook(ctx context.Context, uuid string) (*model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, int, error)
	UpdateBook(ctx context.Context, uuid string, update func(*model.Book)) (*model.Book, error)
	DeleteBook(ctx context.Context, uuid string) error
}
