package repository

import (
	"bookstore-server/config"
	"bookstore-server/internal/model"
	"bookstore-server/internal/util"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type BookRepository struct {
	*config.Database
}

func NewBookRepository(database *config.Database) *BookRepository {
	return &BookRepository{database}
}

// Create : сохраняет новую книгу
func (r *BookRepository) Create(ctx context.Context, book *model.Book) error {
	query := `
	INSERT INTO books (uuid, title, author, category, description, price, stock)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at
	`

	err := r.DB.QueryRowxContext(ctx, query,
		book.UUID, book.Title, book.Author, book.Category, book.Description, book.Price, book.Stock,
	).Scan(&book.CreatedAt)

	if err != nil {
		return util.Unavailable("[BookRepo] ошибка вставки книги в БД", err)
	}

	return nil
}

// GetByUUID : ищет книгу по UUID
func (r *BookRepository) GetByUUID(ctx context.Context, uuid string) (*model.Book, error) {
	query := `SELECT uuid, title, author, category, description, price, stock, created_at, updated_at
				FROM books WHERE uuid = $1`
	var book model.Book
	err := sqlx.GetContext(ctx, r.DB, &book, query, uuid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.NotFound(util.CodeNotFound, "книга не найдена")
		}
		return nil, util.Unavailable("[BookRepo] не удалось найти книгу", err)
	}
	return &book, nil
}

// List : каталог с фильтрами keyword/category и offset-пагинацией
func (r *BookRepository) List(ctx context.Context, filter model.BookFilter) ([]model.Book, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.Keyword != "" {
		args = append(args, "%"+strings.TrimSpace(filter.Keyword)+"%")
		placeholder := fmt.Sprintf("$%d", len(args))
		where = append(where, fmt.Sprintf("(title ILIKE %s OR author ILIKE %s)", placeholder, placeholder))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM books WHERE ` + whereClause
	if err := sqlx.GetContext(ctx, r.DB, &total, countQuery, args...); err != nil {
		return nil, 0, util.Unavailable("[BookRepo] не удалось посчитать книги", err)
	}

	orderBy := sortClause(filter.Sort, map[string]string{
		"created_at": "created_at",
		"price":      "price",
		"title":      "title",
		"stock":      "stock",
	}, "created_at DESC")

	args = append(args, filter.Size, filter.Page*filter.Size)
	query := fmt.Sprintf(`SELECT uuid, title, author, category, description, price, stock, created_at, updated_at
		FROM books WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		whereClause, orderBy, len(args)-1, len(args))

	var books []model.Book
	if err := sqlx.SelectContext(ctx, r.DB, &books, query, args...); err != nil {
		return nil, 0, util.Unavailable("[BookRepo] не удалось получить список книг", err)
	}

	return books, total, nil
}

// Update : перезаписывает изменяемые поля книги
func (r *BookRepository) Update(ctx context.Context, book *model.Book) error {
	query := `
		UPDATE books
		SET title = $2, author = $3, category = $4, description = $5, price = $6, stock = $7, updated_at = NOW()
		WHERE uuid = $1
	`
	result, err := r.DB.ExecContext(ctx, query,
		book.UUID, book.Title, book.Author, book.Category, book.Description, book.Price, book.Stock)
	if err != nil {
		return util.Unavailable("[BookRepo] не удалось обновить книгу", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.Unavailable("[BookRepo] не удалось проверить обновление книги", err)
	}
	if rowsAffected == 0 {
		return util.NotFound(util.CodeNotFound, "книга не найдена")
	}

	return nil
}

// Delete : удаляет книгу
func (r *BookRepository) Delete(ctx context.Context, uuid string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM books WHERE uuid = $1`, uuid)
	if err != nil {
		return util.Unavailable("[BookRepo] не удалось удалить книгу", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.Unavailable("[BookRepo] не удалось проверить удаление книги", err)
	}
	if rowsAffected == 0 {
		return util.NotFound(util.CodeNotFound, "книга не найдена")
	}

	return nil
}

// GetForUpdate : читает книгу с блокировкой строки внутри транзакции заказа
func (r *BookRepository) GetForUpdate(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.Book, error) {
	query := `SELECT uuid, title, author, category, description, price, stock, created_at, updated_at
				FROM books WHERE uuid = $1 FOR UPDATE`
	var book model.Book
	err := sqlx.GetContext(ctx, exec, &book, query, uuid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.NotFound(util.CodeNotFound, "книга не найдена")
		}
		return nil, util.Unavailable("[BookRepo] не удалось найти книгу для заказа", err)
	}
	return &book, nil
}

// DecrementStock : списывает остаток в рамках транзакции заказа.
// Условие stock >= quantity страхует от ухода в минус
func (r *BookRepository) DecrementStock(ctx context.Context, exec sqlx.ExtContext, uuid string, quantity int) error {
	query := `UPDATE books SET stock = stock - $2, updated_at = NOW() WHERE uuid = $1 AND stock >= $2`

	result, err := exec.ExecContext(ctx, query, uuid, quantity)
	if err != nil {
		return util.Unavailable("[BookRepo] не удалось списать остаток", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.Unavailable("[BookRepo] не удалось проверить списание остатка", err)
	}
	if rowsAffected == 0 {
		return util.Unprocessable("недостаточно книг на складе")
	}

	return nil
}
