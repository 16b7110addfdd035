package service

import (
	"bookstore-server/internal/model"
	"bookstore-server/internal/ports"
	"bookstore-server/internal/util"
	"context"
	"log"

	"github.com/google/uuid"
)

type BookService struct {
	bookRepository ports.BookRepository
	bookCache      ports.BookCache
}

func NewBookService(bookRepository ports.BookRepository, bookCache ports.BookCache) *BookService {
	return &BookService{
		bookRepository: bookRepository,
		bookCache:      bookCache,
	}
}

// CreateBook : регистрирует новую книгу в каталоге
func (s *BookService) CreateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	if book.Title == "" || book.Author == "" {
		return nil, util.BadRequest(util.CodeValidationFailed, "title и author обязательны")
	}
	if book.Price < 0 || book.Stock < 0 {
		return nil, util.BadRequest(util.CodeValidationFailed, "price и stock не могут быть отрицательными")
	}

	book.UUID = uuid.New().String()
	if err := s.bookRepository.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// GetBook : карточка книги, сначала кэш, затем БД
func (s *BookService) GetBook(ctx context.Context, bookUUID string) (*model.Book, error) {
	cached, err := s.bookCache.GetBook(ctx, bookUUID)
	if err != nil {
		log.Printf("[BookService] ошибка чтения кэша книги %s: %v", bookUUID, err)
	}
	if cached != nil {
		return cached, nil
	}

	book, err := s.bookRepository.GetByUUID(ctx, bookUUID)
	if err != nil {
		return nil, err
	}

	if err := s.bookCache.SetBook(ctx, book); err != nil {
		log.Printf("[BookService] не удалось закэшировать книгу %s: %v", bookUUID, err)
	}

	return book, nil
}

// ListBooks : каталог с фильтрами, кэш не используется
func (s *BookService) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, int, error) {
	return s.bookRepository.List(ctx, filter)
}

// UpdateBook : правит книгу и инвалидирует кэш
func (s *BookService) UpdateBook(ctx context.Context, bookUUID string, update func(*model.Book)) (*model.Book, error) {
	book, err := s.bookRepository.GetByUUID(ctx, bookUUID)
	if err != nil {
		return nil, err
	}

	update(book)

	if book.Title == "" || book.Author == "" {
		return nil, util.BadRequest(util.CodeValidationFailed, "title и author обязательны")
	}
	if book.Price < 0 || book.Stock < 0 {
		return nil, util.BadRequest(util.CodeValidationFailed, "price и stock не могут быть отрицательными")
	}

	if err := s.bookRepository.Update(ctx, book); err != nil {
		return nil, err
	}

	if err := s.bookCache.DeleteBook(ctx, bookUUID); err != nil {
		log.Printf("[BookService] не удалось инвалидировать кэш книги %s: %v", bookUUID, err)
	}

	return book, nil
}

// DeleteBook : убирает книгу из каталога и кэша
func (s *BookService) DeleteBook(ctx context.Context, bookUUID string) error {
	if err := s.bookRepository.Delete(ctx, bookUUID); err != nil {
		return err
	}

	if err := s.bookCache.DeleteBook(ctx, bookUUID); err != nil {
		log.Printf("[BookService] не удалось инвалидировать кэш книги %s: %v", bookUUID, err)
	}

	return nil
}
