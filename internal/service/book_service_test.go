package service_test

import (
	"bookstore-server/internal/model"
	"bookstore-server/internal/service"
	"bookstore-server/internal/util"
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== MOCKS =====

// MockBookRepository
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(ctx context.Context, book *model.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) GetByUUID(ctx context.Context, uuid string) (*model.Book, error) {
	args := m.Called(ctx, uuid)
	if b, ok := args.Get(0).(*model.Book); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookRepository) List(ctx context.Context, filter model.BookFilter) ([]model.Book, int, error) {
	args := m.Called(ctx, filter)
	if books, ok := args.Get(0).([]model.Book); ok {
		return books, args.Int(1), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *MockBookRepository) Update(ctx context.Context, book *model.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) Delete(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

func (m *MockBookRepository) GetForUpdate(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.Book, error) {
	args := m.Called(ctx, exec, uuid)
	if b, ok := args.Get(0).(*model.Book); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookRepository) DecrementStock(ctx context.Context, exec sqlx.ExtContext, uuid string, quantity int) error {
	args := m.Called(ctx, exec, uuid, quantity)
	return args.Error(0)
}

// MockBookCache
type MockBookCache struct {
	mock.Mock
}

func (m *MockBookCache) SetBook(ctx context.Context, book *model.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookCache) GetBook(ctx context.Context, uuid string) (*model.Book, error) {
	args := m.Called(ctx, uuid)
	if b, ok := args.Get(0).(*model.Book); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookCache) DeleteBook(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

// ===== TESTS =====

func newTestBookService() (*service.BookService, *MockBookRepository, *MockBookCache) {
	mockRepo := new(MockBookRepository)
	mockCache := new(MockBookCache)
	return service.NewBookService(mockRepo, mockCache), mockRepo, mockCache
}

// 1. Попадание в кэш: БД не трогается
func TestGetBook_CacheHit(t *testing.T) {
	svc, mockRepo, mockCache := newTestBookService()
	ctx := context.Background()

	cached := &model.Book{UUID: "b1", Title: "Мастер и Маргарита"}
	mockCache.On("GetBook", ctx, "b1").Return(cached, nil)

	book, err := svc.GetBook(ctx, "b1")

	require.NoError(t, err)
	assert.Equal(t, cached, book)
	mockRepo.AssertNotCalled(t, "GetByUUID", mock.Anything, mock.Anything)
}

// 2. Промах кэша: книга читается из БД и кэшируется
func TestGetBook_CacheMiss(t *testing.T) {
	svc, mockRepo, mockCache := newTestBookService()
	ctx := context.Background()

	book := &model.Book{UUID: "b1", Title: "Мастер и Маргарита"}
	mockCache.On("GetBook", ctx, "b1").Return(nil, nil)
	mockRepo.On("GetByUUID", ctx, "b1").Return(book, nil)
	mockCache.On("SetBook", ctx, book).Return(nil)

	got, err := svc.GetBook(ctx, "b1")

	require.NoError(t, err)
	assert.Equal(t, book, got)
	mockCache.AssertExpectations(t)
}

// 3. Недоступный Redis не мешает читать из БД
func TestGetBook_CacheDown(t *testing.T) {
	svc, mockRepo, mockCache := newTestBookService()
	ctx := context.Background()

	book := &model.Book{UUID: "b1", Title: "Мастер и Маргарита"}
	mockCache.On("GetBook", ctx, "b1").Return(nil, errors.New("dial tcp"))
	mockRepo.On("GetByUUID", ctx, "b1").Return(book, nil)
	mockCache.On("SetBook", ctx, book).Return(errors.New("dial tcp"))

	got, err := svc.GetBook(ctx, "b1")

	require.NoError(t, err)
	assert.Equal(t, book, got)
}

// 4. Создание книги без названия отклоняется
func TestCreateBook_Validation(t *testing.T) {
	svc, mockRepo, _ := newTestBookService()

	_, err := svc.CreateBook(context.Background(), &model.Book{Author: "М. Булгаков"})
	assertAPIError(t, err, 400, util.CodeValidationFailed)

	_, err = svc.CreateBook(context.Background(), &model.Book{Title: "X", Author: "Y", Price: -1})
	assertAPIError(t, err, 400, util.CodeValidationFailed)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 5. Правка книги инвалидирует кэш
func TestUpdateBook_InvalidatesCache(t *testing.T) {
	svc, mockRepo, mockCache := newTestBookService()
	ctx := context.Background()

	book := &model.Book{UUID: "b1", Title: "Старое", Author: "Автор", Price: 100, Stock: 1}
	mockRepo.On("GetByUUID", ctx, "b1").Return(book, nil)
	mockRepo.On("Update", ctx, mock.MatchedBy(func(b *model.Book) bool {
		return b.Title == "Новое"
	})).Return(nil)
	mockCache.On("DeleteBook", ctx, "b1").Return(nil)

	updated, err := svc.UpdateBook(ctx, "b1", func(b *model.Book) { b.Title = "Новое" })

	require.NoError(t, err)
	assert.Equal(t, "Новое", updated.Title)
	mockCache.AssertExpectations(t)
}

// 6. Удаление книги чистит кэш
func TestDeleteBook_InvalidatesCache(t *testing.T) {
	svc, mockRepo, mockCache := newTestBookService()
	ctx := context.Background()

	mockRepo.On("Delete", ctx, "b1").Return(nil)
	mockCache.On("DeleteBook", ctx, "b1").Return(nil)

	err := svc.DeleteBook(ctx, "b1")

	assert.NoError(t, err)
	mockCache.AssertExpectations(t)
}
