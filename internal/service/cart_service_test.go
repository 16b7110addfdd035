package service_test

import (
	"bookstore-server/internal/model"
	"bookstore-server/internal/service"
	"bookstore-server/internal/util"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== MOCKS =====

// MockCartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) ListByUser(ctx context.Context, userUUID string) ([]model.CartItem, error) {
	args := m.Called(ctx, userUUID)
	if items, ok := args.Get(0).([]model.CartItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartRepository) FindByUUID(ctx context.Context, uuid string, userUUID string) (*model.CartItem, error) {
	args := m.Called(ctx, uuid, userUUID)
	if item, ok := args.Get(0).(*model.CartItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartRepository) FindByUserAndBook(ctx context.Context, userUUID, bookUUID string) (*model.CartItem, error) {
	args := m.Called(ctx, userUUID, bookUUID)
	if item, ok := args.Get(0).(*model.CartItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartRepository) Create(ctx context.Context, item *model.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateQuantity(ctx context.Context, uuid string, quantity int) error {
	args := m.Called(ctx, uuid, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, uuid string, userUUID string) error {
	args := m.Called(ctx, uuid, userUUID)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, userUUID string) error {
	args := m.Called(ctx, userUUID)
	return args.Error(0)
}

// ===== TESTS =====

func newTestCartService() (*service.CartService, *MockCartRepository, *MockBookRepository) {
	mockCartRepo := new(MockCartRepository)
	mockBookRepo := new(MockBookRepository)
	return service.NewCartService(mockCartRepo, mockBookRepo), mockCartRepo, mockBookRepo
}

// 1. Новая книга в корзине создаёт позицию
func TestAddItem_NewItem(t *testing.T) {
	svc, mockCartRepo, mockBookRepo := newTestCartService()
	ctx := context.Background()

	mockBookRepo.On("GetByUUID", ctx, "b1").Return(&model.Book{UUID: "b1"}, nil)
	mockCartRepo.On("FindByUserAndBook", ctx, "u1", "b1").Return(nil, nil)
	mockCartRepo.On("Create", ctx, mock.MatchedBy(func(i *model.CartItem) bool {
		return i.UserUUID == "u1" && i.BookUUID == "b1" && i.Quantity == 2
	})).Return(nil)

	item, err := svc.AddItem(ctx, "u1", "b1", 2)

	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	mockCartRepo.AssertExpectations(t)
}

// 2. Книга уже в корзине: количество суммируется
func TestAddItem_Accumulates(t *testing.T) {
	svc, mockCartRepo, mockBookRepo := newTestCartService()
	ctx := context.Background()

	existing := &model.CartItem{UUID: "c1", UserUUID: "u1", BookUUID: "b1", Quantity: 1}
	mockBookRepo.On("GetByUUID", ctx, "b1").Return(&model.Book{UUID: "b1"}, nil)
	mockCartRepo.On("FindByUserAndBook", ctx, "u1", "b1").Return(existing, nil)
	mockCartRepo.On("UpdateQuantity", ctx, "c1", 3).Return(nil)

	item, err := svc.AddItem(ctx, "u1", "b1", 2)

	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
	mockCartRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 3. Несуществующую книгу нельзя положить в корзину
func TestAddItem_UnknownBook(t *testing.T) {
	svc, mockCartRepo, mockBookRepo := newTestCartService()
	ctx := context.Background()

	mockBookRepo.On("GetByUUID", ctx, "missing").
		Return(nil, util.NotFound(util.CodeNotFound, "книга не найдена"))

	_, err := svc.AddItem(ctx, "u1", "missing", 1)

	assertAPIError(t, err, 404, util.CodeNotFound)
	mockCartRepo.AssertNotCalled(t, "FindByUserAndBook", mock.Anything, mock.Anything, mock.Anything)
}

// 4. Нулевое количество отклоняется
func TestAddItem_InvalidQuantity(t *testing.T) {
	svc, _, mockBookRepo := newTestCartService()

	_, err := svc.AddItem(context.Background(), "u1", "b1", 0)

	assertAPIError(t, err, 400, util.CodeValidationFailed)
	mockBookRepo.AssertNotCalled(t, "GetByUUID", mock.Anything, mock.Anything)
}

// 5. Смена количества в чужой позиции не находит её по (uuid, user)
func TestUpdateItem_NotOwned(t *testing.T) {
	svc, mockCartRepo, _ := newTestCartService()
	ctx := context.Background()

	mockCartRepo.On("FindByUUID", ctx, "c1", "intruder").
		Return(nil, util.NotFound(util.CodeNotFound, "позиция не найдена"))

	_, err := svc.UpdateItem(ctx, "intruder", "c1", 2)

	assertAPIError(t, err, 404, util.CodeNotFound)
}
