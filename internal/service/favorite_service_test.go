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

// MockFavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, favorite *model.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userUUID, bookUUID string) (bool, error) {
	args := m.Called(ctx, userUUID, bookUUID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userUUID string) ([]model.Favorite, error) {
	args := m.Called(ctx, userUUID)
	if favorites, ok := args.Get(0).([]model.Favorite); ok {
		return favorites, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userUUID, bookUUID string) error {
	args := m.Called(ctx, userUUID, bookUUID)
	return args.Error(0)
}

// ===== TESTS =====

func newTestFavoriteService() (*service.FavoriteService, *MockFavoriteRepository, *MockBookRepository) {
	mockFavoriteRepo := new(MockFavoriteRepository)
	mockBookRepo := new(MockBookRepository)
	return service.NewFavoriteService(mockFavoriteRepo, mockBookRepo), mockFavoriteRepo, mockBookRepo
}

// 1. Книга добавляется в избранное
func TestAddFavorite_Success(t *testing.T) {
	svc, mockFavoriteRepo, mockBookRepo := newTestFavoriteService()
	ctx := context.Background()

	mockBookRepo.On("GetByUUID", ctx, "b1").Return(&model.Book{UUID: "b1"}, nil)
	mockFavoriteRepo.On("Exists", ctx, "u1", "b1").Return(false, nil)
	mockFavoriteRepo.On("Add", ctx, mock.MatchedBy(func(f *model.Favorite) bool {
		return f.UserUUID == "u1" && f.BookUUID == "b1"
	})).Return(nil)

	favorite, err := svc.AddFavorite(ctx, "u1", "b1")

	require.NoError(t, err)
	assert.NotEmpty(t, favorite.UUID)
	mockFavoriteRepo.AssertExpectations(t)
}

// 2. Повторное добавление той же книги — 409, вставка не выполняется
func TestAddFavorite_Duplicate(t *testing.T) {
	svc, mockFavoriteRepo, mockBookRepo := newTestFavoriteService()
	ctx := context.Background()

	mockBookRepo.On("GetByUUID", ctx, "b1").Return(&model.Book{UUID: "b1"}, nil)
	mockFavoriteRepo.On("Exists", ctx, "u1", "b1").Return(true, nil)

	_, err := svc.AddFavorite(ctx, "u1", "b1")

	assertAPIError(t, err, 409, util.CodeDuplicate)
	mockFavoriteRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

// 3. Несуществующую книгу нельзя добавить в избранное
func TestAddFavorite_UnknownBook(t *testing.T) {
	svc, mockFavoriteRepo, mockBookRepo := newTestFavoriteService()
	ctx := context.Background()

	mockBookRepo.On("GetByUUID", ctx, "missing").
		Return(nil, util.NotFound(util.CodeNotFound, "книга не найдена"))

	_, err := svc.AddFavorite(ctx, "u1", "missing")

	assertAPIError(t, err, 404, util.CodeNotFound)
	mockFavoriteRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

// 4. Список избранного пользователя
func TestListMineFavorites(t *testing.T) {
	svc, mockFavoriteRepo, _ := newTestFavoriteService()
	ctx := context.Background()

	mockFavoriteRepo.On("ListByUser", ctx, "u1").
		Return([]model.Favorite{{UUID: "f1", BookUUID: "b1"}}, nil)

	favorites, err := svc.ListMine(ctx, "u1")

	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

// 5. Удаление отсутствующей записи пробрасывает 404 репозитория
func TestRemoveFavorite_NotFound(t *testing.T) {
	svc, mockFavoriteRepo, _ := newTestFavoriteService()
	ctx := context.Background()

	mockFavoriteRepo.On("Remove", ctx, "u1", "b1").
		Return(util.NotFound(util.CodeNotFound, "книга не в избранном"))

	err := svc.RemoveFavorite(ctx, "u1", "b1")

	assertAPIError(t, err, 404, util.CodeNotFound)
}
