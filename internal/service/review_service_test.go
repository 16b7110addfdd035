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

// MockReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindByUUID(ctx context.Context, uuid string) (*model.Review, error) {
	args := m.Called(ctx, uuid)
	if review, ok := args.Get(0).(*model.Review); ok {
		return review, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReviewRepository) ListByBook(ctx context.Context, bookUUID string, page, size int) ([]model.Review, int, error) {
	args := m.Called(ctx, bookUUID, page, size)
	if reviews, ok := args.Get(0).([]model.Review); ok {
		return reviews, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

// ===== TESTS =====

func newTestReviewService() (*service.ReviewService, *MockReviewRepository, *MockBookRepository) {
	mockReviewRepo := new(MockReviewRepository)
	mockBookRepo := new(MockBookRepository)
	return service.NewReviewService(mockReviewRepo, mockBookRepo), mockReviewRepo, mockBookRepo
}

// 1. Новый отзыв сохраняется с рейтингом и автором
func TestCreateReview_Success(t *testing.T) {
	svc, mockReviewRepo, mockBookRepo := newTestReviewService()
	ctx := context.Background()
	content := "отличная книга"

	mockBookRepo.On("GetByUUID", ctx, "b1").Return(&model.Book{UUID: "b1"}, nil)
	mockReviewRepo.On("Create", ctx, mock.MatchedBy(func(r *model.Review) bool {
		return r.UserUUID == "u1" && r.BookUUID == "b1" && r.Rating == 5
	})).Return(nil)

	review, err := svc.CreateReview(ctx, "u1", "b1", 5, &content)

	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.NotEmpty(t, review.UUID)
	mockReviewRepo.AssertExpectations(t)
}

// 2. Рейтинг вне диапазона 1..5 — ошибка валидации, до репозиториев не доходим
func TestCreateReview_RatingOutOfRange(t *testing.T) {
	svc, mockReviewRepo, mockBookRepo := newTestReviewService()
	ctx := context.Background()

	_, err := svc.CreateReview(ctx, "u1", "b1", 0, nil)
	assertAPIError(t, err, 400, util.CodeValidationFailed)

	_, err = svc.CreateReview(ctx, "u1", "b1", 6, nil)
	assertAPIError(t, err, 400, util.CodeValidationFailed)

	mockBookRepo.AssertNotCalled(t, "GetByUUID", mock.Anything, mock.Anything)
	mockReviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 3. Отзыв на несуществующую книгу — 404
func TestCreateReview_UnknownBook(t *testing.T) {
	svc, mockReviewRepo, mockBookRepo := newTestReviewService()
	ctx := context.Background()

	mockBookRepo.On("GetByUUID", ctx, "missing").
		Return(nil, util.NotFound(util.CodeNotFound, "книга не найдена"))

	_, err := svc.CreateReview(ctx, "u1", "missing", 4, nil)

	assertAPIError(t, err, 404, util.CodeNotFound)
	mockReviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 4. Правка чужого отзыва запрещена
func TestUpdateReview_NotOwner(t *testing.T) {
	svc, mockReviewRepo, _ := newTestReviewService()
	ctx := context.Background()
	rating := 1

	mockReviewRepo.On("FindByUUID", ctx, "rev1").
		Return(&model.Review{UUID: "rev1", UserUUID: "owner", Rating: 5}, nil)

	_, err := svc.UpdateReview(ctx, "intruder", "rev1", &rating, nil)

	assertAPIError(t, err, 403, util.CodeForbidden)
	mockReviewRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// 5. Владелец правит отзыв, новый рейтинг тоже проверяется
func TestUpdateReview_Owner(t *testing.T) {
	svc, mockReviewRepo, _ := newTestReviewService()
	ctx := context.Background()

	mockReviewRepo.On("FindByUUID", ctx, "rev1").
		Return(&model.Review{UUID: "rev1", UserUUID: "u1", Rating: 5}, nil).Twice()

	bad := 9
	_, err := svc.UpdateReview(ctx, "u1", "rev1", &bad, nil)
	assertAPIError(t, err, 400, util.CodeValidationFailed)

	good := 3
	mockReviewRepo.On("Update", ctx, mock.MatchedBy(func(r *model.Review) bool {
		return r.UUID == "rev1" && r.Rating == 3
	})).Return(nil)

	review, err := svc.UpdateReview(ctx, "u1", "rev1", &good, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, review.Rating)
	mockReviewRepo.AssertExpectations(t)
}

// 6. Удаление чужого отзыва запрещено
func TestDeleteReview_NotOwner(t *testing.T) {
	svc, mockReviewRepo, _ := newTestReviewService()
	ctx := context.Background()

	mockReviewRepo.On("FindByUUID", ctx, "rev1").
		Return(&model.Review{UUID: "rev1", UserUUID: "owner"}, nil)

	err := svc.DeleteReview(ctx, "intruder", "rev1")

	assertAPIError(t, err, 403, util.CodeForbidden)
	mockReviewRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// 7. Владелец удаляет свой отзыв
func TestDeleteReview_Owner(t *testing.T) {
	svc, mockReviewRepo, _ := newTestReviewService()
	ctx := context.Background()

	mockReviewRepo.On("FindByUUID", ctx, "rev1").
		Return(&model.Review{UUID: "rev1", UserUUID: "u1"}, nil)
	mockReviewRepo.On("Delete", ctx, "rev1").Return(nil)

	err := svc.DeleteReview(ctx, "u1", "rev1")

	assert.NoError(t, err)
	mockReviewRepo.AssertExpectations(t)
}
