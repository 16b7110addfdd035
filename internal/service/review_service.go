package service

import (
	"bookstore-server/internal/model"
	"bookstore-server/internal/ports"
	"bookstore-server/internal/util"
	"context"

	"github.com/google/uuid"
)

type ReviewService struct {
	reviewRepository ports.ReviewRepository
	bookRepository   ports.BookRepository
}

func NewReviewService(reviewRepository ports.ReviewRepository, bookRepository ports.BookRepository) *ReviewService {
	return &ReviewService{
		reviewRepository: reviewRepository,
		bookRepository:   bookRepository,
	}
}

// CreateReview : новый отзыв на книгу, рейтинг 1..5
func (s *ReviewService) CreateReview(ctx context.Context, userUUID, bookUUID string, rating int, content *string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, util.BadRequest(util.CodeValidationFailed, "рейтинг должен быть от 1 до 5")
	}

	if _, err := s.bookRepository.GetByUUID(ctx, bookUUID); err != nil {
		return nil, err
	}

	review := &model.Review{
		UUID:     uuid.New().String(),
		UserUUID: userUUID,
		BookUUID: bookUUID,
		Rating:   rating,
		Content:  content,
	}
	if err := s.reviewRepository.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) ListByBook(ctx context.Context, bookUUID string, page, size int) ([]model.Review, int, error) {
	if _, err := s.bookRepository.GetByUUID(ctx, bookUUID); err != nil {
		return nil, 0, err
	}
	return s.reviewRepository.ListByBook(ctx, bookUUID, page, size)
}

// UpdateReview : правка собственного отзыва
func (s *ReviewService) UpdateReview(ctx context.Context, userUUID, reviewUUID string, rating *int, content *string) (*model.Review, error) {
	review, err := s.reviewRepository.FindByUUID(ctx, reviewUUID)
	if err != nil {
		return nil, err
	}

	if review.UserUUID != userUUID {
		return nil, util.Forbidden("можно править только свой отзыв")
	}

	if rating != nil {
		if *rating < 1 || *rating > 5 {
			return nil, util.BadRequest(util.CodeValidationFailed, "рейтинг должен быть от 1 до 5")
		}
		review.Rating = *rating
	}
	if content != nil {
		review.Content = content
	}

	if err := s.reviewRepository.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// DeleteReview : удаление собственного отзыва
func (s *ReviewService) DeleteReview(ctx context.Context, userUUID, reviewUUID string) error {
	review, err := s.reviewRepository.FindByUUID(ctx, reviewUUID)
	if err != nil {
		return err
	}

	if review.UserUUID != userUUID {
		return util.Forbidden("можно удалить только свой отзыв")
	}

	return s.reviewRepository.Delete(ctx, reviewUUID)
}
