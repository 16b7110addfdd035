package ports

import (
	"bookstore-server/internal/model"
	"context"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByUUID(ctx context.Context, uuid string) (*model.Review, error)
	ListByBook(ctx context.Context, bookUUID string, page, size int) ([]model.Review, int, error)
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, uuid string) error
}

type ReviewService interface {
	CreateReview(ctx context.Context, userUUID, bookUUID string, rating int, content *string) (*model.Review, error)
	ListByBook(ctx context.Context, bookUUID string, page, size int) ([]model.Review, int, error)
	UpdateReview(ctx context.Context, userUUID, reviewUUID string, rating *int, content *string) (*model.Review, error)
	DeleteReview(ctx context.Context, userUUID, reviewUUID string) error
}
