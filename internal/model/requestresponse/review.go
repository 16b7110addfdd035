package requestresponse

import "bookstore-server/internal/model"

// CreateReviewRequest : новый отзыв на книгу
type CreateReviewRequest struct {
	Rating  int     `json:"rating" example:"5"`
	Content *string `json:"content,omitempty" example:"Отличная книга"`
}

// UpdateReviewRequest : правка собственного отзыва
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Content *string `json:"content,omitempty"`
}

// ReviewResponse : отзыв
type ReviewResponse struct {
	Message string        `json:"message"`
	Payload *model.Review `json:"payload"`
}

// ReviewsPageResponse : страница отзывов книги
type ReviewsPageResponse struct {
	Message string `json:"message"`
	Payload Page   `json:"payload"`
}
