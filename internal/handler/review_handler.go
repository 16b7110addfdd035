package handler

import (
	"bookstore-server/internal/model/requestresponse"
	"bookstore-server/internal/ports"
	"bookstore-server/internal/security"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type ReviewHandler struct {
	ports.ReviewService
}

func NewReviewHandler(reviewService ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService}
}

// ListByBook godoc
// @Summary Отзывы на книгу
// @Tags Reviews
// @Produce json
// @Param uuid path string true "UUID книги"
// @Param page query int false "Номер страницы (с нуля)"
// @Param size query int false "Размер страницы"
// @Success 200 {object} requestresponse.ReviewsPageResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Книга не найдена"
// @Router /api/public/books/{uuid}/reviews [get]
func (h *ReviewHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	page, size := pageParams(r)

	reviews, total, err := h.ReviewService.ListByBook(r.Context(), chi.URLParam(r, "uuid"), page, size)
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.ReviewsPageResponse{
		Message: "отзывы на книгу",
		Payload: newPage(reviews, page, size, total, ""),
	})
}

// CreateReview godoc
// @Summary Новый отзыв на книгу
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "UUID книги"
// @Param body body requestresponse.CreateReviewRequest true "Тело запроса"
// @Success 201 {object} requestresponse.ReviewResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Оценка вне диапазона 1..5"
// @Failure 404 {object} requestresponse.ErrorResponse "Книга не найдена"
// @Router /api/books/{uuid}/reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	user, err := security.GetUserFromContext(ctx)
	if err != nil {
		sendError(w, r, err)
		return
	}

	var req requestresponse.CreateReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	review, err := h.ReviewService.CreateReview(ctx, user.UUID, chi.URLParam(r, "uuid"), req.Rating, req.Content)
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(201)
	json.NewEncoder(w).Encode(requestresponse.ReviewResponse{
		Message: "отзыв добавлен",
		Payload: review,
	})
}

// UpdateReview godoc
// @Summary Правка собственного отзыва
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "UUID отзыва"
// @Param body body requestresponse.UpdateReviewRequest true "Изменяемые поля"
// @Success 200 {object} requestresponse.ReviewResponse
// @Failure 403 {object} requestresponse.ErrorResponse "Чужой отзыв"
// @Failure 404 {object} requestresponse.ErrorResponse "Отзыв не найден"
// @Router /api/reviews/{uuid} [patch]
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	user, err := security.GetUserFromContext(ctx)
	if err != nil {
		sendError(w, r, err)
		return
	}

	var req requestresponse.UpdateReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	review, err := h.ReviewService.UpdateReview(ctx, user.UUID, chi.URLParam(r, "uuid"), req.Rating, req.Content)
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.ReviewResponse{
		Message: "отзыв обновлён",
		Payload: review,
	})
}

// DeleteReview godoc
// @Summary Удаление собственного отзыва
// @Tags Reviews
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "UUID отзыва"
// @Success 200 {object} requestresponse.DeletedResponse
// @Failure 403 {object} requestresponse.ErrorResponse "Чужой отзыв"
// @Failure 404 {object} requestresponse.ErrorResponse "Отзыв не найден"
// @Router /api/reviews/{uuid} [delete]
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	user, err := security.GetUserFromContext(ctx)
	if err != nil {
		sendError(w, r, err)
		return
	}

	if err := h.ReviewService.DeleteReview(ctx, user.UUID, chi.URLParam(r, "uuid")); err != nil {
		sendError(w, r, err)
		return
	}

	sendDeleted(w, "отзыв удалён")
}
