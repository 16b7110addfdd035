package handler

import (
	"bookstore-server/internal/model/requestresponse"
	"bookstore-server/internal/ports"
	"bookstore-server/internal/security"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	ports.CartService
}

func NewCartHandler(cartService ports.CartService) *CartHandler {
	return &CartHandler{cartService}
}

// ListItems godoc
// @Summary Содержимое корзины
// @Tags Carts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} requestresponse.CartResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Не авторизован"
// @Router /api/carts/items [get]
func (h *CartHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	user, err := security.GetUserFromContext(ctx)
	if err != nil {
		sendError(w, r, err)
		return
	}

	items, err := h.CartService.ListItems(ctx, user.UUID)
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.CartResponse{
		Message: "содержимое корзины",
		Payload: items,
	})
}

// AddItem godoc
// @Summary Добавление книги в корзину
// @Description Если книга уже в корзине, количество суммируется
// @Tags Carts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body requestresponse.AddCartItemRequest true "Тело запроса"
// @Success 201 {object} requestresponse.CartItemResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Ошибка валидации"
// @Failure 404 {object} requestresponse.ErrorResponse "Книга не найдена"
// @Router /api/carts/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	user, err := security.GetUserFromContext(ctx)
	if err != nil {
		sendError(w, r, err)
		return
	}

	var req requestresponse.AddCartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	item, err := h.CartService.AddItem(ctx, user.UUID, req.BookUUID, req.Quantity)
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(201)
	json.NewEncoder(w).Encode(requestresponse.CartItemResponse{
		Message: "книга добавлена в корзину",
		Payload: item,
	})
}

// UpdateItem godoc
// @Summary Изменение количества в позиции корзины
// @Tags Carts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "UUID позиции"
// @Param body body requestresponse.UpdateCartItemRequest true "Тело запроса"
// @Success 200 {object} requestresponse.CartItemResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Позиция не найдена"
// @Router /api/carts/items/{uuid} [patch]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	user, err := security.GetUserFromContext(ctx)
	if err != nil {
		sendError(w, r, err)
		return
	}

	var req requestresponse.UpdateCartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	item, err := h.CartService.UpdateItem(ctx, user.UUID, chi.URLParam(r, "uuid"), req.Quantity)
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.CartItemResponse{
		Message: "количество обновлено",
		Payload: item,
	})
}

// RemoveItem godoc
// @Summary Удаление позиции из корзины
// @Tags Carts
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "UUID позиции"
// @Success 200 {object} requestresponse.DeletedResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Позиция не найдена"
// @Router /api/carts/items/{uuid} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	user, err := security.GetUserFromContext(ctx)
	if err != nil {
		sendError(w, r, err)
		return
	}

	if err := h.CartService.RemoveItem(ctx, user.UUID, chi.URLParam(r, "uuid")); err != nil {
		sendError(w, r, err)
		return
	}

	sendDeleted(w, "позиция удалена")
}

// Clear godoc
// @Summary Очистка корзины
// @Tags Carts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} requestresponse.DeletedResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Не авторизован"
// @Router /api/carts [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	user, err := security.GetUserFromContext(ctx)
	if err != nil {
		sendError(w, r, err)
		return
	}

	if err := h.CartService.Clear(ctx, user.UUID); err != nil {
		sendError(w, r, err)
		return
	}

	sendDeleted(w, "корзина очищена")
}
