package handler

import (
	"bookstore-server/internal/model"
	"bookstore-server/internal/model/requestresponse"
	"bookstore-server/internal/ports"
	"bookstore-server/internal/security"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService}
}

// CreateOrder godoc
// @Summary Оформление заказа
// @Description Резервирует книги и фиксирует цены в одной транзакции. При нехватке остатков заказ не создаётся
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body requestresponse.CreateOrderRequest true "Позиции заказа"
// @Success 201 {object} requestresponse.OrderResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Пустой заказ или неверное количество"
// @Failure 404 {object} requestresponse.ErrorResponse "Книга не найдена"
// @Failure 422 {object} requestresponse.ErrorResponse "Недостаточно книг на складе"
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	user, err := security.GetUserFromContext(ctx)
	if err != nil {
		sendError(w, r, err)
		return
	}

	var req requestresponse.CreateOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.OrderItem{
			BookUUID: item.BookUUID,
			Quantity: item.Quantity,
		})
	}

	order, err := h.OrderService.CreateOrder(ctx, user.UUID, items)
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(201)
	json.NewEncoder(w).Encode(requestresponse.OrderResponse{
		Message: "заказ оформлен",
		Payload: order,
	})
}

// GetOrder godoc
// @Summary Заказ пользователя
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "UUID заказа"
// @Success 200 {object} requestresponse.OrderResponse
// @Failure 403 {object} requestresponse.ErrorResponse "Чужой заказ"
// @Failure 404 {object} requestresponse.ErrorResponse "Заказ не найден"
// @Router /api/orders/{uuid} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	user, err := security.GetUserFromContext(ctx)
	if err != nil {
		sendError(w, r, err)
		return
	}

	order, err := h.OrderService.GetMyOrder(ctx, user.UUID, chi.URLParam(r, "uuid"))
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.OrderResponse{
		Message: "заказ",
		Payload: order,
	})
}

// ListOrders godoc
// @Summary Заказы пользователя
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Номер страницы (с нуля)"
// @Param size query int false "Размер страницы"
// @Param status query string false "Фильтр по статусу"
// @Success 200 {object} requestresponse.OrdersPageResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неизвестный статус"
// @Router /api/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	user, err := security.GetUserFromContext(ctx)
	if err != nil {
		sendError(w, r, err)
		return
	}

	page, size := pageParams(r)
	status := r.URL.Query().Get("status")

	orders, total, err := h.OrderService.ListMyOrders(ctx, user.UUID, status, page, size)
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.OrdersPageResponse{
		Message: "заказы пользователя",
		Payload: newPage(orders, page, size, total, ""),
	})
}

// UpdateStatus godoc
// @Summary Смена статуса заказа (админ)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "UUID заказа"
// @Param body body requestresponse.UpdateOrderStatusRequest true "Новый статус"
// @Success 200 {object} requestresponse.OrderResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неизвестный статус"
// @Failure 403 {object} requestresponse.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} requestresponse.ErrorResponse "Заказ не найден"
// @Router /api/admin/orders/{uuid}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.UpdateOrderStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	order, err := h.OrderService.UpdateStatus(r.Context(), chi.URLParam(r, "uuid"), req.Status)
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.OrderResponse{
		Message: "статус обновлён",
		Payload: order,
	})
}
