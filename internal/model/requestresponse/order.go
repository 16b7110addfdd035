package requestresponse

import "bookstore-server/internal/model"

// CreateOrderRequest : запрос на создание заказа
type CreateOrderRequest struct {
	Items []CreateOrderItem `json:"items"`
}

type CreateOrderItem struct {
	BookUUID string `json:"book_uuid" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Quantity int    `json:"quantity" example:"2"`
}

// UpdateOrderStatusRequest : смена статуса заказа (админ)
type UpdateOrderStatusRequest struct {
	Status string `json:"status" example:"PAID"`
}

// OrderResponse : заказ с позициями
type OrderResponse struct {
	Message string       `json:"message"`
	Payload *model.Order `json:"payload"`
}

// OrdersPageResponse : страница заказов пользователя
type OrdersPageResponse struct {
	Message string `json:"message"`
	Payload Page   `json:"payload"`
}
