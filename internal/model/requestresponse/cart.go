package requestresponse

import "bookstore-server/internal/model"

// AddCartItemRequest : положить книгу в корзину
type AddCartItemRequest struct {
	BookUUID string `json:"book_uuid" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Quantity int    `json:"quantity" example:"1"`
}

// UpdateCartItemRequest : изменить количество
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" example:"3"`
}

// CartItemResponse : позиция корзины
type CartItemResponse struct {
	Message string          `json:"message"`
	Payload *model.CartItem `json:"payload"`
}

// CartResponse : содержимое корзины
type CartResponse struct {
	Message string           `json:"message"`
	Payload []model.CartItem `json:"payload"`
}
