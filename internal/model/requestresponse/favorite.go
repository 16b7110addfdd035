package requestresponse

import "bookstore-server/internal/model"

// AddFavoriteRequest : добавить книгу в избранное
type AddFavoriteRequest struct {
	BookUUID string `json:"book_uuid" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
}

// FavoriteResponse : запись избранного
type FavoriteResponse struct {
	Message string          `json:"message"`
	Payload *model.Favorite `json:"payload"`
}

// FavoritesResponse : список избранного пользователя
type FavoritesResponse struct {
	Message string           `json:"message"`
	Payload []model.Favorite `json:"payload"`
}
