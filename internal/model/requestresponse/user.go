package requestresponse

import "bookstore-server/internal/model"

// RegisterRequest : запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Name     string `json:"name" example:"Иван"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// UpdateMeRequest : запрос на изменение данных текущего пользователя.
// Изменяются только переданные поля
type UpdateMeRequest struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UserResponse : информация о пользователе
type UserResponse struct {
	Message string      `json:"message"`
	Payload *model.User `json:"payload"`
}

// UsersPageResponse : страница пользователей (админ)
type UsersPageResponse struct {
	Message string `json:"message"`
	Payload Page   `json:"payload"`
}
