package requestresponse

import "time"

// ErrorResponse : единый формат ошибки API
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Status    int       `json:"status" example:"401"`
	Code      string    `json:"code" example:"UNAUTHORIZED"`
	Message   string    `json:"message" example:"не авторизован"`
}

// Page : обёртка списков с offset-пагинацией
type Page struct {
	Content       interface{} `json:"content"`
	Page          int         `json:"page"`
	Size          int         `json:"size"`
	TotalElements int         `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
	Sort          string      `json:"sort"`
}

// DeletedResponse : ответ на успешное удаление
type DeletedResponse struct {
	Message string `json:"message"`
	Payload struct {
		Deleted bool `json:"deleted" example:"true"`
	} `json:"payload"`
}
