package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Машиночитаемые коды ошибок, стабильная часть API
const (
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUserInactive       = "USER_INACTIVE"
	CodeForbidden          = "FORBIDDEN"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeNotFound           = "RESOURCE_NOT_FOUND"
	CodeBadRequest         = "BAD_REQUEST"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeDuplicate          = "DUPLICATE_RESOURCE"
	CodeUnprocessable      = "UNPROCESSABLE_ENTITY"
	CodeUnavailable        = "SERVICE_UNAVAILABLE"
)

// APIError : типизированная ошибка уровня API.
// Каждая ошибка несёт HTTP статус, машиночитаемый код и сообщение для клиента.
// Ошибки инфраструктуры (БД, Redis недоступны) отличаются от ошибок политики
// статусом 503 и кодом SERVICE_UNAVAILABLE.
type APIError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func NewAPIError(status int, code, message string, err error) *APIError {
	return &APIError{Status: status, Code: code, Message: message, Err: err}
}

func Unauthorized(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func UnauthorizedCode(code, message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Code: code, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{Status: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func NotFound(code, message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Code: code, Message: message}
}

func BadRequest(code, message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: code, Message: message}
}

func Conflict(message string) *APIError {
	return &APIError{Status: http.StatusConflict, Code: CodeDuplicate, Message: message}
}

func Unprocessable(message string) *APIError {
	return &APIError{Status: http.StatusUnprocessableEntity, Code: CodeUnprocessable, Message: message}
}

func Unavailable(message string, err error) *APIError {
	return &APIError{Status: http.StatusServiceUnavailable, Code: CodeUnavailable, Message: message, Err: err}
}

// AsAPIError достаёт *APIError из цепочки ошибок.
// Неизвестные ошибки считаются внутренними (500)
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: "внутренняя ошибка сервера",
		Err:     err,
	}
}
