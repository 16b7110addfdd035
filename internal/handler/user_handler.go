package handler

import (
	"bookstore-server/internal/model"
	"bookstore-server/internal/model/requestresponse"
	"bookstore-server/internal/ports"
	"bookstore-server/internal/security"
	"bookstore-server/internal/util"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// Register godoc
// @Summary Регистрация пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 201 {object} requestresponse.UserResponse "Пользователь создан"
// @Failure 400 {object} requestresponse.ErrorResponse "Ошибка валидации"
// @Failure 409 {object} requestresponse.ErrorResponse "Email уже используется"
// @Failure 503 {object} requestresponse.ErrorResponse "БД недоступна"
// @Router /api/users/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	var req requestresponse.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.UserService.Register(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(201)
	json.NewEncoder(w).Encode(requestresponse.UserResponse{
		Message: "пользователь зарегистрирован",
		Payload: user,
	})
}

// GetMe godoc
// @Summary Текущий пользователь
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Не авторизован"
// @Router /api/users/me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.UserResponse{
		Message: "текущий пользователь",
		Payload: user,
	})
}

// UpdateMe godoc
// @Summary Изменение данных текущего пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body requestresponse.UpdateMeRequest true "Изменяемые поля"
// @Success 200 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} requestresponse.ErrorResponse "Не авторизован"
// @Router /api/users/me [patch]
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	user, err := security.GetUserFromContext(ctx)
	if err != nil {
		sendError(w, r, err)
		return
	}

	var req requestresponse.UpdateMeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	updated, err := h.UserService.UpdateMe(ctx, user.UUID, req.Name, req.Password)
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.UserResponse{
		Message: "данные обновлены",
		Payload: updated,
	})
}

// DeactivateMe godoc
// @Summary Деактивация аккаунта
// @Description Помечает аккаунт неактивным и отзывает все refresh токены пользователя
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} requestresponse.DeletedResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Не авторизован"
// @Router /api/users/me [delete]
func (h *UserHandler) DeactivateMe(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	user, err := security.GetUserFromContext(ctx)
	if err != nil {
		sendError(w, r, err)
		return
	}

	if err := h.UserService.Deactivate(ctx, user.UUID); err != nil {
		sendError(w, r, err)
		return
	}

	sendDeleted(w, "аккаунт деактивирован")
}

// ListUsers godoc
// @Summary Список пользователей (админ)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Номер страницы (с нуля)"
// @Param size query int false "Размер страницы"
// @Param sort query string false "Сортировка, например created_at,DESC"
// @Param keyword query string false "Поиск по email и имени"
// @Param role query string false "Фильтр по роли"
// @Param isActive query bool false "Фильтр по статусу аккаунта"
// @Success 200 {object} requestresponse.UsersPageResponse
// @Failure 403 {object} requestresponse.ErrorResponse "Недостаточно прав"
// @Router /api/admin/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	filter := model.UserFilter{
		Keyword: r.URL.Query().Get("keyword"),
		Role:    r.URL.Query().Get("role"),
		Sort:    r.URL.Query().Get("sort"),
	}
	if raw := r.URL.Query().Get("isActive"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &active
		}
	}
	filter.Page, filter.Size = pageParams(r)

	users, total, err := h.UserService.ListUsers(ctx, filter)
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.UsersPageResponse{
		Message: "список пользователей",
		Payload: newPage(users, filter.Page, filter.Size, total, filter.Sort),
	})
}

// DeactivateUser godoc
// @Summary Деактивация пользователя (админ)
// @Description Помечает аккаунт неактивным и отзывает все refresh токены пользователя
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "UUID пользователя"
// @Success 200 {object} requestresponse.DeletedResponse
// @Failure 403 {object} requestresponse.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь не найден"
// @Router /api/admin/users/{uuid}/deactivate [patch]
func (h *UserHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.UserService.Deactivate(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		sendError(w, r, err)
		return
	}

	sendDeleted(w, "аккаунт деактивирован")
}

// DeleteUser godoc
// @Summary Полное удаление пользователя (админ)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "UUID пользователя"
// @Success 200 {object} requestresponse.DeletedResponse
// @Failure 403 {object} requestresponse.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь не найден"
// @Router /api/admin/users/{uuid} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.UserService.DeletePermanently(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		sendError(w, r, err)
		return
	}

	sendDeleted(w, "пользователь удалён")
}

// decodeJSON читает тело запроса, при ошибке сам пишет 400 и возвращает err
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		util.LogError("[Handler] некорректное тело запроса", err)
		sendErrorCode(w, r, http.StatusBadRequest, util.CodeBadRequest, "некорректное тело запроса")
		return err
	}
	return nil
}

func sendError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := util.AsAPIError(err)
	if apiErr.Status >= 500 {
		util.LogError("[Handler] "+r.URL.Path, err)
	}
	sendErrorCode(w, r, apiErr.Status, apiErr.Code, apiErr.Message)
}

func sendErrorCode(w http.ResponseWriter, r *http.Request, status int, code string, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
		Timestamp: time.Now().UTC(),
		Path:      r.URL.Path,
		Status:    status,
		Code:      code,
		Message:   message,
	})
}

func sendDeleted(w http.ResponseWriter, message string) {
	resp := requestresponse.DeletedResponse{Message: message}
	resp.Payload.Deleted = true
	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// pageParams разбирает page/size с дефолтами и верхним пределом размера страницы
func pageParams(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size <= 0 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	return page, size
}

func newPage(content interface{}, page, size, total int, sort string) requestresponse.Page {
	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}
	return requestresponse.Page{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		Sort:          sort,
	}
}
