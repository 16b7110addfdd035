package handler

import (
	"bookstore-server/internal/model"
	"bookstore-server/internal/model/requestresponse"
	"bookstore-server/internal/ports"
	"encoding/json"
	"net/http"
)

const refreshCookieName = "refreshToken"

type AuthenticationHandler struct {
	ports.AuthenticationService
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Выдаёт пару access/refresh токенов по email и паролю. Refresh токен дополнительно кладётся в HTTP-only cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.TokensResponse "Успешная аутентификация"
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверные учётные данные или аккаунт деактивирован"
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь не найден"
// @Failure 503 {object} requestresponse.ErrorResponse "БД или Redis недоступны"
// @Router /api/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	var req requestresponse.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Email == "" || req.Password == "" {
		sendErrorCode(w, r, http.StatusBadRequest, "BAD_REQUEST", "email и password обязательны")
		return
	}

	tokens, err := h.AuthenticationService.Login(ctx, req.Email, req.Password)
	if err != nil {
		sendError(w, r, err)
		return
	}

	setRefreshCookie(w, tokens)

	resp := requestresponse.TokensResponse{Message: "успешная аутентификация"}
	resp.Payload.AccessToken = tokens.AccessToken
	resp.Payload.RefreshToken = tokens.RefreshToken

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// Reissue godoc
// @Summary Переиздание пары токенов
// @Description Меняет refresh токен из cookie на новую пару. Предъявленный токен отзывается, повторное использование отклоняется
// @Tags Authentication
// @Produce json
// @Success 200 {object} requestresponse.TokensResponse "Новая пара токенов"
// @Failure 401 {object} requestresponse.ErrorResponse "Токен отсутствует, невалиден, просрочен или уже использован"
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь больше не существует"
// @Failure 503 {object} requestresponse.ErrorResponse "БД или Redis недоступны"
// @Router /api/auth/reissue [post]
func (h *AuthenticationHandler) Reissue(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	tokens, err := h.AuthenticationService.Reissue(ctx, refreshTokenFromRequest(r))
	if err != nil {
		sendError(w, r, err)
		return
	}

	setRefreshCookie(w, tokens)

	resp := requestresponse.TokensResponse{Message: "токены переизданы"}
	resp.Payload.AccessToken = tokens.AccessToken
	resp.Payload.RefreshToken = tokens.RefreshToken

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// Logout godoc
// @Summary Завершение сессии
// @Description Отзывает refresh токен из cookie: jti попадает в denylist и помечается отозванным в реестре
// @Tags Authentication
// @Produce json
// @Success 200 {object} requestresponse.LogoutResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Refresh токен не передан"
// @Failure 401 {object} requestresponse.ErrorResponse "Невалидный токен"
// @Failure 503 {object} requestresponse.ErrorResponse "БД или Redis недоступны"
// @Router /api/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	if err := h.AuthenticationService.Logout(ctx, refreshTokenFromRequest(r)); err != nil {
		sendError(w, r, err)
		return
	}

	clearRefreshCookie(w)

	resp := requestresponse.LogoutResponse{Message: "сессия завершена"}
	resp.Payload.Revoked = true

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// refreshTokenFromRequest достаёт refresh токен из cookie,
// как запасной вариант поддерживается тело {"refreshToken": "..."}
func refreshTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(refreshCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
		return body.RefreshToken
	}

	return ""
}

func setRefreshCookie(w http.ResponseWriter, tokens *model.TokensPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    tokens.RefreshToken,
		Path:     "/api/auth",
		Expires:  tokens.RefreshExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/api/auth",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
