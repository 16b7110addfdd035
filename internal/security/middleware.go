package security

import (
	"bookstore-server/internal/model"
	"bookstore-server/internal/model/requestresponse"
	"bookstore-server/internal/util"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// UserDirectory : минимальный доступ к пользователям, нужный middleware
type UserDirectory interface {
	FindByUUID(ctx context.Context, uuid string) (*model.User, error)
}

// JWTMiddleware аутентифицирует запрос по access токену.
// Реестр refresh-токенов и Redis здесь не трогаются: access токен
// короткоживущий и проверяется только подписью и сроком
func JWTMiddleware(jwtService *JWTService, users UserDirectory) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := extractAccessToken(request)
			if token == "" {
				writeAuthError(writer, request, util.Unauthorized("требуется авторизация"))
				return
			}

			claims, err := jwtService.ValidateToken(token, TokenKindAccess)
			if err != nil {
				log.Printf("невалидный access токен: %v", err)
				writeAuthError(writer, request, err)
				return
			}

			if claims.Subject == "" {
				writeAuthError(writer, request, util.Unauthorized("невалидный токен"))
				return
			}

			user, err := users.FindByUUID(request.Context(), claims.Subject)
			if err != nil {
				apiErr := util.AsAPIError(err)
				if apiErr.Code == util.CodeUnavailable {
					writeAuthError(writer, request, apiErr)
					return
				}
				writeAuthError(writer, request, util.Unauthorized("невалидный токен"))
				return
			}

			if !user.IsActive {
				writeAuthError(writer, request, util.UnauthorizedCode(util.CodeUserInactive, "аккаунт деактивирован"))
				return
			}

			req := request.WithContext(context.WithValue(request.Context(), UserContextKey, user))
			next.ServeHTTP(writer, req)
		})
	}
}

// RequireRoles пропускает только пользователей с одной из перечисленных ролей
func RequireRoles(roles ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			user, err := GetUserFromContext(request.Context())
			if err != nil {
				writeAuthError(writer, request, util.Unauthorized("требуется авторизация"))
				return
			}

			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(writer, request)
					return
				}
			}

			writeAuthError(writer, request, util.Forbidden("доступ запрещён"))
		})
	}
}

func GetUserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(UserContextKey).(*model.User)
	if !ok || user == nil {
		return nil, util.Unauthorized("не авторизован")
	}
	return user, nil
}

// extractAccessToken берёт токен из заголовка Authorization,
// как запасной вариант поддерживается cookie accessToken
func extractAccessToken(request *http.Request) string {
	authorizationHeader := request.Header.Get("Authorization")
	if strings.HasPrefix(authorizationHeader, "Bearer ") {
		return strings.TrimPrefix(authorizationHeader, "Bearer ")
	}

	if cookie, err := request.Cookie("accessToken"); err == nil {
		return cookie.Value
	}

	return ""
}

func writeAuthError(writer http.ResponseWriter, request *http.Request, err error) {
	apiErr := util.AsAPIError(err)

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(apiErr.Status)
	json.NewEncoder(writer).Encode(requestresponse.ErrorResponse{
		Timestamp: time.Now().UTC(),
		Path:      request.URL.Path,
		Status:    apiErr.Status,
		Code:      apiErr.Code,
		Message:   apiErr.Message,
	})
}
