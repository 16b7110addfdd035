package ports

import (
	"bookstore-server/internal/model"
	"bookstore-server/internal/security"
	"context"
	"time"
)

// TokenLedgerInterface : реестр выданных refresh-токенов, источник истины
// по вопросу «можно ли ещё пользоваться этим refresh-токеном»
type TokenLedgerInterface interface {
	SaveRefreshToken(ctx context.Context, token *model.RefreshToken) error
	FindByJTI(ctx context.Context, jti string) (*model.RefreshToken, error)
	RevokeByJTI(ctx context.Context, jti string, revokedAt time.Time) error
	RevokeAllForUser(ctx context.Context, userUUID string, revokedAt time.Time) error
}

type JWTServiceInterface interface {
	NewAccessToken(subject string, role string) (string, error)
	NewRefreshToken(subject string) (string, string, time.Time, error)
	ValidateToken(tokenString string, kind string) (*security.Claims, error)
}
