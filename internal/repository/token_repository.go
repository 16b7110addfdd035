package repository

import (
	"bookstore-server/config"
	"bookstore-server/internal/model"
	"bookstore-server/internal/util"
	"context"
	"database/sql"
	"errors"
	"time"
)

// ErrTokenAlreadyRevoked возвращается, когда отзыв не прошёл по оптимистичной
// проверке is_revoked = FALSE: токен уже был отозван или переиздан параллельным
// запросом. Из двух конкурентных переизданий выигрывает ровно одно
var ErrTokenAlreadyRevoked = errors.New("refresh токен уже отозван")

// TokenRepository : реестр refresh-токенов.
// Строки никогда не удаляются, отозванные остаются для аудита
type TokenRepository struct {
	*config.Database
}

func NewTokenRepository(database *config.Database) *TokenRepository {
	return &TokenRepository{database}
}

// SaveRefreshToken сохраняет новую запись реестра
func (r *TokenRepository) SaveRefreshToken(ctx context.Context, refreshToken *model.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (uuid, user_uuid, jti, expires_at, is_revoked)
				VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		refreshToken.UUID,
		refreshToken.UserUUID,
		refreshToken.JTI,
		refreshToken.ExpiresAt,
		refreshToken.IsRevoked,
	)

	if err != nil {
		return util.Unavailable("ошибка вставки refresh токена в БД", err)
	}

	return nil
}

// FindByJTI ищет запись по jti.
// Возвращает (nil, nil), если запись не найдена
func (r *TokenRepository) FindByJTI(ctx context.Context, jti string) (*model.RefreshToken, error) {
	query := `SELECT uuid, user_uuid, jti, expires_at, is_revoked, revoked_at, created_at
				FROM refresh_tokens WHERE jti = $1`

	refreshToken := &model.RefreshToken{}

	err := r.DB.QueryRowContext(ctx, query, jti).Scan(
		&refreshToken.UUID,
		&refreshToken.UserUUID,
		&refreshToken.JTI,
		&refreshToken.ExpiresAt,
		&refreshToken.IsRevoked,
		&refreshToken.RevokedAt,
		&refreshToken.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.Unavailable("ошибка поиска refresh токена", err)
	}

	return refreshToken, nil
}

// RevokeByJTI помечает токен отозванным.
// Обновление проходит только если токен ещё не был отозван, проигравший
// конкурентный вызов получает ErrTokenAlreadyRevoked
func (r *TokenRepository) RevokeByJTI(ctx context.Context, jti string, revokedAt time.Time) error {
	query := `UPDATE refresh_tokens SET is_revoked = TRUE, revoked_at = $2
				WHERE jti = $1 AND is_revoked = FALSE`

	result, err := r.DB.ExecContext(ctx, query, jti, revokedAt)
	if err != nil {
		return util.Unavailable("не удалось отозвать refresh токен", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.Unavailable("не удалось проверить, отозван ли токен", err)
	}
	if rowsAffected == 0 {
		return ErrTokenAlreadyRevoked
	}

	return nil
}

// RevokeAllForUser отзывает все активные refresh-токены пользователя,
// используется при деактивации и удалении аккаунта
func (r *TokenRepository) RevokeAllForUser(ctx context.Context, userUUID string, revokedAt time.Time) error {
	query := `UPDATE refresh_tokens SET is_revoked = TRUE, revoked_at = $2
				WHERE user_uuid = $1 AND is_revoked = FALSE`

	_, err := r.DB.ExecContext(ctx, query, userUUID, revokedAt)
	if err != nil {
		return util.Unavailable("не удалось отозвать refresh токены пользователя", err)
	}

	return nil
}
