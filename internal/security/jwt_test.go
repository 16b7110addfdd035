package security_test

import (
	"bookstore-server/config"
	"bookstore-server/internal/model"
	"bookstore-server/internal/security"
	"bookstore-server/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jwtTestNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestJWTService(t *testing.T, secret string) *security.JWTService {
	t.Helper()
	svc, err := security.NewJWTService(&config.JWTConfig{
		SecretKey:       secret,
		Issuer:          "bookstore-server",
		AccessTokenTTL:  "15m",
		RefreshTokenTTL: "720h",
	})
	require.NoError(t, err)
	return svc.WithClock(func() time.Time { return jwtTestNow })
}

// 1. Access токен подписывается и проходит проверку со своими claims
func TestAccessToken_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	signed, err := svc.NewAccessToken("u1", model.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(signed, security.TokenKindAccess)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.Equal(t, security.TokenKindAccess, claims.TokenKind)
	assert.Equal(t, "bookstore-server", claims.Issuer)
}

// 2. Refresh токен несёт уникальный jti и срок жизни из конфигурации
func TestRefreshToken_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	signed, jti, expiresAt, err := svc.NewRefreshToken("u1")
	require.NoError(t, err)
	assert.NotEmpty(t, jti)
	assert.Equal(t, jwtTestNow.Add(720*time.Hour), expiresAt)

	claims, err := svc.ValidateToken(signed, security.TokenKindRefresh)
	require.NoError(t, err)
	assert.Equal(t, jti, claims.ID)
	assert.Equal(t, "u1", claims.Subject)
	assert.Empty(t, claims.Role)
}

// 3. У каждого refresh токена свой jti
func TestRefreshToken_UniqueJTI(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	_, jti1, _, err := svc.NewRefreshToken("u1")
	require.NoError(t, err)
	_, jti2, _, err := svc.NewRefreshToken("u1")
	require.NoError(t, err)

	assert.NotEqual(t, jti1, jti2)
}

// 4. Просроченный токен даёт TOKEN_EXPIRED, а не общий TOKEN_INVALID
func TestValidateToken_Expired(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	signed, err := svc.NewAccessToken("u1", model.RoleUser)
	require.NoError(t, err)

	// переводим часы за границу срока жизни
	svc.WithClock(func() time.Time { return jwtTestNow.Add(16 * time.Minute) })

	_, err = svc.ValidateToken(signed, security.TokenKindAccess)

	var apiErr *util.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, util.CodeTokenExpired, apiErr.Code)
}

// 5. Access токен нельзя предъявить как refresh и наоборот
func TestValidateToken_KindConfusion(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	access, err := svc.NewAccessToken("u1", model.RoleUser)
	require.NoError(t, err)
	refresh, _, _, err := svc.NewRefreshToken("u1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(access, security.TokenKindRefresh)
	assertTokenInvalid(t, err)

	_, err = svc.ValidateToken(refresh, security.TokenKindAccess)
	assertTokenInvalid(t, err)
}

// 6. Токен с чужой подписью отклоняется
func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")
	other := newTestJWTService(t, "other-secret")

	signed, err := other.NewAccessToken("u1", model.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed, security.TokenKindAccess)
	assertTokenInvalid(t, err)
}

// 7. Мусорная строка отклоняется
func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	_, err := svc.ValidateToken("not-a-jwt", security.TokenKindAccess)
	assertTokenInvalid(t, err)
}

// 8. Кривые TTL в конфигурации ловятся на старте
func TestNewJWTService_BadTTL(t *testing.T) {
	_, err := security.NewJWTService(&config.JWTConfig{
		SecretKey:       "s",
		AccessTokenTTL:  "fifteen minutes",
		RefreshTokenTTL: "720h",
	})
	assert.Error(t, err)
}

func assertTokenInvalid(t *testing.T, err error) {
	t.Helper()
	var apiErr *util.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, util.CodeTokenInvalid, apiErr.Code)
}
