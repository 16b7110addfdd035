package security

import (
	"bookstore-server/config"
	"bookstore-server/internal/util"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenKindAccess и TokenKindRefresh защищают от подмены назначения токена:
	// access нельзя предъявить там, где ждут refresh, и наоборот
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

type Claims struct {
	Role      string `json:"role,omitempty"`
	TokenKind string `json:"token_kind"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey  []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewJWTService(cfg *config.JWTConfig) (*JWTService, error) {
	accessTTL, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка парсинга access_token_ttl", err)
	}

	refreshTTL, err := time.ParseDuration(cfg.RefreshTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка парсинга refresh_token_ttl", err)
	}

	return &JWTService{
		secretKey:  []byte(cfg.SecretKey),
		issuer:     cfg.Issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

// WithClock подменяет источник времени, используется в тестах
func (service *JWTService) WithClock(now func() time.Time) *JWTService {
	service.now = now
	return service
}

// NewAccessToken выпускает подписанный access токен для пользователя.
// Токен нигде не сохраняется, проверяется только подписью и сроком жизни
func (service *JWTService) NewAccessToken(subject string, role string) (string, error) {
	issuedAt := service.now()
	claims := Claims{
		Role:      role,
		TokenKind: TokenKindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(service.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    service.issuer,
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := jwtToken.SignedString(service.secretKey)
	if err != nil {
		return "", util.LogError("ошибка подписи access токена", err)
	}

	return signed, nil
}

// NewRefreshToken выпускает refresh токен со свежим jti.
// Сохранение jti в реестре — ответственность вызывающего
func (service *JWTService) NewRefreshToken(subject string) (string, string, time.Time, error) {
	issuedAt := service.now()
	expiresAt := issuedAt.Add(service.refreshTTL)
	jti := uuid.New().String()

	claims := Claims{
		TokenKind: TokenKindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    service.issuer,
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := jwtToken.SignedString(service.secretKey)
	if err != nil {
		return "", "", time.Time{}, util.LogError("ошибка подписи refresh токена", err)
	}

	return signed, jti, expiresAt, nil
}

// ValidateToken проверяет подпись, срок жизни и назначение токена
func (service *JWTService) ValidateToken(jwtTokenStr string, kind string) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return service.secretKey, nil
	}, jwt.WithTimeFunc(service.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, util.UnauthorizedCode(util.CodeTokenExpired, "токен просрочен")
		}
		return nil, util.UnauthorizedCode(util.CodeTokenInvalid, "невалидный токен")
	}
	if !jwtToken.Valid {
		return nil, util.UnauthorizedCode(util.CodeTokenInvalid, "невалидный токен")
	}

	if claims.TokenKind != kind {
		return nil, util.UnauthorizedCode(util.CodeTokenInvalid, "невалидный токен")
	}

	return claims, nil
}
