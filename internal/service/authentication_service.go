package service

import (
	"bookstore-server/internal/model"
	"bookstore-server/internal/ports"
	"bookstore-server/internal/repository"
	"bookstore-server/internal/security"
	"bookstore-server/internal/util"
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
)

// AuthenticationService управляет жизненным циклом refresh-токенов.
// Порядок проверок при переиздании: сначала denylist в Redis (дешёвый
// отсев), затем реестр в БД (источник истины). Отзыв предъявленного
// токена выполняется строго до выпуска нового: при падении между этими
// шагами пользователь теряет сессию, но токен не раздваивается
type AuthenticationService struct {
	ledger         ports.TokenLedgerInterface
	revocationList ports.RevocationCache
	jwtService     ports.JWTServiceInterface
	userRepository ports.UserRepository
	now            func() time.Time
}

func NewAuthenticationService(
	ledger ports.TokenLedgerInterface,
	revocationList ports.RevocationCache,
	jwtService ports.JWTServiceInterface,
	userRepository ports.UserRepository,
) *AuthenticationService {
	return &AuthenticationService{
		ledger:         ledger,
		revocationList: revocationList,
		jwtService:     jwtService,
		userRepository: userRepository,
		now:            time.Now,
	}
}

// WithClock подменяет источник времени, используется в тестах
func (s *AuthenticationService) WithClock(now func() time.Time) *AuthenticationService {
	s.now = now
	return s
}

// Login проверяет учётные данные и выдаёт пару токенов.
// Побочный эффект — одна новая строка в реестре refresh-токенов
func (s *AuthenticationService) Login(ctx context.Context, email, password string) (*model.TokensPair, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, util.UnauthorizedCode(util.CodeInvalidCredentials, "неверный email или пароль")
	}

	if !user.IsActive {
		return nil, util.UnauthorizedCode(util.CodeUserInactive, "аккаунт деактивирован")
	}

	return s.issueTokens(ctx, user.UUID, user.Role)
}

// Reissue меняет предъявленный refresh-токен на новую пару.
// Токен одноразовый: второй вызов с тем же токеном всегда отклоняется,
// в том числе у проигравшего из двух конкурентных вызовов
func (s *AuthenticationService) Reissue(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	if refreshToken == "" {
		return nil, util.Unauthorized("требуется refresh токен")
	}

	claims, err := s.jwtService.ValidateToken(refreshToken, security.TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	jti := claims.ID
	subject := claims.Subject
	if jti == "" || subject == "" {
		return nil, util.UnauthorizedCode(util.CodeTokenInvalid, "невалидный токен")
	}

	blacklisted, err := s.revocationList.IsRefreshJTIBlacklisted(ctx, jti)
	if err != nil {
		// denylist — оптимизация, при недоступном Redis решает реестр
		log.Printf("ошибка проверки denylist, продолжаем по реестру: %v", err)
	} else if blacklisted {
		log.Printf("refresh token %s в denylist", jti)
		return nil, util.Unauthorized("невалидный токен")
	}

	storedToken, err := s.ledger.FindByJTI(ctx, jti)
	if err != nil {
		return nil, err
	}
	if storedToken == nil || storedToken.IsRevoked {
		log.Printf("refresh token %s отсутствует в реестре или отозван", jti)
		return nil, util.Unauthorized("невалидный токен")
	}

	// роль перечитывается из БД: с момента выдачи она могла измениться
	user, err := s.userRepository.FindByUUID(ctx, subject)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, util.UnauthorizedCode(util.CodeUserInactive, "аккаунт деактивирован")
	}

	// отзыв строго до выпуска новой пары
	if err := s.ledger.RevokeByJTI(ctx, jti, s.now()); err != nil {
		if errors.Is(err, repository.ErrTokenAlreadyRevoked) {
			log.Printf("refresh token %s: конкурентное переиздание, токен уже отозван", jti)
			return nil, util.Unauthorized("невалидный токен")
		}
		return nil, err
	}

	return s.issueTokens(ctx, user.UUID, user.Role)
}

// Logout отзывает refresh-токен: jti попадает в denylist на остаток
// жизни токена и помечается отозванным в реестре. Повторный logout и
// logout неизвестного токена не считаются ошибкой — ответ не должен
// раскрывать, выдавался ли такой jti вообще
func (s *AuthenticationService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return util.BadRequest(util.CodeBadRequest, "требуется refresh токен")
	}

	claims, err := s.jwtService.ValidateToken(refreshToken, security.TokenKindRefresh)
	if err != nil {
		return err
	}

	jti := claims.ID
	if jti == "" {
		return util.UnauthorizedCode(util.CodeTokenInvalid, "невалидный токен")
	}

	if claims.ExpiresAt != nil {
		remaining := claims.ExpiresAt.Time.Sub(s.now())
		if remaining > 0 {
			// запись в denylist best-effort: реестр всё равно источник истины
			if err := s.revocationList.BlacklistRefreshJTI(ctx, jti, remaining); err != nil {
				log.Printf("не удалось записать jti %s в denylist: %v", jti, err)
			}
		}
	}

	if err := s.ledger.RevokeByJTI(ctx, jti, s.now()); err != nil {
		if errors.Is(err, repository.ErrTokenAlreadyRevoked) {
			return nil
		}
		return err
	}

	return nil
}

// issueTokens выпускает пару токенов и регистрирует refresh в реестре
func (s *AuthenticationService) issueTokens(ctx context.Context, userUUID, role string) (*model.TokensPair, error) {
	accessToken, err := s.jwtService.NewAccessToken(userUUID, role)
	if err != nil {
		return nil, util.LogError("ошибка генерации access токена", err)
	}

	refreshToken, jti, expiresAt, err := s.jwtService.NewRefreshToken(userUUID)
	if err != nil {
		return nil, util.LogError("ошибка генерации refresh токена", err)
	}

	record := &model.RefreshToken{
		UUID:      uuid.New().String(),
		UserUUID:  userUUID,
		JTI:       jti,
		ExpiresAt: expiresAt,
		IsRevoked: false,
	}
	if err := s.ledger.SaveRefreshToken(ctx, record); err != nil {
		return nil, err
	}

	return &model.TokensPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: expiresAt,
	}, nil
}
