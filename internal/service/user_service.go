package service

import (
	"bookstore-server/internal/model"
	"bookstore-server/internal/ports"
	"bookstore-server/internal/security"
	"bookstore-server/internal/util"
	"context"
	"fmt"
	"time"
	"unicode"

	"github.com/google/uuid"
)

type UserService struct {
	userRepository ports.UserRepository
	ledger         ports.TokenLedgerInterface
}

func NewUserService(userRepository ports.UserRepository, ledger ports.TokenLedgerInterface) *UserService {
	return &UserService{
		userRepository: userRepository,
		ledger:         ledger,
	}
}

// Register создаёт нового пользователя с ролью ROLE_USER
func (s *UserService) Register(ctx context.Context, email, name, password string) (*model.User, error) {
	if email == "" || name == "" {
		return nil, util.BadRequest(util.CodeValidationFailed, "email и name обязательны")
	}

	if err := validatePassword(password); err != nil {
		return nil, util.BadRequest(util.CodeValidationFailed, err.Error())
	}

	exists, err := s.userRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.Conflict("email уже используется")
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, util.LogError("[UserService] не удалось создать хэш пароля", err)
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         model.RoleUser,
		IsActive:     true,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *UserService) GetUser(ctx context.Context, uuid string) (*model.User, error) {
	return s.userRepository.FindByUUID(ctx, uuid)
}

// UpdateMe меняет имя и/или пароль текущего пользователя
func (s *UserService) UpdateMe(ctx context.Context, uuid string, name *string, password *string) (*model.User, error) {
	user, err := s.userRepository.FindByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}

	if name != nil {
		user.Name = *name
		if err := s.userRepository.UpdateUser(ctx, user); err != nil {
			return nil, err
		}
	}

	if password != nil {
		if err := validatePassword(*password); err != nil {
			return nil, util.BadRequest(util.CodeValidationFailed, err.Error())
		}

		hash, err := security.HashPassword(*password)
		if err != nil {
			return nil, util.LogError("[UserService] не удалось создать хэш пароля", err)
		}
		if err := s.userRepository.UpdatePassword(ctx, uuid, hash); err != nil {
			return nil, err
		}
	}

	return s.userRepository.FindByUUID(ctx, uuid)
}

// Deactivate выключает аккаунт и отзывает все его refresh-токены:
// деактивированный пользователь не должен переиздать сессию
func (s *UserService) Deactivate(ctx context.Context, uuid string) error {
	if err := s.userRepository.SetActive(ctx, uuid, false); err != nil {
		return err
	}

	if err := s.ledger.RevokeAllForUser(ctx, uuid, time.Now()); err != nil {
		return err
	}

	return nil
}

// DeletePermanently полностью удаляет аккаунт
func (s *UserService) DeletePermanently(ctx context.Context, uuid string) error {
	if err := s.ledger.RevokeAllForUser(ctx, uuid, time.Now()); err != nil {
		return err
	}
	return s.userRepository.DeleteUser(ctx, uuid)
}

// ListUsers : выборка пользователей для админки
func (s *UserService) ListUsers(ctx context.Context, filter model.UserFilter) ([]model.User, int, error) {
	return s.userRepository.ListUsers(ctx, filter)
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("пароль должен содержать минимум 8 символов")
	}

	var upperCount, lowerCount, digitCount, specialCount int

	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			upperCount++
		case unicode.IsLower(c):
			lowerCount++
		case unicode.IsDigit(c):
			digitCount++
		case unicode.IsPunct(c) || unicode.IsSymbol(c):
			specialCount++
		}
	}

	if upperCount == 0 || lowerCount == 0 {
		return fmt.Errorf("пароль должен содержать буквы в разных регистрах")
	}
	if digitCount < 1 {
		return fmt.Errorf("пароль должен содержать хотя бы одну цифру")
	}
	if specialCount < 1 {
		return fmt.Errorf("пароль должен содержать хотя бы один специальный символ")
	}

	return nil
}
