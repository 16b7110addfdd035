package repository

import (
	"bookstore-server/config"
	"bookstore-server/internal/model"
	"bookstore-server/internal/util"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, email, name, password_hash, role, is_active, provider, provider_user_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING uuid, email, name, role, is_active, created_at
	`

	createdUser := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query,
		user.UUID, user.Email, user.Name, user.PasswordHash, user.Role, user.IsActive,
		user.Provider, user.ProviderUserID,
	).Scan(
		&createdUser.UUID, &createdUser.Email, &createdUser.Name,
		&createdUser.Role, &createdUser.IsActive, &createdUser.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// гонка регистраций: уникальный индекс по email сработал после проверки ExistsByEmail
			return nil, util.Conflict("email уже используется")
		}
		return nil, util.Unavailable("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByUUID : ищет пользователя по UUID
func (r *UserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	query := `SELECT uuid, email, name, password_hash, role, is_active, provider, provider_user_id, created_at, updated_at
				FROM users WHERE uuid = $1`
	var user model.User
	err := sqlx.GetContext(ctx, r.DB, &user, query, uuid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.NotFound(util.CodeUserNotFound, "пользователь не найден")
		}
		return nil, util.Unavailable("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}

// FindByEmail : ищет пользователя по email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT uuid, email, name, password_hash, role, is_active, provider, provider_user_id, created_at, updated_at
				FROM users WHERE email = $1`
	var user model.User
	err := sqlx.GetContext(ctx, r.DB, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.NotFound(util.CodeUserNotFound, "пользователь не найден")
		}
		return nil, util.Unavailable("[UserRepo] не удалось найти пользователя по email", err)
	}
	return &user, nil
}

// ExistsByEmail : проверка занятости email при регистрации
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	err := sqlx.GetContext(ctx, r.DB, &exists, query, email)
	if err != nil {
		return false, util.Unavailable("[UserRepo] ошибка проверки email", err)
	}
	return exists, nil
}

// UpdateUser : обновляет имя пользователя
func (r *UserRepository) UpdateUser(ctx context.Context, user *model.User) error {
	query := `UPDATE users SET name = $2, updated_at = NOW() WHERE uuid = $1`
	_, err := r.DB.ExecContext(ctx, query, user.UUID, user.Name)
	if err != nil {
		return util.Unavailable("[UserRepo] не удалось обновить пользователя", err)
	}
	return nil
}

// UpdatePassword : меняет пароль пользователя
func (r *UserRepository) UpdatePassword(ctx context.Context, uuid, newPasswordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE uuid = $1`
	_, err := r.DB.ExecContext(ctx, query, uuid, newPasswordHash)
	if err != nil {
		return util.Unavailable("[UserRepo] не удалось обновить пароль", err)
	}
	return nil
}

// SetActive : включает или выключает аккаунт (soft delete)
func (r *UserRepository) SetActive(ctx context.Context, uuid string, active bool) error {
	query := `UPDATE users SET is_active = $2, updated_at = NOW() WHERE uuid = $1`
	result, err := r.DB.ExecContext(ctx, query, uuid, active)
	if err != nil {
		return util.Unavailable("[UserRepo] не удалось изменить статус аккаунта", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.Unavailable("[UserRepo] не удалось проверить смену статуса", err)
	}
	if rowsAffected == 0 {
		return util.NotFound(util.CodeUserNotFound, "пользователь не найден")
	}

	return nil
}

// DeleteUser : удаляет пользователя по его UUID
func (r *UserRepository) DeleteUser(ctx context.Context, uuid string) error {
	query := `DELETE FROM users WHERE uuid = $1`
	result, err := r.DB.ExecContext(ctx, query, uuid)
	if err != nil {
		return util.Unavailable("[UserRepo] не удалось удалить пользователя", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.Unavailable("[UserRepo] не удалось проверить удаление", err)
	}
	if rowsAffected == 0 {
		return util.NotFound(util.CodeUserNotFound, "пользователь не найден")
	}

	return nil
}

// ListUsers : список пользователей для админки, offset-пагинация
func (r *UserRepository) ListUsers(ctx context.Context, filter model.UserFilter) ([]model.User, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.Keyword != "" {
		args = append(args, "%"+strings.TrimSpace(filter.Keyword)+"%")
		placeholder := fmt.Sprintf("$%d", len(args))
		where = append(where, fmt.Sprintf("(email ILIKE %s OR name ILIKE %s)", placeholder, placeholder))
	}
	if filter.Role != "" {
		args = append(args, filter.Role)
		where = append(where, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM users WHERE ` + whereClause
	if err := sqlx.GetContext(ctx, r.DB, &total, countQuery, args...); err != nil {
		return nil, 0, util.Unavailable("[UserRepo] не удалось посчитать пользователей", err)
	}

	orderBy := sortClause(filter.Sort, map[string]string{
		"created_at": "created_at",
		"email":      "email",
		"name":       "name",
		"role":       "role",
	}, "created_at DESC")

	args = append(args, filter.Size, filter.Page*filter.Size)
	query := fmt.Sprintf(`SELECT uuid, email, name, password_hash, role, is_active, provider, provider_user_id, created_at, updated_at
		FROM users WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		whereClause, orderBy, len(args)-1, len(args))

	var users []model.User
	if err := sqlx.SelectContext(ctx, r.DB, &users, query, args...); err != nil {
		return nil, 0, util.Unavailable("[UserRepo] не удалось получить список пользователей", err)
	}

	return users, total, nil
}

// sortClause разбирает "поле,ASC|DESC" по белому списку колонок.
// Недопустимые значения молча заменяются на сортировку по умолчанию
func sortClause(sort string, allowed map[string]string, defaultClause string) string {
	if sort == "" {
		return defaultClause
	}

	parts := strings.Split(sort, ",")
	column, ok := allowed[strings.TrimSpace(parts[0])]
	if !ok {
		return defaultClause
	}

	direction := "DESC"
	if len(parts) > 1 && strings.EqualFold(strings.TrimSpace(parts[1]), "ASC") {
		direction = "ASC"
	}

	return column + " " + direction
}
