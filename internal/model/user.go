package model

import "time"

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

type User struct {
	UUID         string     `db:"uuid" json:"uuid"`
	Email        string     `db:"email" json:"email"`
	Name         string     `db:"name" json:"name"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         string     `db:"role" json:"role"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	// Provider и ProviderUserID заполняются только для аккаунтов,
	// привязанных к внешнему провайдеру (OAuth)
	Provider       *string    `db:"provider" json:"provider,omitempty"`
	ProviderUserID *string    `db:"provider_user_id" json:"provider_user_id,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter : параметры выборки пользователей для админки
type UserFilter struct {
	Keyword  string // частичное совпадение по email/name
	Role     string
	IsActive *bool
	Sort     string
	Page     int
	Size     int
}
