package ports

import (
	"bookstore-server/internal/model"
	"context"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindByUUID(ctx context.Context, uuid string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateUser(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, uuid string, newPasswordHash string) error
	SetActive(ctx context.Context, uuid string, active bool) error
	DeleteUser(ctx context.Context, uuid string) error
	ListUsers(ctx context.Context, filter model.UserFilter) ([]model.User, int, error)
}

type UserService interface {
	Register(ctx context.Context, email, name, password string) (*model.User, error)
	GetUser(ctx context.Context, uuid string) (*model.User, error)
	UpdateMe(ctx context.Context, uuid string, name *string, password *string) (*model.User, error)
	Deactivate(ctx context.Context, uuid string) error
	DeletePermanently(ctx context.Context, uuid string) error
	ListUsers(ctx context.Context, filter model.UserFilter) ([]model.User, int, error)
}
