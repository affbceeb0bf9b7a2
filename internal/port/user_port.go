package port

import (
	"context"

	"github.com/holafushion/storefront/internal/domain"
)

// UserService is the consumed contract of the account backend.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)
	UpdateUser(ctx context.Context, u domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
