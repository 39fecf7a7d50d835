package ports

import (
	"context"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	CredentialStore
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
