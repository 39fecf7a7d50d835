package ports

import (
	"context"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
)

// UserInput carries the writable fields of a user account.
type UserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Country   string
	City      string
	Address   string
	Phone     string
	Role      string
	IsActive  bool
	Image     string
}

type UserService interface {
	Create(ctx context.Context, input UserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input UserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
