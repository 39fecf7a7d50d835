package ports

import (
	"context"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// ProductRepository defines persistence operations for products.
// List filters by category name when category is non-empty.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, category string) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// SaleRepository defines persistence operations for sales.
// List filters by dispatch status when status is non-empty.
type SaleRepository interface {
	Create(ctx context.Context, s *domain.Sale) error
	FindByID(ctx context.Context, id string) (*domain.Sale, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Sale, error)
	List(ctx context.Context, status domain.DispatchStatus) ([]*domain.Sale, error)
	UpdateStatus(ctx context.Context, id string, status domain.DispatchStatus) (*domain.Sale, error)
}
