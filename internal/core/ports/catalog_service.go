package ports

import (
	"context"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
)

// CategoryInput carries the fields needed to create a category.
type CategoryInput struct {
	Name        string
	Description string
}

type CategoryService interface {
	Create(ctx context.Context, input CategoryInput) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	IsActive    bool
	Image       string
}

type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, category string) ([]*domain.Product, error)
	Update(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// SaleInput carries the data needed to register a sale.
type SaleInput struct {
	UserID         string
	ProductID      string
	Quantity       int
	IdempotencyKey string
}

// SaleResult wraps a sale; AlreadyExisted is true on an idempotent replay.
type SaleResult struct {
	Sale           *domain.Sale
	AlreadyExisted bool
}

type SaleService interface {
	Create(ctx context.Context, input SaleInput) (*SaleResult, error)
	List(ctx context.Context, status string) ([]*domain.Sale, error)
	SetDispatchStatus(ctx context.Context, id, status string) (*domain.Sale, error)
}
