package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
	"github.com/tiendadmin/catalog-admin/internal/core/ports"
)

type ProductService struct {
	repo       ports.ProductRepository
	categories ports.CategoryRepository
	log        zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, categories ports.CategoryRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, categories: categories, log: log}
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &domain.Product{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	applyProductInput(p, in)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", p.ID).Str("category", p.Category).Msg("product created")
	return p, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, category string) ([]*domain.Product, error) {
	return s.repo.List(ctx, strings.TrimSpace(category))
}

func (s *ProductService) Update(ctx context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyProductInput(p, in)
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// validate checks field ranges and that the referenced category exists.
func (s *ProductService) validate(ctx context.Context, in ports.ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: product name is required", domain.ErrInvalidInput)
	}
	if in.Price <= 0 {
		return fmt.Errorf("%w: price must be greater than 0", domain.ErrInvalidInput)
	}
	if in.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", domain.ErrInvalidInput)
	}
	category := strings.TrimSpace(in.Category)
	if _, err := s.categories.FindByName(ctx, category); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return fmt.Errorf("%w: category %q does not exist", domain.ErrInvalidInput, category)
		}
		return err
	}
	return nil
}

func applyProductInput(p *domain.Product, in ports.ProductInput) {
	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Price = in.Price
	p.Stock = in.Stock
	p.Category = strings.TrimSpace(in.Category)
	p.IsActive = in.IsActive
	p.Image = in.Image
}
