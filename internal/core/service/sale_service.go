package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
	"github.com/tiendadmin/catalog-admin/internal/core/ports"
)

// IdempotencyGuard abstracts the short-lived key reservation store (Redis).
type IdempotencyGuard interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type SaleService struct {
	repo     ports.SaleRepository
	users    ports.UserRepository
	products ports.ProductRepository
	guard    IdempotencyGuard
	log      zerolog.Logger
}

func NewSaleService(
	repo ports.SaleRepository,
	users ports.UserRepository,
	products ports.ProductRepository,
	guard IdempotencyGuard,
	log zerolog.Logger,
) *SaleService {
	return &SaleService{repo: repo, users: users, products: products, guard: guard, log: log}
}

// Create registers a sale. When an idempotency key is supplied and a sale was
// already stored under it, that sale is returned without side effects.
func (s *SaleService) Create(ctx context.Context, in ports.SaleInput) (*ports.SaleResult, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than 0", domain.ErrInvalidInput)
	}

	if in.IdempotencyKey != "" {
		existing, err := s.repo.FindByIdempotencyKey(ctx, in.IdempotencyKey)
		if err == nil {
			s.log.Info().Str("idempotency_key", in.IdempotencyKey).Str("sale_id", existing.ID).Msg("idempotent replay")
			return &ports.SaleResult{Sale: existing, AlreadyExisted: true}, nil
		}
		if !errors.Is(err, domain.ErrSaleNotFound) {
			return nil, err
		}

		reserved, err := s.guard.Reserve(ctx, in.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("idempotency reservation failed, processing anyway")
		} else if !reserved {
			return nil, domain.ErrDuplicateSale
		}
	}

	sale, err := s.create(ctx, in)
	if err != nil {
		if in.IdempotencyKey != "" {
			if relErr := s.guard.Release(ctx, in.IdempotencyKey); relErr != nil {
				s.log.Warn().Err(relErr).Str("idempotency_key", in.IdempotencyKey).Msg("failed to release idempotency key")
			}
		}
		return nil, err
	}

	s.log.Info().Str("sale_id", sale.ID).Str("product_id", sale.ProductID).Int("quantity", sale.Quantity).Msg("sale registered")
	return &ports.SaleResult{Sale: sale}, nil
}

func (s *SaleService) create(ctx context.Context, in ports.SaleInput) (*domain.Sale, error) {
	if _, err := s.users.FindByID(ctx, in.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user not found", domain.ErrInvalidInput)
		}
		return nil, err
	}
	if _, err := s.products.FindByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, fmt.Errorf("%w: product not found", domain.ErrInvalidInput)
		}
		return nil, err
	}

	sale := &domain.Sale{
		ID:             uuid.NewString(),
		UserID:         in.UserID,
		ProductID:      in.ProductID,
		Quantity:       in.Quantity,
		Date:           time.Now().UTC(),
		Status:         domain.NotDispatched,
		IdempotencyKey: in.IdempotencyKey,
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// List returns all sales, or only those in status when it is non-empty.
func (s *SaleService) List(ctx context.Context, status string) ([]*domain.Sale, error) {
	st := domain.DispatchStatus(status)
	if status != "" && !st.Valid() {
		return nil, fmt.Errorf("%w: status must be %q or %q", domain.ErrInvalidInput, domain.Dispatched, domain.NotDispatched)
	}
	return s.repo.List(ctx, st)
}

func (s *SaleService) SetDispatchStatus(ctx context.Context, id, status string) (*domain.Sale, error) {
	st := domain.DispatchStatus(status)
	if !st.Valid() {
		return nil, fmt.Errorf("%w: status must be %q or %q", domain.ErrInvalidInput, domain.Dispatched, domain.NotDispatched)
	}
	sale, err := s.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("sale_id", id).Str("status", status).Msg("dispatch status updated")
	return sale, nil
}
