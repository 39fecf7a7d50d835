package main

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
	"github.com/tiendadmin/catalog-admin/internal/core/ports"
	"github.com/tiendadmin/catalog-admin/internal/infrastructure/config"
)

type stubUserService struct {
	ports.UserService
	createFn func(ctx context.Context, in ports.UserInput) (*domain.User, error)
	calls    int
}

func (s *stubUserService) Create(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	s.calls++
	return s.createFn(ctx, in)
}

func TestSeedAdministrator_SkipsWithoutSettings(t *testing.T) {
	stub := &stubUserService{}
	if err := seedAdministrator(context.Background(), stub, config.SeedConfig{AdminEmail: "admin@example.com"}, zerolog.Nop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no create call, got %d", stub.calls)
	}
}

func TestSeedAdministrator_CreatesAdministrator(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, in ports.UserInput) (*domain.User, error) {
			if in.Role != "Administrator" || in.Email != "admin@example.com" || !in.IsActive {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "1"}, nil
		},
	}
	seed := config.SeedConfig{AdminEmail: "admin@example.com", AdminPassword: "Secret1x"}
	if err := seedAdministrator(context.Background(), stub, seed, zerolog.Nop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.calls != 1 {
		t.Fatalf("expected one create call, got %d", stub.calls)
	}
}

func TestSeedAdministrator_ExistingAccount(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, in ports.UserInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	seed := config.SeedConfig{AdminEmail: "admin@example.com", AdminPassword: "Secret1x"}
	if err := seedAdministrator(context.Background(), stub, seed, zerolog.Nop()); err != nil {
		t.Fatalf("expected existing account to be ignored, got %v", err)
	}
}

func TestSeedAdministrator_PropagatesFailure(t *testing.T) {
	boom := errors.New("mongo down")
	stub := &stubUserService{
		createFn: func(ctx context.Context, in ports.UserInput) (*domain.User, error) {
			return nil, boom
		},
	}
	seed := config.SeedConfig{AdminEmail: "admin@example.com", AdminPassword: "Secret1x"}
	if err := seedAdministrator(context.Background(), stub, seed, zerolog.Nop()); !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
}
