package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
	"github.com/tiendadmin/catalog-admin/internal/core/ports"
)

const minPasswordLength = 8

// UserService manages backoffice user accounts.
type UserService struct {
	repo      ports.UserRepository
	passwords ports.PasswordHasher
	log       zerolog.Logger
}

func NewUserService(repo ports.UserRepository, passwords ports.PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, passwords: passwords, log: log}
}

func (s *UserService) Create(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	if err := validateUserInput(in, true); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{PasswordHash: hash, CreatedAt: now, UpdatedAt: now}
	applyUserInput(user, in)

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Update replaces the writable fields of a user. An empty password keeps the
// stored hash.
func (s *UserService) Update(ctx context.Context, id string, in ports.UserInput) (*domain.User, error) {
	if err := validateUserInput(in, false); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Password != "" {
		hash, err := s.passwords.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	applyUserInput(user, in)
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func applyUserInput(u *domain.User, in ports.UserInput) {
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.Email = strings.TrimSpace(in.Email)
	u.Country = in.Country
	u.City = in.City
	u.Address = in.Address
	u.Phone = in.Phone
	u.Role = domain.Role(in.Role)
	u.IsActive = in.IsActive
	u.Image = in.Image
}

func validateUserInput(in ports.UserInput, passwordRequired bool) error {
	if strings.TrimSpace(in.Email) == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if !domain.Role(in.Role).Valid() {
		return fmt.Errorf("%w: role must be %s or %s", domain.ErrInvalidInput, domain.RoleClient, domain.RoleAdministrator)
	}
	if in.Password == "" && !passwordRequired {
		return nil
	}
	return validatePassword(in.Password)
}

// validatePassword enforces the minimum length and one uppercase letter.
func validatePassword(p string) error {
	if len(p) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}
	for _, r := range p {
		if unicode.IsUpper(r) {
			return nil
		}
	}
	return fmt.Errorf("%w: password must contain an uppercase letter", domain.ErrInvalidInput)
}
