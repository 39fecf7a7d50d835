package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
	"github.com/tiendadmin/catalog-admin/internal/core/ports"
)

// AuthService implements the administrator login flow.
type AuthService struct {
	store     ports.CredentialStore
	passwords ports.PasswordHasher
	tokens    ports.TokenCodec
	log       zerolog.Logger
}

func NewAuthService(store ports.CredentialStore, passwords ports.PasswordHasher, tokens ports.TokenCodec, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, passwords: passwords, tokens: tokens, log: log}
}

// Login checks email and password against the credential store and, for
// administrators only, issues a session token.
//
// Unknown emails and wrong passwords both yield domain.ErrInvalidCredentials.
// Valid credentials on a non-administrator account yield domain.ErrForbidden.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Info().Str("outcome", "invalid_credentials").Msg("login rejected")
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: lookup user: %w", err)
	}

	if !s.passwords.Verify(user.PasswordHash, password) {
		s.log.Info().Str("outcome", "invalid_credentials").Msg("login rejected")
		return "", domain.ErrInvalidCredentials
	}

	if user.Role != domain.RoleAdministrator {
		s.log.Info().Str("email", user.Email).Str("role", string(user.Role)).Str("outcome", "forbidden").Msg("login rejected")
		return "", domain.ErrForbidden
	}

	token, err := s.tokens.Issue(domain.Claims{
		domain.ClaimIdentity: user.Email,
		domain.ClaimRole:     string(user.Role),
	})
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("email", user.Email).Msg("administrator logged in")
	return token, nil
}
