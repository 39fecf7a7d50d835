package ports

import (
	"context"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
)

// CredentialStore is the read-only user lookup the login flow depends on.
// FindByEmail returns domain.ErrUserNotFound when no record matches.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// PasswordHasher hashes and compares passwords. Verify is intentionally slow.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// TokenCodec signs and verifies session tokens.
type TokenCodec interface {
	Issue(claims domain.Claims) (string, error)
	Verify(token string) (domain.Claims, error)
}
