package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
	"github.com/tiendadmin/catalog-admin/internal/infrastructure/password"
	"github.com/tiendadmin/catalog-admin/internal/infrastructure/token"
)

type stubCredentialStore struct {
	users map[string]*domain.User
	err   error
	calls int
}

func (s *stubCredentialStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubCodec struct {
	issued []domain.Claims
	err    error
}

func (c *stubCodec) Issue(claims domain.Claims) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	c.issued = append(c.issued, claims)
	return "signed-token", nil
}

func (c *stubCodec) Verify(string) (domain.Claims, error) {
	return nil, domain.ErrMalformedCredential
}

var testHasher = &password.Bcrypt{Cost: bcrypt.MinCost}

func newStore(t *testing.T, email, plain string, role domain.Role) *stubCredentialStore {
	t.Helper()
	hash, err := testHasher.Hash(plain)
	require.NoError(t, err)
	return &stubCredentialStore{users: map[string]*domain.User{
		email: {ID: "1", Email: email, PasswordHash: hash, Role: role, IsActive: true},
	}}
}

func TestAuthService_Login_Administrator(t *testing.T) {
	store := newStore(t, "admin@example.com", "Secret1x", domain.RoleAdministrator)
	codec, err := token.NewCodec(token.Config{Secret: "secret", Algorithm: "HS256", LifetimeMinutes: 30})
	require.NoError(t, err)
	svc := NewAuthService(store, testHasher, codec, zerolog.Nop())

	tok, err := svc.Login(context.Background(), "admin@example.com", "Secret1x")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := codec.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Identity())
	assert.Equal(t, domain.RoleAdministrator, claims.Role())
}

func TestAuthService_Login_IssuesIdentityAndRoleOnly(t *testing.T) {
	store := newStore(t, "admin@example.com", "Secret1x", domain.RoleAdministrator)
	codec := &stubCodec{}
	svc := NewAuthService(store, testHasher, codec, zerolog.Nop())

	tok, err := svc.Login(context.Background(), "admin@example.com", "Secret1x")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", tok)
	require.Len(t, codec.issued, 1)
	assert.Equal(t, domain.Claims{
		domain.ClaimIdentity: "admin@example.com",
		domain.ClaimRole:     "Administrator",
	}, codec.issued[0])
}

func TestAuthService_Login_ClientForbidden(t *testing.T) {
	store := newStore(t, "admin@example.com", "Secret1x", domain.RoleClient)
	codec := &stubCodec{}
	svc := NewAuthService(store, testHasher, codec, zerolog.Nop())

	tok, err := svc.Login(context.Background(), "admin@example.com", "Secret1x")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, tok)
	assert.Empty(t, codec.issued, "no token may be issued for a client account")
}

func TestAuthService_Login_ClientWithWrongPasswordIsInvalidCredentials(t *testing.T) {
	store := newStore(t, "client@example.com", "Secret1x", domain.RoleClient)
	svc := NewAuthService(store, testHasher, &stubCodec{}, zerolog.Nop())

	_, err := svc.Login(context.Background(), "client@example.com", "Wrong1xx")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	store := newStore(t, "admin@example.com", "Secret1x", domain.RoleAdministrator)
	svc := NewAuthService(store, testHasher, &stubCodec{}, zerolog.Nop())

	_, errUnknown := svc.Login(context.Background(), "ghost@example.com", "Secret1x")
	_, errWrong := svc.Login(context.Background(), "admin@example.com", "Secret2x")

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.Equal(t, domain.ErrInvalidCredentials, errUnknown)
	assert.Equal(t, errUnknown, errWrong)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuthService_Login_PlaintextHashNeverMatches(t *testing.T) {
	store := &stubCredentialStore{users: map[string]*domain.User{
		"admin@example.com": {Email: "admin@example.com", PasswordHash: "Secret1x", Role: domain.RoleAdministrator},
	}}
	svc := NewAuthService(store, testHasher, &stubCodec{}, zerolog.Nop())

	_, err := svc.Login(context.Background(), "admin@example.com", "Secret1x")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	store := newStore(t, "admin@example.com", "Secret1x", domain.RoleAdministrator)
	svc := NewAuthService(store, testHasher, &stubCodec{}, zerolog.Nop())

	_, err := svc.Login(context.Background(), "", "Secret1x")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(context.Background(), "admin@example.com", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Zero(t, store.calls)
}

func TestAuthService_Login_StoreFailurePropagates(t *testing.T) {
	boom := errors.New("connection reset")
	store := &stubCredentialStore{err: boom}
	svc := NewAuthService(store, testHasher, &stubCodec{}, zerolog.Nop())

	_, err := svc.Login(context.Background(), "admin@example.com", "Secret1x")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_IssueFailurePropagates(t *testing.T) {
	store := newStore(t, "admin@example.com", "Secret1x", domain.RoleAdministrator)
	boom := errors.New("sign failed")
	svc := NewAuthService(store, testHasher, &stubCodec{err: boom}, zerolog.Nop())

	_, err := svc.Login(context.Background(), "admin@example.com", "Secret1x")
	assert.ErrorIs(t, err, boom)
}
