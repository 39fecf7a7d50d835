// Package token implements the session token codec on top of golang-jwt.
//
// A Codec is built once at startup and never mutated afterwards, so it can be
// shared by any number of goroutines.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
)

// Config holds the signing settings read from the environment.
type Config struct {
	Secret          string
	Algorithm       string
	LifetimeMinutes int
}

// Codec issues and verifies HMAC-signed session tokens.
type Codec struct {
	method   *jwt.SigningMethodHMAC
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewCodec validates cfg and returns a ready Codec. An empty secret or a
// non-HMAC algorithm is a configuration error.
func NewCodec(cfg Config) (*Codec, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token: signing secret is empty")
	}
	method, ok := jwt.GetSigningMethod(cfg.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("token: unsupported signing algorithm %q", cfg.Algorithm)
	}
	return &Codec{
		method:   method,
		secret:   []byte(cfg.Secret),
		lifetime: time.Duration(cfg.LifetimeMinutes) * time.Minute,
		now:      time.Now,
	}, nil
}

// Lifetime reports how long issued tokens stay valid.
func (c *Codec) Lifetime() time.Duration {
	return c.lifetime
}

// Issue signs a copy of claims with the expiration overwritten to now+lifetime.
func (c *Codec) Issue(claims domain.Claims) (string, error) {
	payload := jwt.MapClaims(claims.Clone())
	payload[domain.ClaimExpiration] = c.now().Add(c.lifetime).Unix()

	signed, err := jwt.NewWithClaims(c.method, payload).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiration of token and returns its claims.
// It fails with domain.ErrExpiredCredential when only the expiration is off,
// and with domain.ErrMalformedCredential for everything else.
func (c *Codec) Verify(token string) (domain.Claims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
		jwt.WithStrictDecoding(),
	)
	if err != nil {
		// Signatures are checked before claims, so an expired error implies a
		// genuine token.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredCredential
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedCredential, err)
	}

	out := domain.Claims(claims)
	if out.Identity() == "" || out.Role() == "" {
		return nil, fmt.Errorf("%w: required claims absent", domain.ErrMalformedCredential)
	}
	return out, nil
}
