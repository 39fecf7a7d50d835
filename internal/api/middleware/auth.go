package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tiendadmin/catalog-admin/internal/api/metrics"
	"github.com/tiendadmin/catalog-admin/internal/core/domain"
	"github.com/tiendadmin/catalog-admin/internal/core/ports"
)

// ClaimsKey is the echo.Context key holding the verified domain.Claims.
const ClaimsKey = "claims"

// Gate guards protected routes: it requires a valid, unexpired bearer token
// and exposes the decoded claims to the next handler. It does not look at the
// role claim.
type Gate struct {
	codec   ports.TokenCodec
	metrics *metrics.Metrics
}

// NewGate returns a Gate verifying tokens with codec. m may be nil.
func NewGate(codec ports.TokenCodec, m *metrics.Metrics) *Gate {
	return &Gate{codec: codec, metrics: m}
}

// Authorize extracts the bearer token from r and verifies it.
// A missing header, a non-Bearer scheme or an empty token yields
// domain.ErrMissingCredential; codec failures are returned unchanged.
func (g *Gate) Authorize(r *http.Request) (domain.Claims, error) {
	token, ok := bearerToken(r.Header.Get(echo.HeaderAuthorization))
	if !ok {
		return nil, domain.ErrMissingCredential
	}
	return g.codec.Verify(token)
}

// Middleware rejects the request through the error handler when Authorize
// fails, so next never runs.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := g.Authorize(c.Request())
			g.metrics.ObserveGate(gateOutcome(err))
			if err != nil {
				return err
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims stored by the gate, if any.
func ClaimsFrom(c echo.Context) (domain.Claims, bool) {
	claims, ok := c.Get(ClaimsKey).(domain.Claims)
	return claims, ok && claims != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func gateOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrMissingCredential):
		return metrics.OutcomeMissing
	case errors.Is(err, domain.ErrExpiredCredential):
		return metrics.OutcomeExpired
	default:
		return metrics.OutcomeMalformed
	}
}
