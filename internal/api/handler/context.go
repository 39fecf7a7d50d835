package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tiendadmin/catalog-admin/internal/api/middleware"
	"github.com/tiendadmin/catalog-admin/internal/core/domain"
)

// ctxClaims returns the claims injected by the request gate. Their absence
// means the route was mounted without the gate, which is treated as an
// unauthenticated request.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return nil, domain.ErrMissingCredential
	}
	return claims, nil
}

// actor returns the identity of the caller for audit logging.
func actor(c echo.Context) string {
	claims, _ := middleware.ClaimsFrom(c)
	return claims.Identity()
}
