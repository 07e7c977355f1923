package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casabierta/realty-api/internal/api/middleware"
	"github.com/casabierta/realty-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Session middleware and
// fast-fails before any service call: presence proves the middleware ran.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity := middleware.ContextIdentity(c)
	if identity == nil {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return *identity, nil
}
