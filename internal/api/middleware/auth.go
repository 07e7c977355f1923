package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casabierta/realty-api/internal/core/domain"
	"github.com/casabierta/realty-api/internal/core/ports"
)

// IdentityKey is the context key under which the resolved identity is stored.
const IdentityKey = "identity"

// Session requires a valid session cookie and injects the resolved identity
// into context. Requests without a valid credential are rejected with 401.
// Revocation is not consulted here: signature and expiry checks keep the hot
// path off the revocation backend, and sensitive endpoints re-verify with
// checkRevocation through the session store.
func Session(store ports.SessionStore, sc SessionCookie) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sc.Name)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
			}

			identity, err := store.Verify(c.Request().Context(), cookie.Value, false)
			if err != nil {
				// Stale cookie: instruct the client to clear it.
				sc.Clear(c)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			c.Set(IdentityKey, identity)
			c.Set("uid", identity.UID)
			c.Set("role", identity.Role)

			return next(c)
		}
	}
}

// OptionalSession resolves an identity when a valid session cookie is present
// and continues regardless. Handlers downstream see a nil identity for
// anonymous callers.
func OptionalSession(store ports.SessionStore, sc SessionCookie) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sc.Name)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			identity, err := store.Verify(c.Request().Context(), cookie.Value, false)
			if err != nil {
				return next(c)
			}

			c.Set(IdentityKey, identity)
			c.Set("uid", identity.UID)
			c.Set("role", identity.Role)

			return next(c)
		}
	}
}

// ContextIdentity returns the identity injected by Session or OptionalSession,
// or nil when the request is anonymous.
func ContextIdentity(c echo.Context) *domain.Identity {
	identity, _ := c.Get(IdentityKey).(*domain.Identity)
	return identity
}
