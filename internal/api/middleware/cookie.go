package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SessionCookie describes how the session credential travels to the browser.
// Setting and clearing the cookie are the only observable side effects of the
// session lifecycle at the HTTP boundary, and both go through this type so the
// clearing attributes always match the setting attributes.
type SessionCookie struct {
	// Name of the cookie, environment-overridable, defaults to __session.
	Name string
	// Secure is enabled in production so the credential never travels in
	// clear text.
	Secure bool
	// TTL equals the credential lifetime; the cookie expires with the JWT.
	TTL time.Duration
}

// Set writes the session cookie carrying the credential.
func (sc SessionCookie) Set(c echo.Context, credential string) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    credential,
		Path:     "/",
		MaxAge:   int(sc.TTL.Seconds()),
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie immediately.
func (sc SessionCookie) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
