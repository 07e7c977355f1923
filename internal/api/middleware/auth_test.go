package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/casabierta/realty-api/internal/core/domain"
)

// stubSessionStore verifies a single known credential.
type stubSessionStore struct {
	valid    string
	identity domain.Identity
}

func (s *stubSessionStore) Issue(domain.Identity) (string, error) {
	return s.valid, nil
}

func (s *stubSessionStore) Verify(_ context.Context, credential string, _ bool) (*domain.Identity, error) {
	if credential != s.valid {
		return nil, domain.ErrInvalidSession
	}
	clone := s.identity
	return &clone, nil
}

func (s *stubSessionStore) Revoke(context.Context, string) error {
	return nil
}

func newSessionRequest(credential string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if credential != "" {
		req.AddCookie(&http.Cookie{Name: "__session", Value: credential})
	}
	return req, httptest.NewRecorder()
}

func TestSessionMiddleware_ValidCookie(t *testing.T) {
	e := echo.New()
	store := &stubSessionStore{
		valid:    "good-credential",
		identity: domain.Identity{UID: "u1", Role: domain.RolePremium},
	}

	req, rec := newSessionRequest("good-credential")
	c := e.NewContext(req, rec)

	called := false
	handler := Session(store, SessionCookie{Name: "__session"})(func(c echo.Context) error {
		called = true
		identity := ContextIdentity(c)
		if identity == nil || identity.UID != "u1" {
			t.Fatalf("identity not injected: %+v", identity)
		}
		if c.Get("role") != domain.RolePremium {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestSessionMiddleware_MissingCookie(t *testing.T) {
	e := echo.New()
	store := &stubSessionStore{valid: "good-credential"}

	req, rec := newSessionRequest("")
	c := e.NewContext(req, rec)

	handler := Session(store, SessionCookie{Name: "__session"})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSessionMiddleware_InvalidCookieClearedAndRejected(t *testing.T) {
	e := echo.New()
	store := &stubSessionStore{valid: "good-credential"}

	req, rec := newSessionRequest("stale-credential")
	c := e.NewContext(req, rec)

	handler := Session(store, SessionCookie{Name: "__session"})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	// The stale cookie must be cleared with the same attributes Set uses, so
	// the browser matches it against the cookie being replaced.
	cleared := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "__session" && cookie.MaxAge < 0 {
			cleared = true
			if cookie.Path != "/" || !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode {
				t.Fatalf("clear attributes diverge from set: %+v", cookie)
			}
		}
	}
	if !cleared {
		t.Fatalf("stale session cookie not cleared")
	}
}

func TestOptionalSessionMiddleware_AnonymousContinues(t *testing.T) {
	e := echo.New()
	store := &stubSessionStore{valid: "good-credential"}

	req, rec := newSessionRequest("")
	c := e.NewContext(req, rec)

	called := false
	handler := OptionalSession(store, SessionCookie{Name: "__session"})(func(c echo.Context) error {
		called = true
		if ContextIdentity(c) != nil {
			t.Fatalf("expected nil identity for anonymous caller")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestOptionalSessionMiddleware_InvalidCookieContinuesAnonymous(t *testing.T) {
	e := echo.New()
	store := &stubSessionStore{valid: "good-credential"}

	req, rec := newSessionRequest("garbage")
	c := e.NewContext(req, rec)

	called := false
	handler := OptionalSession(store, SessionCookie{Name: "__session"})(func(c echo.Context) error {
		called = true
		if ContextIdentity(c) != nil {
			t.Fatalf("expected nil identity for invalid credential")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestOptionalSessionMiddleware_ValidCookieResolves(t *testing.T) {
	e := echo.New()
	store := &stubSessionStore{
		valid:    "good-credential",
		identity: domain.Identity{UID: "u1", Role: domain.RolePublic},
	}

	req, rec := newSessionRequest("good-credential")
	c := e.NewContext(req, rec)

	handler := OptionalSession(store, SessionCookie{Name: "__session"})(func(c echo.Context) error {
		identity := ContextIdentity(c)
		if identity == nil || identity.UID != "u1" {
			t.Fatalf("identity not resolved: %+v", identity)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
