package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/casabierta/realty-api/internal/core/domain"
)

// countingLimiter admits the first limit requests per key.
type countingLimiter struct {
	limit  int
	counts map[string]int
	err    error
}

func newCountingLimiter(limit int) *countingLimiter {
	return &countingLimiter{limit: limit, counts: make(map[string]int)}
}

func (l *countingLimiter) Allow(_ context.Context, key string) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	l.counts[key]++
	return l.counts[key] <= l.limit, nil
}

func rateLimitedHandler(t *testing.T, limiter *countingLimiter, forwardedFor string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RateLimit(limiter, "test")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, handler(c)
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	limiter := newCountingLimiter(3)

	for i := 0; i < 3; i++ {
		if _, err := rateLimitedHandler(t, limiter, "198.51.100.4"); err != nil {
			t.Fatalf("request %d should pass: %v", i+1, err)
		}
	}

	_, err := rateLimitedHandler(t, limiter, "198.51.100.4")
	if !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited on request 4, got %v", err)
	}
}

func TestRateLimit_KeysAreIndependent(t *testing.T) {
	limiter := newCountingLimiter(1)

	if _, err := rateLimitedHandler(t, limiter, "198.51.100.4"); err != nil {
		t.Fatalf("first ip rejected: %v", err)
	}
	if _, err := rateLimitedHandler(t, limiter, "198.51.100.5"); err != nil {
		t.Fatalf("second ip should have its own window: %v", err)
	}
}

func TestRateLimit_BackendErrorFailsClosed(t *testing.T) {
	limiter := newCountingLimiter(10)
	limiter.err = errors.New("backend unreachable")

	if _, err := rateLimitedHandler(t, limiter, "198.51.100.4"); err == nil {
		t.Fatalf("expected request to be denied on backend failure")
	}
}

func TestClientIP(t *testing.T) {
	e := echo.New()

	cases := []struct {
		name      string
		forwarded string
		want      string
	}{
		{"absent header falls back to loopback", "", "127.0.0.1"},
		{"single address", "203.0.113.9", "203.0.113.9"},
		{"first hop wins", "203.0.113.9, 10.0.0.1, 10.0.0.2", "203.0.113.9"},
		{"whitespace trimmed", "  203.0.113.9 , 10.0.0.1", "203.0.113.9"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.forwarded != "" {
			req.Header.Set("X-Forwarded-For", tc.forwarded)
		}
		c := e.NewContext(req, httptest.NewRecorder())
		if got := ClientIP(c); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
