package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/casabierta/realty-api/internal/api/metrics"
	"github.com/casabierta/realty-api/internal/core/domain"
	"github.com/casabierta/realty-api/internal/core/ports"
)

// loopbackFallback keys requests that carry no forwarded address. Trusting
// X-Forwarded-For verbatim is spoofable when the service is not behind a
// proxy that overwrites it; the deployment assumes a trusted edge.
const loopbackFallback = "127.0.0.1"

// RateLimit bounds request volume per client IP under the given policy.
// A backend failure denies the request (fail closed): the limiter guards
// authorization-adjacent paths, so unavailability must not open them up.
func RateLimit(limiter ports.RateLimiter, policy string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), ClientIP(c))
			if err != nil {
				return err
			}
			if !allowed {
				metrics.RateLimitRejectionsTotal.WithLabelValues(policy).Inc()
				return domain.ErrRateLimited
			}
			return next(c)
		}
	}
}

// ClientIP returns the first hop of X-Forwarded-For, or the loopback fallback
// when the header is absent or empty.
func ClientIP(c echo.Context) string {
	forwarded := c.Request().Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return loopbackFallback
	}
	ip := strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0])
	if ip == "" {
		return loopbackFallback
	}
	return ip
}
