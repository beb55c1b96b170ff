package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// DefaultSubmitsPerMinute bounds form submissions per client IP.
const DefaultSubmitsPerMinute = 10

// RateLimiter limits requests to DefaultSubmitsPerMinute per IP address for the routes
// it's applied to. It is meant for the login and signup POST routes.
func RateLimiter() echo.MiddlewareFunc {
	return RateLimiterWithLimit(DefaultSubmitsPerMinute)
}

// RateLimiterWithLimit is RateLimiter with a custom per-minute budget.
func RateLimiterWithLimit(perMinute int) echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		// In-memory store, suitable for a single instance.
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(float64(perMinute) / 60),
			Burst: perMinute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
