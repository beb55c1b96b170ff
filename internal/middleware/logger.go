package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey string

const loggerKey = contextKey("logger")

// Logger injects a request-scoped logger into the request context. The logger carries
// the request id set by echo's RequestID middleware, so it must run after it.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := c.Response().Header().Get(echo.HeaderXRequestID)
		requestLogger := slog.Default().With(
			"request_id", reqID,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
		)

		ctx := context.WithValue(c.Request().Context(), loggerKey, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// FromContext returns the request logger, or the default logger outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
