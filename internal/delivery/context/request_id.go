// Package context carries request-scoped values between middleware and handlers.
package context

import (
	"context"
	"log/slog"

	"tracker/internal/domain/trace"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed back on every response and forwarded on exports.
const HeaderXRequestID = "X-Request-Id"

const requestIDKey = "request_id"

type loggerKey struct{}

// GetRequestID returns the request ID stored by the request ID middleware, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)

	return id
}

// BindRequestID stores id on c and threads it through the request context so
// notifications raised while serving the request carry it.
func BindRequestID(c echo.Context, id string, logger *slog.Logger) {
	c.Set(requestIDKey, id)

	ctx := trace.WithID(c.Request().Context(), id)
	ctx = WithLogger(ctx, logger.With(slog.String("request_id", id)))
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when none is set.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}
