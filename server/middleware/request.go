package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-Id"

// RequestIDMiddleware assigns a request id when the client did not send
// one and echoes it back on the response.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set("requestID", id)
			c.Response().Header().Set(requestIDHeader, id)
			return next(c)
		}
	}
}

// LoggerMiddleware writes one structured line per request.
func LoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			attrs := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"latency", time.Since(start),
			}
			if id, ok := c.Get("requestID").(string); ok {
				attrs = append(attrs, "requestID", id)
			}
			if err != nil {
				attrs = append(attrs, "error", err)
				slog.Warn("request failed", attrs...)
				return nil
			}
			slog.Info("request", attrs...)
			return nil
		}
	}
}
