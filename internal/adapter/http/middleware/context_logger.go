package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ContextLogger returns middleware that attaches a request-scoped logger to
// the request's context.Context. Downstream code retrieves it with
// zerolog.Ctx(ctx); every entry carries the request ID.
// It must run after RequestID.
func ContextLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scoped := log.With().Str("request_id", GetRequestID(c)).Logger()

			req := c.Request()
			c.SetRequest(req.WithContext(scoped.WithContext(req.Context())))

			return next(c)
		}
	}
}
