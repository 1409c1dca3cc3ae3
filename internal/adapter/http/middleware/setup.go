package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Options tunes the middleware stack.
type Options struct {
	Recovery     RecoveryConfig
	AllowOrigins []string
}

// SetupWithOptions registers the middleware stack on the Echo instance.
// The order matters:
//  1. RequestID - generates/propagates the request ID for all subsequent logging
//  2. RequestLogger - logs all requests with request ID
//  3. Recover - catches panics and returns 500 (wraps handlers)
//  4. ContextLogger - puts a request-scoped logger into the request context
//  5. CORS - only when origins are configured
//
// Call it before registering routes.
func SetupWithOptions(e *echo.Echo, log zerolog.Logger, opts Options) {
	e.Use(ChainWithOptions(log, opts)...)
}

// ChainWithOptions returns the middleware stack for the given options.
func ChainWithOptions(log zerolog.Logger, opts Options) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		RecoverWithConfig(log, opts.Recovery),
		ContextLogger(log),
	}
	if cors := CORS(opts.AllowOrigins); cors != nil {
		chain = append(chain, cors)
	}
	return chain
}
