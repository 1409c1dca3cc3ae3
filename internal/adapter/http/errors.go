package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-tower/flight-tower/internal/adapter/http/response"
)

// ErrorHandler renders errors returned by handlers and by Echo itself
// (unknown route, method not allowed) with the same envelope as the
// forwarding endpoints.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
	} else {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("Unhandled handler error")
	}

	var writeErr error
	switch {
	case c.Request().Method == http.MethodHead:
		writeErr = c.NoContent(status)
	case status == http.StatusNotFound:
		writeErr = response.NotFound(c)
	case status == http.StatusMethodNotAllowed:
		writeErr = response.MethodNotAllowed(c)
	case he != nil && status >= 400 && status < 500:
		writeErr = c.JSON(status, &response.ErrorDetail{Code: response.CodeInvalidRequest, Message: fmt.Sprint(he.Message)})
	default:
		writeErr = response.InternalServerError(c)
	}
	if writeErr != nil {
		zerolog.Ctx(c.Request().Context()).Error().Err(writeErr).Msg("Failed to write error response")
	}
}
