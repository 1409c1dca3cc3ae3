package response

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-tower/flight-tower/internal/domain"
)

// Forwarded writes a forwarding error with its own status code.
// Upstream errors keep the backend's status; every other kind has a fixed one.
func Forwarded(c echo.Context, err *domain.ForwardError) error {
	status := err.StatusCode
	if status < 400 || status > 599 {
		status = http.StatusBadGateway
	}
	return c.JSON(status, NewErrorDetail(err))
}

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: message,
	})
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return BadRequest(c, domain.MsgInvalidJSONBody)
}

// SerializationFailure writes a 500 response for a payload that could not be encoded.
func SerializationFailure(c echo.Context) error {
	return Forwarded(c, domain.SerializationFailureError())
}

// NotFound writes a 404 response for unknown routes.
func NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, &ErrorDetail{
		Code:    CodeNotFound,
		Message: MsgRouteNotFound,
	})
}

// MethodNotAllowed writes a 405 response advertising the allowed methods.
func MethodNotAllowed(c echo.Context, allowed ...string) error {
	if len(allowed) > 0 {
		c.Response().Header().Set(echo.HeaderAllow, strings.Join(allowed, ", "))
	}
	return c.JSON(http.StatusMethodNotAllowed, &ErrorDetail{
		Code:    CodeMethodNotAllowed,
		Message: MsgMethodNotAllowed,
	})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: MsgInternalError,
	})
}
