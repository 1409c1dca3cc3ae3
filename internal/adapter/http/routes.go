package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the proxy routes on the Echo instance.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to
// the forwarding endpoints only. The health check stays bare.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *FlightHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	flights := e.Group("/flights", middleware...)
	flights.POST("/search", h.SearchFlights)
	flights.GET("/search", h.SearchMethodNotAllowed)
	flights.GET("/:id", h.GetFlight)

	geo := e.Group("/geo", middleware...)
	geo.GET("/ip", h.GetIPLocation)
}
