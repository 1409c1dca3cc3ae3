// Package http provides the browser-facing HTTP layer of the flight tower proxy.
// Every forwarding endpoint answers with either the backend's JSON payload or
// a {code, message} error envelope; no error escapes as an unhandled fault.
package http

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-tower/flight-tower/internal/adapter/http/response"
	"github.com/flight-tower/flight-tower/internal/domain"
	"github.com/flight-tower/flight-tower/internal/infrastructure/timeutil"
	"github.com/flight-tower/flight-tower/internal/usecase"
)

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	tracker usecase.FlightTracker
	clock   timeutil.Clock
}

// HandlerOption configures a FlightHandler.
type HandlerOption func(*FlightHandler)

// WithClock overrides the clock used by the health endpoint.
func WithClock(clock timeutil.Clock) HandlerOption {
	return func(h *FlightHandler) {
		h.clock = clock
	}
}

// NewFlightHandler creates a new FlightHandler over the given tracker.
func NewFlightHandler(tracker usecase.FlightTracker, opts ...HandlerOption) *FlightHandler {
	h := &FlightHandler{
		tracker: tracker,
		clock:   timeutil.NewRealClock(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GetFlight handles GET /flights/:id
//
// @Summary Get flight details
// @Description Forwards a single-flight lookup to the flight-data backend
// @Tags flights
// @Produce json
// @Param id path string true "Backend flight id"
// @Success 200 {object} domain.FlightDetail
// @Failure 400 {object} response.ErrorDetail "Missing flight id"
// @Failure 404 {object} response.ErrorDetail "Backend has no such flight"
// @Failure 500 {object} response.ErrorDetail "Backend not configured"
// @Failure 502 {object} response.ErrorDetail "Backend unreachable or invalid response"
// @Failure 504 {object} response.ErrorDetail "Backend timed out"
// @Router /flights/{id} [get]
func (h *FlightHandler) GetFlight(c echo.Context) error {
	id := domain.FlightID(pathParam(c, "id"))
	if !id.Valid() {
		return response.BadRequest(c, domain.MsgFlightIDRequired)
	}

	return h.respond(c, h.tracker.GetFlight(c.Request().Context(), id))
}

// SearchFlights handles POST /flights/search
//
// @Summary Search flights near a point
// @Description Coerces and clamps the search criteria, then forwards them to the backend
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria, every field optional; send {} for the defaults"
// @Success 200 {object} domain.SearchResult
// @Failure 400 {object} response.ErrorDetail "Request body is empty or not a JSON object"
// @Failure 500 {object} response.ErrorDetail "Backend not configured"
// @Failure 502 {object} response.ErrorDetail "Backend unreachable or invalid response"
// @Failure 504 {object} response.ErrorDetail "Backend timed out"
// @Router /flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	raw, err := readSearchBody(c.Request())
	if err != nil {
		zerolog.Ctx(c.Request().Context()).Debug().Err(err).Msg("Rejected search body")
		return response.InvalidRequestBody(c)
	}

	criteria := domain.NewSearchCriteria(raw)

	return h.respond(c, h.tracker.SearchFlights(c.Request().Context(), criteria))
}

// SearchMethodNotAllowed handles GET /flights/search, which would otherwise
// be routed to GetFlight with the id "search".
func (h *FlightHandler) SearchMethodNotAllowed(c echo.Context) error {
	return response.MethodNotAllowed(c, http.MethodPost)
}

// GetIPLocation handles GET /geo/ip
//
// @Summary Locate the caller by IP
// @Description Asks the backend for an IP-derived position, used as the default map center
// @Tags geo
// @Produce json
// @Success 200 {object} domain.Location
// @Failure 500 {object} response.ErrorDetail "Backend not configured"
// @Failure 502 {object} response.ErrorDetail "Backend unreachable or invalid response"
// @Failure 504 {object} response.ErrorDetail "Backend timed out"
// @Router /geo/ip [get]
func (h *FlightHandler) GetIPLocation(c echo.Context) error {
	return h.respond(c, h.tracker.GetIPLocation(c.Request().Context()))
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c, h.clock.Now())
}

// pathParam returns a decoded path parameter. Echo routes on the raw path when
// the request carries escapes such as %2F, leaving the parameter encoded.
func pathParam(c echo.Context, name string) string {
	v := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

// respond writes a normalized result: the payload verbatim on success,
// otherwise the error envelope with the result's status code.
func (h *FlightHandler) respond(c echo.Context, result domain.NormalizedResult) error {
	if !result.IsOk() {
		return response.Forwarded(c, result.Err)
	}
	return response.Payload(c, result.Payload)
}
