// Package integration provides helpers and integration tests for the flight tower proxy.
// Integration tests run the full echo stack (middleware, handlers, tracker and the
// real backend client) against a fake backend served by httptest.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-tower/flight-tower/internal/adapter/backend"
	httpAdapter "github.com/flight-tower/flight-tower/internal/adapter/http"
	"github.com/flight-tower/flight-tower/internal/adapter/http/middleware"
	"github.com/flight-tower/flight-tower/internal/adapter/http/response"
	"github.com/flight-tower/flight-tower/internal/usecase"
)

// TestServer wraps an Echo instance wired the way cmd/server wires it.
type TestServer struct {
	Echo *echo.Echo
}

// ServerOptions tune the forwarding chain under test.
type ServerOptions struct {
	// BackendURL is the configured base URL; empty means not configured.
	BackendURL    string
	FlightTimeout time.Duration
	GeoTimeout    time.Duration
	AllowOrigins  []string
}

// NewTestServer builds the full proxy stack.
func NewTestServer(opts ServerOptions) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpAdapter.ErrorHandler

	middleware.SetupWithOptions(e, zerolog.Nop(), middleware.Options{
		Recovery:     middleware.DefaultRecoveryConfig(),
		AllowOrigins: opts.AllowOrigins,
	})

	tracker := usecase.NewFlightTracker(
		backend.NewStaticLocator(opts.BackendURL),
		backend.NewRequests(),
		backend.NewClient(nil),
		&usecase.Config{FlightTimeout: opts.FlightTimeout, GeoTimeout: opts.GeoTimeout},
	)
	httpAdapter.RegisterRoutes(e, httpAdapter.NewFlightHandler(tracker))

	return &TestServer{Echo: e}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do sends a raw request through the stack.
func (ts *TestServer) Do(method, target, body string) Response {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// GetFlight requests GET /flights/{escapedID}.
func (ts *TestServer) GetFlight(escapedID string) Response {
	return ts.Do(http.MethodGet, "/flights/"+escapedID, "")
}

// Search requests POST /flights/search with a raw body.
func (ts *TestServer) Search(body string) Response {
	return ts.Do(http.MethodPost, "/flights/search", body)
}

// IPLocation requests GET /geo/ip.
func (ts *TestServer) IPLocation() Response {
	return ts.Do(http.MethodGet, "/geo/ip", "")
}

// Envelope decodes the body as an error envelope.
func (r Response) Envelope() (response.ErrorDetail, error) {
	var env response.ErrorDetail
	err := json.Unmarshal(r.Body, &env)
	return env, err
}
