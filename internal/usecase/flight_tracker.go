// Package usecase contains the forwarding logic between the browser-facing
// endpoints and the external flight-data backend.
package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-tower/flight-tower/internal/domain"
)

// Default timeout values.
const (
	DefaultFlightTimeout = 10 * time.Second
	DefaultGeoTimeout    = 8 * time.Second
)

// FlightTracker defines the forwarding operations exposed to the HTTP layer.
type FlightTracker interface {
	// GetFlight looks up a single flight by its backend id.
	GetFlight(ctx context.Context, id domain.FlightID) domain.NormalizedResult

	// SearchFlights runs a proximity search with clamped criteria.
	SearchFlights(ctx context.Context, criteria domain.SearchCriteria) domain.NormalizedResult

	// GetIPLocation asks the backend for an IP-derived position.
	GetIPLocation(ctx context.Context) domain.NormalizedResult
}

// Config contains configuration options for the use case.
type Config struct {
	FlightTimeout time.Duration
	GeoTimeout    time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		FlightTimeout: DefaultFlightTimeout,
		GeoTimeout:    DefaultGeoTimeout,
	}
}

type flightTracker struct {
	locator       domain.Locator
	requests      domain.RequestBuilder
	caller        domain.RemoteCaller
	flightTimeout time.Duration
	geoTimeout    time.Duration
}

// NewFlightTracker creates a FlightTracker. If config is nil, default timeouts are used.
func NewFlightTracker(locator domain.Locator, requests domain.RequestBuilder, caller domain.RemoteCaller, config *Config) FlightTracker {
	cfg := DefaultConfig()
	if config != nil {
		if config.FlightTimeout > 0 {
			cfg.FlightTimeout = config.FlightTimeout
		}
		if config.GeoTimeout > 0 {
			cfg.GeoTimeout = config.GeoTimeout
		}
	}

	return &flightTracker{
		locator:       locator,
		requests:      requests,
		caller:        caller,
		flightTimeout: cfg.FlightTimeout,
		geoTimeout:    cfg.GeoTimeout,
	}
}

// GetFlight implements FlightTracker.GetFlight.
func (t *flightTracker) GetFlight(ctx context.Context, id domain.FlightID) domain.NormalizedResult {
	if !id.Valid() {
		return domain.ErrorResult(domain.InvalidInputError(domain.MsgFlightIDRequired))
	}

	return t.forward(ctx, domain.OpFlightByID, t.flightTimeout, func(base string) (*domain.OutboundRequest, error) {
		return t.requests.FlightByID(base, id), nil
	})
}

// SearchFlights implements FlightTracker.SearchFlights.
func (t *flightTracker) SearchFlights(ctx context.Context, criteria domain.SearchCriteria) domain.NormalizedResult {
	criteria.Clamp()

	return t.forward(ctx, domain.OpSearchFlights, t.flightTimeout, func(base string) (*domain.OutboundRequest, error) {
		return t.requests.Search(base, criteria)
	})
}

// GetIPLocation implements FlightTracker.GetIPLocation.
func (t *flightTracker) GetIPLocation(ctx context.Context) domain.NormalizedResult {
	return t.forward(ctx, domain.OpIPLocation, t.geoTimeout, func(base string) (*domain.OutboundRequest, error) {
		return t.requests.IPLocation(base), nil
	})
}

// forward resolves the backend, builds the request, makes exactly one bounded
// call and normalizes the outcome. There is no retry here.
func (t *flightTracker) forward(
	ctx context.Context,
	op domain.Operation,
	timeout time.Duration,
	build func(base string) (*domain.OutboundRequest, error),
) domain.NormalizedResult {
	log := zerolog.Ctx(ctx).With().Str("operation", string(op)).Logger()

	base, ok := t.locator.Resolve()
	if !ok {
		log.Error().Msg("Backend API URL is not configured")
		return domain.ErrorResult(domain.NotConfiguredError())
	}

	req, err := build(base)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build backend request")
		return domain.ErrorResult(domain.InvalidInputError(err.Error()))
	}

	start := time.Now()
	log.Debug().Str("method", req.Method).Str("url", req.URL).Msg("Forwarding request to backend")

	outcome := t.caller.Call(ctx, req, timeout)
	result := Normalize(outcome)

	event := log.Info()
	if !result.IsOk() {
		event = log.Warn().
			Str("error_kind", string(result.Err.Kind)).
			Int("response_status", result.Err.StatusCode).
			Str("error_message", result.Err.Message)
	}
	event.
		Str("outcome", outcome.Kind.String()).
		Int("backend_status", outcome.StatusCode).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("Backend call finished")

	return result
}

// Ensure flightTracker implements FlightTracker at compile time.
var _ FlightTracker = (*flightTracker)(nil)
