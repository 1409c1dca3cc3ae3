package domain

//go:generate mockgen -source=backend.go -destination=mock_backend.go -package=domain

import (
	"context"
	"net/http"
	"time"
)

// Operation names a logical backend operation.
type Operation string

// Backend operations relayed by the forwarding endpoints.
const (
	OpFlightByID    Operation = "flight_by_id"
	OpSearchFlights Operation = "search_flights"
	OpIPLocation    Operation = "ip_location"
)

// OutboundRequest is a fully built request to the backend.
type OutboundRequest struct {
	Operation Operation
	Method    string
	URL       string
	Header    http.Header
	Body      []byte
}

// Locator resolves the backend base URL.
// Implementations must be safe for concurrent use and side-effect free.
type Locator interface {
	// Resolve returns the base URL, or false when the backend is not configured.
	Resolve() (string, bool)
}

// RequestBuilder turns the inputs of each operation into a backend request.
type RequestBuilder interface {
	// FlightByID builds the single-flight lookup for id.
	FlightByID(base string, id FlightID) *OutboundRequest

	// Search builds the proximity search carrying criteria.
	Search(base string, criteria SearchCriteria) (*OutboundRequest, error)

	// IPLocation builds the IP geolocation lookup.
	IPLocation(base string) *OutboundRequest
}

// RemoteCaller executes one outbound request under a hard timeout.
type RemoteCaller interface {
	// Call issues req and classifies the result. It never returns an error:
	// every failure is expressed as a RemoteOutcome.
	Call(ctx context.Context, req *OutboundRequest, timeout time.Duration) RemoteOutcome
}
