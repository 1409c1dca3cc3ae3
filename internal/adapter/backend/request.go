package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/flight-tower/flight-tower/internal/domain"
)

// UserAgent identifies the forwarding service to the backend.
const UserAgent = "flight-tower-proxy/1.0"

// Requests builds the backend's REST requests.
type Requests struct{}

// NewRequests returns the request builder for the backend's REST API.
func NewRequests() Requests {
	return Requests{}
}

// FlightByID implements domain.RequestBuilder.
func (Requests) FlightByID(base string, id domain.FlightID) *domain.OutboundRequest {
	return BuildFlightByID(base, id)
}

// Search implements domain.RequestBuilder.
func (Requests) Search(base string, criteria domain.SearchCriteria) (*domain.OutboundRequest, error) {
	return BuildSearch(base, criteria)
}

// IPLocation implements domain.RequestBuilder.
func (Requests) IPLocation(base string) *domain.OutboundRequest {
	return BuildIPLocation(base)
}

var _ domain.RequestBuilder = Requests{}

// BuildFlightByID builds GET {base}/flights/{id} with the id percent-encoded.
func BuildFlightByID(base string, id domain.FlightID) *domain.OutboundRequest {
	return &domain.OutboundRequest{
		Operation: domain.OpFlightByID,
		Method:    http.MethodGet,
		URL:       base + "/flights/" + url.PathEscape(string(id)),
		Header:    jsonHeader(),
	}
}

// BuildSearch builds POST {base}/flights/search carrying the clamped criteria.
func BuildSearch(base string, criteria domain.SearchCriteria) (*domain.OutboundRequest, error) {
	criteria.Clamp()

	body, err := json.Marshal(criteria)
	if err != nil {
		return nil, fmt.Errorf("encode search criteria: %w", err)
	}

	return &domain.OutboundRequest{
		Operation: domain.OpSearchFlights,
		Method:    http.MethodPost,
		URL:       base + "/flights/search",
		Header:    jsonHeader(),
		Body:      body,
	}, nil
}

// BuildIPLocation builds GET {base}/geo/ip.
func BuildIPLocation(base string) *domain.OutboundRequest {
	return &domain.OutboundRequest{
		Operation: domain.OpIPLocation,
		Method:    http.MethodGet,
		URL:       base + "/geo/ip",
		Header:    baseHeader(),
	}
}

func baseHeader() http.Header {
	h := make(http.Header)
	h.Set("Accept", "application/json")
	h.Set("User-Agent", UserAgent)
	return h
}

func jsonHeader() http.Header {
	h := baseHeader()
	h.Set("Content-Type", "application/json")
	return h
}
