// Package domain contains the core entities and rules for the flight tracking service.
// These types are transport-agnostic and shared by the forwarding service and its client.
package domain

// FlightID identifies a single tracked flight in the backend's namespace.
// It is opaque: the only requirement is that it is non-empty.
type FlightID string

// Valid reports whether the id is present. Whitespace is a legal id.
func (id FlightID) Valid() bool {
	return id != ""
}

// FlightSummary is one entry of a proximity search result.
// Every field the backend may omit is a pointer.
type FlightSummary struct {
	ID                     *string  `json:"id" csv:"id"`
	Callsign               *string  `json:"callsign" csv:"callsign"`
	Lat                    float64  `json:"lat" csv:"lat"`
	Lon                    float64  `json:"lon" csv:"lon"`
	DistanceKm             float64  `json:"distance_km" csv:"distance_km"`
	AltitudeFt             *int     `json:"altitude_ft" csv:"altitude_ft"`
	SpeedKts               *int     `json:"speed_kts" csv:"speed_kts"`
	OriginAirportName      *string  `json:"origin_airport_name" csv:"origin_airport_name"`
	OriginAirportIATA      *string  `json:"origin_airport_iata" csv:"origin_airport_iata"`
	DestinationAirportName *string  `json:"destination_airport_name" csv:"destination_airport_name"`
	DestinationAirportIATA *string  `json:"destination_airport_iata" csv:"destination_airport_iata"`
	HeadingDeg             *float64 `json:"heading_deg" csv:"heading_deg"`
}

// SearchResult is the payload of a successful proximity search.
type SearchResult struct {
	Count   int             `json:"count"`
	Flights []FlightSummary `json:"flights"`
}

// FlightDetail is the payload of a successful by-id lookup.
type FlightDetail struct {
	Airline            *string     `json:"airline"`
	AircraftCode       *string     `json:"aircraft_code"`
	Route              RouteDetail `json:"route"`
	Times              TimeDetail  `json:"times"`
	OriginCountry      *string     `json:"origin_country"`
	DestinationCountry *string     `json:"destination_country"`
}

// RouteDetail holds the origin and destination of a flight.
type RouteDetail struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

// TimeDetail holds scheduled times as unix seconds.
type TimeDetail struct {
	ScheduledDeparture *int64  `json:"scheduled_departure"`
	ScheduledArrival   *int64  `json:"scheduled_arrival"`
	DurationReadable   *string `json:"duration_readable"`
}

// Location is an IP-derived position.
type Location struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Source string  `json:"source,omitempty"`
}

// IsZero reports whether the backend could not resolve a position.
// The backend answers 0,0 when geolocation fails.
func (l Location) IsZero() bool {
	return l.Lat == 0 && l.Lon == 0
}
