package http

// SearchFlightsRequest documents the search body for Swagger.
// The handler does not bind into it: every field is optional and
// loosely typed values ("52.2", true, null) are coerced, with
// out-of-range values clamped rather than rejected.
type SearchFlightsRequest struct {
	// Lat is the latitude of the search center (default 0)
	Lat *float64 `json:"lat,omitempty" example:"52.2297"`

	// Lon is the longitude of the search center (default 0)
	Lon *float64 `json:"lon,omitempty" example:"21.0122"`

	// RadiusKm is the search radius, clamped to 5..100 (default 25)
	RadiusKm *float64 `json:"radius_km,omitempty" example:"25"`

	// Limit is the maximum number of flights, clamped to 1..50 (default 10)
	Limit *int `json:"limit,omitempty" example:"10"`
}
