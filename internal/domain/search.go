package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Search bounds and defaults applied before a search reaches the backend.
const (
	MinRadiusKm     = 5.0
	MaxRadiusKm     = 100.0
	DefaultRadiusKm = 25.0

	MinLimit     = 1
	MaxLimit     = 50
	DefaultLimit = 10
)

// SearchCriteria defines the parameters of a proximity search.
type SearchCriteria struct {
	// Lat is the latitude of the search centre
	Lat float64 `json:"lat"`

	// Lon is the longitude of the search centre
	Lon float64 `json:"lon"`

	// RadiusKm is the search radius in kilometres, clamped to [5, 100]
	RadiusKm float64 `json:"radius_km"`

	// Limit is the maximum number of flights returned, clamped to [1, 50]
	Limit int `json:"limit"`
}

// NewSearchCriteria coerces a raw decoded JSON object into clamped SearchCriteria.
// Absent, null or unparsable values fall back to their defaults.
func NewSearchCriteria(raw map[string]any) SearchCriteria {
	criteria := SearchCriteria{
		Lat:      coerceFloat(raw["lat"], 0),
		Lon:      coerceFloat(raw["lon"], 0),
		RadiusKm: coerceFloat(raw["radius_km"], DefaultRadiusKm),
		Limit:    coerceInt(raw["limit"], DefaultLimit),
	}
	criteria.Clamp()
	return criteria
}

// Clamp constrains RadiusKm and Limit to their allowed ranges.
func (s *SearchCriteria) Clamp() {
	s.RadiusKm = math.Min(MaxRadiusKm, math.Max(MinRadiusKm, s.RadiusKm))

	if s.Limit < MinLimit {
		s.Limit = MinLimit
	}
	if s.Limit > MaxLimit {
		s.Limit = MaxLimit
	}
}

// coerceFloat converts a decoded JSON value to a finite float64.
func coerceFloat(v any, fallback float64) float64 {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return fallback
		}
		f = parsed
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return fallback
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return fallback
		}
		f = parsed
	case bool:
		if val {
			return 1
		}
		return 0
	default:
		return fallback
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return f
}

// coerceInt converts a decoded JSON value to an int, truncating toward zero.
func coerceInt(v any, fallback int) int {
	f := coerceFloat(v, math.NaN())
	if math.IsNaN(f) {
		return fallback
	}
	// Saturate before conversion so huge inputs still clamp to the upper bound.
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	if f < math.MinInt32 {
		return math.MinInt32
	}
	return int(f)
}
