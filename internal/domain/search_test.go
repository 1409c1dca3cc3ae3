package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchCriteria(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want SearchCriteria
	}{
		{
			name: "empty body uses defaults",
			raw:  map[string]any{},
			want: SearchCriteria{Lat: 0, Lon: 0, RadiusKm: DefaultRadiusKm, Limit: DefaultLimit},
		},
		{
			name: "nil map uses defaults",
			raw:  nil,
			want: SearchCriteria{Lat: 0, Lon: 0, RadiusKm: DefaultRadiusKm, Limit: DefaultLimit},
		},
		{
			name: "values in range pass through",
			raw:  map[string]any{"lat": 52.2, "lon": 21.0, "radius_km": 40.0, "limit": 20.0},
			want: SearchCriteria{Lat: 52.2, Lon: 21.0, RadiusKm: 40, Limit: 20},
		},
		{
			name: "oversized radius and limit are clamped",
			raw:  map[string]any{"lat": 52.2, "lon": 21.0, "radius_km": 1000.0, "limit": 999.0},
			want: SearchCriteria{Lat: 52.2, Lon: 21.0, RadiusKm: MaxRadiusKm, Limit: MaxLimit},
		},
		{
			name: "undersized radius and limit are clamped",
			raw:  map[string]any{"radius_km": 1.0, "limit": 0.0},
			want: SearchCriteria{RadiusKm: MinRadiusKm, Limit: MinLimit},
		},
		{
			name: "negative values are clamped",
			raw:  map[string]any{"radius_km": -50.0, "limit": -3.0},
			want: SearchCriteria{RadiusKm: MinRadiusKm, Limit: MinLimit},
		},
		{
			name: "numeric strings are parsed",
			raw:  map[string]any{"lat": "52.5", "lon": " 13.4 ", "radius_km": "30", "limit": "5"},
			want: SearchCriteria{Lat: 52.5, Lon: 13.4, RadiusKm: 30, Limit: 5},
		},
		{
			name: "unparsable coordinates default to zero",
			raw:  map[string]any{"lat": "north", "lon": []any{1.0}},
			want: SearchCriteria{RadiusKm: DefaultRadiusKm, Limit: DefaultLimit},
		},
		{
			name: "unparsable radius and limit use defaults",
			raw:  map[string]any{"radius_km": "far", "limit": map[string]any{}},
			want: SearchCriteria{RadiusKm: DefaultRadiusKm, Limit: DefaultLimit},
		},
		{
			name: "null values use defaults",
			raw:  map[string]any{"lat": nil, "radius_km": nil, "limit": nil},
			want: SearchCriteria{RadiusKm: DefaultRadiusKm, Limit: DefaultLimit},
		},
		{
			name: "fractional limit is truncated",
			raw:  map[string]any{"limit": 7.9},
			want: SearchCriteria{RadiusKm: DefaultRadiusKm, Limit: 7},
		},
		{
			name: "huge limit saturates to max",
			raw:  map[string]any{"limit": 1e300},
			want: SearchCriteria{RadiusKm: DefaultRadiusKm, Limit: MaxLimit},
		},
		{
			name: "booleans coerce to one and zero",
			raw:  map[string]any{"lat": true, "lon": false},
			want: SearchCriteria{Lat: 1, Lon: 0, RadiusKm: DefaultRadiusKm, Limit: DefaultLimit},
		},
		{
			name: "json numbers are accepted",
			raw:  map[string]any{"lat": json.Number("48.85"), "limit": json.Number("12")},
			want: SearchCriteria{Lat: 48.85, RadiusKm: DefaultRadiusKm, Limit: 12},
		},
		{
			name: "NaN string falls back",
			raw:  map[string]any{"lat": "NaN", "radius_km": "Inf"},
			want: SearchCriteria{RadiusKm: DefaultRadiusKm, Limit: DefaultLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewSearchCriteria(tt.raw))
		})
	}
}

func TestSearchCriteria_ClampBounds(t *testing.T) {
	for _, radius := range []float64{-1e9, -1, 0, 4.99, 5, 50, 100, 100.01, 1e9} {
		for _, limit := range []int{-100, 0, 1, 25, 50, 51, 1 << 20} {
			c := SearchCriteria{RadiusKm: radius, Limit: limit}
			c.Clamp()

			assert.GreaterOrEqual(t, c.RadiusKm, MinRadiusKm)
			assert.LessOrEqual(t, c.RadiusKm, MaxRadiusKm)
			assert.GreaterOrEqual(t, c.Limit, MinLimit)
			assert.LessOrEqual(t, c.Limit, MaxLimit)
		}
	}
}

func TestSearchCriteria_JSONShape(t *testing.T) {
	c := SearchCriteria{Lat: 52.2, Lon: 21.0, RadiusKm: 100, Limit: 50}

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lat":52.2,"lon":21.0,"radius_km":100,"limit":50}`, string(data))
}
