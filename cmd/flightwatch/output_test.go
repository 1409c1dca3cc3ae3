package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-tower/flight-tower/internal/client"
	"github.com/flight-tower/flight-tower/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func sampleSnapshot() client.Snapshot {
	return client.Snapshot{
		Criteria:  domain.SearchCriteria{Lat: 52.23, Lon: 21.01, RadiusKm: 25, Limit: 10},
		FetchedAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
		Result: &domain.SearchResult{
			Count: 2,
			Flights: []domain.FlightSummary{
				{ID: ptr("f1"), Callsign: ptr("LOT3"), OriginAirportIATA: ptr("WAW"), DestinationAirportIATA: ptr("JFK"), AltitudeFt: ptr(35000), SpeedKts: ptr(480), DistanceKm: 4.25},
				{ID: ptr("f2"), DistanceKm: 12},
			},
		},
	}
}

func TestRenderSearch_Table(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, renderSearch(&buf, formatTable, sampleSnapshot()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "2 flights within 25 km of 52.2300,21.0100")
	assert.Contains(t, lines[1], "CALLSIGN")
	assert.Regexp(t, `f1\s+LOT3\s+WAW\s+JFK\s+35000\s+480\s+4\.2`, lines[2])
	assert.Regexp(t, `f2\s+-\s+-\s+-\s+-\s+-\s+12\.0`, lines[3])
}

func TestRenderSearch_TableStale(t *testing.T) {
	snap := sampleSnapshot()
	snap.Stale = true
	snap.Err = errors.New("flight tower: 504 timeout: Request to backend timed out")
	var buf bytes.Buffer

	require.NoError(t, renderSearch(&buf, formatTable, snap))

	assert.Contains(t, buf.String(), "[stale: flight tower: 504 timeout")
}

func TestRenderSearch_JSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, renderSearch(&buf, formatJSON, sampleSnapshot()))

	assert.Contains(t, buf.String(), `"callsign": "LOT3"`)
	assert.Contains(t, buf.String(), `"altitude_ft": null`)
}

func TestRenderSearch_CSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, renderSearch(&buf, formatCSV, sampleSnapshot()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "id,callsign,lat,lon,distance_km"))
	assert.True(t, strings.HasPrefix(lines[1], "f1,LOT3,0,0,4.25,35000,480,,WAW,,JFK,"))
	assert.True(t, strings.HasPrefix(lines[2], "f2,,0,0,12,,"))
}

func TestRenderSearch_CSVEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, renderSearch(&buf, formatCSV, client.Snapshot{Result: &domain.SearchResult{}}))

	assert.Equal(t, "id,callsign,lat,lon,distance_km,altitude_ft,speed_kts,origin_airport_name,origin_airport_iata,destination_airport_name,destination_airport_iata,heading_deg\n", buf.String())
}

func TestRenderDetail(t *testing.T) {
	d := &domain.FlightDetail{
		Airline: ptr("LOT Polish Airlines"),
		Route:   domain.RouteDetail{From: ptr("WAW")},
		Times:   domain.TimeDetail{ScheduledDeparture: ptr(int64(1748781000)), DurationReadable: ptr("9h 40m")},
	}

	var table bytes.Buffer
	require.NoError(t, renderDetail(&table, formatTable, "f1", d))
	out := table.String()
	assert.Regexp(t, `Airline\s+LOT Polish Airlines`, out)
	assert.Regexp(t, `Route\s+WAW -> -`, out)
	assert.Regexp(t, `Departure\s+2025-06-01 12:30 UTC`, out)
	assert.Regexp(t, `Arrival\s+-`, out)

	var js bytes.Buffer
	require.NoError(t, renderDetail(&js, formatJSON, "f1", d))
	assert.Contains(t, js.String(), `"duration_readable": "9h 40m"`)

	assert.ErrorIs(t, renderDetail(&bytes.Buffer{}, formatCSV, "f1", d), errCSVDetail)
}
