package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-tower/flight-tower/internal/domain"
	"github.com/flight-tower/flight-tower/internal/infrastructure/retry"
)

var fastRetry = retry.Config{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     5 * time.Millisecond,
	Multiplier:   2.0,
}

// newTestClient starts a server that answers with the given handler and counts requests.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL+"/", WithRetry(fastRetry))
	require.NoError(t, err)
	return c, &calls
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNew_ValidatesBaseURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8080", "ftp://host", "http://"} {
		_, err := New(raw)
		assert.Error(t, err, raw)
	}

	c, err := New(" https://tower.example.com/ ")
	require.NoError(t, err)
	assert.Equal(t, "https://tower.example.com", c.baseURL)
	assert.Equal(t, retry.ClientConfig.MaxAttempts, c.retry.MaxAttempts)
}

func TestClient_SearchFlights(t *testing.T) {
	var got domain.SearchCriteria
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/flights/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, `{"count":1,"flights":[{"id":"f1","callsign":"LOT3","lat":52.1,"lon":21.0,"distance_km":3.5,"altitude_ft":null}]}`)
	})

	result, err := c.SearchFlights(context.Background(), domain.SearchCriteria{Lat: 52.2, Lon: 21, RadiusKm: 500, Limit: 0})

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, domain.SearchCriteria{Lat: 52.2, Lon: 21, RadiusKm: 100, Limit: 1}, got, "criteria are clamped before sending")
	require.Len(t, result.Flights, 1)
	assert.Equal(t, "LOT3", *result.Flights[0].Callsign)
	assert.Nil(t, result.Flights[0].AltitudeFt)
}

func TestClient_GetFlight_EscapesID(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flights/abc%2F123", r.URL.EscapedPath())
		writeJSON(w, http.StatusOK, `{"airline":"LOT","route":{"from":"WAW","to":null},"times":{}}`)
	})

	detail, err := c.GetFlight(context.Background(), "abc/123")

	require.NoError(t, err)
	assert.Equal(t, "LOT", *detail.Airline)
	assert.Equal(t, "WAW", *detail.Route.From)
	assert.Nil(t, detail.Route.To)
}

func TestClient_GetFlight_EmptyIDNeverSent(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})

	_, err := c.GetFlight(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, calls.Load())
}

func TestClient_GetFlight_WhitespaceIDIsEscaped(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flights/%20%20", r.URL.EscapedPath())
		writeJSON(w, http.StatusOK, `{"airline":"LOT"}`)
	})

	_, err := c.GetFlight(context.Background(), "  ")

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_GetIPLocation(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geo/ip", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"lat":52.23,"lon":21.01,"source":"ip"}`)
	})

	loc, err := c.GetIPLocation(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.Location{Lat: 52.23, Lon: 21.01, Source: "ip"}, *loc)
}

func TestClient_ErrorHandling(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantAttempts int32
		wantCode     string
		wantMessage  string
	}{
		{"not found is not retried", 404, `{"code":"upstream_error","message":"not found"}`, 1, "upstream_error", "not found"},
		{"bad request is not retried", 400, `{"code":"invalid_request","message":"Invalid JSON in request body"}`, 1, "invalid_request", "Invalid JSON in request body"},
		{"not configured is not retried", 500, `{"code":"not_configured","message":"Backend API URL is not configured."}`, 1, "not_configured", "Backend API URL is not configured."},
		{"timeout is retried", 504, `{"code":"timeout","message":"Request to backend timed out"}`, 3, "timeout", "Request to backend timed out"},
		{"bad gateway is retried", 502, `{"code":"bad_gateway","message":"connection refused"}`, 3, "bad_gateway", "connection refused"},
		{"plain text body", 503, "  maintenance  ", 3, "", "maintenance"},
		{"empty body", 429, "", 1, "", "Too Many Requests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := c.GetIPLocation(context.Background())

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.False(t, retry.IsPermanent(err), "permanent wrapper must not leak to callers")
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantAttempts, calls.Load())
		})
	}
}

func TestClient_RecoversAfterGatewayError(t *testing.T) {
	var n atomic.Int32
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if n.Add(1) == 1 {
			writeJSON(w, http.StatusGatewayTimeout, `{"code":"timeout","message":"Request to backend timed out"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"lat":1,"lon":2}`)
	})

	loc, err := c.GetIPLocation(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1.0, loc.Lat)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_InvalidSuccessBody(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `<html>`)
	})

	_, err := c.GetIPLocation(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_TransportFailureIsRetried(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		conn, _, err := w.(http.Hijacker).Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	})

	_, err := c.GetIPLocation(context.Background())

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_ContextCancelled(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetIPLocation(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())
}
