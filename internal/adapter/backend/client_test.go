package backend

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-tower/flight-tower/internal/domain"
)

func TestClient_Call_Success(t *testing.T) {
	var gotMethod, gotPath, gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.EscapedPath()
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"count":0,"flights":[]}`))
	}))
	defer srv.Close()

	req, err := BuildSearch(srv.URL, domain.SearchCriteria{Lat: 1, Lon: 2, RadiusKm: 10, Limit: 3})
	require.NoError(t, err)

	outcome := NewClient(nil).Call(context.Background(), req, time.Second)

	assert.Equal(t, domain.OutcomeSuccess, outcome.Kind)
	assert.Equal(t, http.StatusOK, outcome.StatusCode)
	assert.JSONEq(t, `{"count":0,"flights":[]}`, string(outcome.Body))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/flights/search", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"lat":1,"lon":2,"radius_km":10,"limit":3}`, gotBody)
}

func TestClient_Call_EscapedIDReachesBackend(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	outcome := NewClient(nil).Call(context.Background(), BuildFlightByID(srv.URL, "a/b c"), time.Second)

	assert.Equal(t, domain.OutcomeSuccess, outcome.Kind)
	assert.Equal(t, "/flights/a%2Fb%20c", gotPath)
}

func TestClient_Call_NonSuccessStatusIsStillSuccessOutcome(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"error":"not found"}`},
		{name: "no content", status: http.StatusNoContent, body: ""},
		{name: "server error", status: http.StatusInternalServerError, body: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			outcome := NewClient(nil).Call(context.Background(), BuildIPLocation(srv.URL), time.Second)

			assert.Equal(t, domain.OutcomeSuccess, outcome.Kind)
			assert.Equal(t, tt.status, outcome.StatusCode)
			assert.Equal(t, tt.body, string(outcome.Body))
		})
	}
}

func TestClient_Call_TimesOutBeforeHeaders(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	outcome := NewClient(nil).Call(context.Background(), BuildIPLocation(srv.URL), 50*time.Millisecond)

	assert.Equal(t, domain.OutcomeTimedOut, outcome.Kind)
	assert.Less(t, time.Since(start), 2*time.Second, "deadline must cut the call short")
}

func TestClient_Call_TimesOutWhileReadingBody(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"partial":`))
		w.(http.Flusher).Flush()
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	outcome := NewClient(nil).Call(context.Background(), BuildIPLocation(srv.URL), 100*time.Millisecond)

	assert.Equal(t, domain.OutcomeTimedOut, outcome.Kind, "a partially read body must not be classified")
}

func TestClient_Call_TransportFailure(t *testing.T) {
	// Reserve a port, then close the listener so the connection is refused.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	outcome := NewClient(nil).Call(context.Background(), BuildIPLocation("http://"+addr), time.Second)

	assert.Equal(t, domain.OutcomeTransportFailure, outcome.Kind)
	assert.NotEmpty(t, outcome.Message)
	assert.NotContains(t, outcome.Message, "/geo/ip", "the backend URL should not leak into the message")
}

func TestClient_Call_InvalidURL(t *testing.T) {
	req := &domain.OutboundRequest{Method: http.MethodGet, URL: "http://[::1"}

	outcome := NewClient(nil).Call(context.Background(), req, time.Second)

	assert.Equal(t, domain.OutcomeTransportFailure, outcome.Kind)
}

func TestClient_Call_DefaultTimeoutWhenZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	outcome := NewClient(nil).Call(context.Background(), BuildIPLocation(srv.URL), 0)

	assert.Equal(t, domain.OutcomeSuccess, outcome.Kind)
}
