// Package mock provides test doubles for the flight tower proxy.
// Backend is an httptest server standing in for the flight-data backend, with
// configurable status, body and delay per route and a call counter.
package mock

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// Reply is a canned backend answer.
type Reply struct {
	Status int
	Body   string
	Delay  time.Duration

	// Hangup closes the connection without answering.
	Hangup bool
}

// RecordedRequest is what the backend saw for one call.
type RecordedRequest struct {
	Method      string
	EscapedPath string
	ContentType string
	Body        string
}

// Backend is a configurable fake flight-data backend.
type Backend struct {
	server *httptest.Server

	mu       sync.Mutex
	replies  map[string]Reply
	fallback Reply
	requests []RecordedRequest
}

// NewBackend starts a backend that answers 200 {} to every route until configured otherwise.
// It is closed when the test ends.
func NewBackend(t interface{ Cleanup(func()) }) *Backend {
	b := &Backend{
		replies:  make(map[string]Reply),
		fallback: Reply{Status: http.StatusOK, Body: `{}`},
	}
	b.server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.server.Close)
	return b
}

// URL returns the backend base URL.
func (b *Backend) URL() string {
	return b.server.URL
}

// On sets the reply for an exact method and escaped path, e.g. "GET /flights/abc%2F1".
func (b *Backend) On(method, escapedPath string, r Reply) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.replies[method+" "+escapedPath] = r
	return b
}

// Default sets the reply used when no route matches.
func (b *Backend) Default(r Reply) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fallback = r
	return b
}

// CallCount returns the number of requests received.
func (b *Backend) CallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

// Requests returns a copy of the recorded requests.
func (b *Backend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]RecordedRequest(nil), b.requests...)
}

// LastRequest returns the most recent request, if any.
func (b *Backend) LastRequest() (RecordedRequest, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		return RecordedRequest{}, false
	}
	return b.requests[len(b.requests)-1], true
}

// Reset forgets recorded requests.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = nil
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.requests = append(b.requests, RecordedRequest{
		Method:      r.Method,
		EscapedPath: r.URL.EscapedPath(),
		ContentType: r.Header.Get("Content-Type"),
		Body:        string(body),
	})
	reply, ok := b.replies[r.Method+" "+r.URL.EscapedPath()]
	if !ok {
		reply = b.fallback
	}
	b.mu.Unlock()

	if reply.Delay > 0 {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(reply.Delay):
		}
	}

	if reply.Hangup {
		if hj, ok := w.(http.Hijacker); ok {
			if conn, _, err := hj.Hijack(); err == nil {
				_ = conn.Close()
			}
		}
		return
	}

	if reply.Body != "" {
		w.Header().Set("Content-Type", "application/json")
	}
	status := reply.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, reply.Body)
}
