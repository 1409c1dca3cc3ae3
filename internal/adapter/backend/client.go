package backend

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-tower/flight-tower/internal/domain"
)

// Default deadlines per operation.
const (
	DefaultFlightTimeout = 10 * time.Second
	DefaultGeoTimeout    = 8 * time.Second
)

// Client executes outbound requests against the backend.
type Client struct {
	http *http.Client
}

// NewClient creates a Client. If httpClient is nil, NewHTTPClient is used.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}
	return &Client{http: httpClient}
}

// NewHTTPClient returns an http.Client without a global timeout; every call
// carries its own deadline instead.
func NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{Transport: transport}
}

// Call issues req and waits for the response or the deadline, whichever comes first.
// The response body is read to EOF before the outcome is returned.
func (c *Client) Call(ctx context.Context, req *domain.OutboundRequest, timeout time.Duration) domain.RemoteOutcome {
	if timeout <= 0 {
		timeout = DefaultFlightTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log := zerolog.Ctx(ctx)
	start := time.Now()

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return domain.TransportFailureOutcome(err.Error())
	}
	if req.Header != nil {
		httpReq.Header = req.Header.Clone()
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		outcome := classify(ctx, err)
		log.Debug().
			Str("operation", string(req.Operation)).
			Str("outcome", outcome.Kind.String()).
			Dur("elapsed", time.Since(start)).
			Msg("Backend call failed")
		return outcome
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return classify(ctx, err)
	}

	log.Debug().
		Str("operation", string(req.Operation)).
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Dur("elapsed", time.Since(start)).
		Msg("Backend call completed")

	return domain.SuccessOutcome(resp.StatusCode, data)
}

// classify maps a transport error to TimedOut when the call deadline fired,
// otherwise to TransportFailure.
func classify(ctx context.Context, err error) domain.RemoteOutcome {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return domain.TimedOutOutcome()
	}

	// Strip the method and URL so the backend address is not echoed to callers.
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}
	return domain.TransportFailureOutcome(err.Error())
}

var _ domain.RemoteCaller = (*Client)(nil)
