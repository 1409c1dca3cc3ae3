// Package client is a Go client for the flight tower forwarding endpoints.
// It retries gateway failures with exponential backoff and never retries 4xx answers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-tower/flight-tower/internal/domain"
	"github.com/flight-tower/flight-tower/internal/infrastructure/retry"
)

const (
	// DefaultTimeout bounds a single attempt. It sits above the service's own
	// backend deadline so the service gets to answer with 504 first.
	DefaultTimeout = 15 * time.Second

	userAgent = "flightwatch/1.0"
)

// Client calls the forwarding service.
type Client struct {
	baseURL string
	http    *http.Client
	retry   retry.Config
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithRetry replaces the retry policy. RetryIf is always forced to skip permanent errors.
func WithRetry(cfg retry.Config) Option {
	return func(c *Client) {
		c.retry = cfg.WithRetryIf(retry.SkipPermanent)
	}
}

// New creates a Client for the service at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("client: base URL must be an absolute http(s) URL, got %q", baseURL)
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
		retry:   retry.ClientConfig,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SearchFlights runs a proximity search. Criteria are clamped before sending.
func (c *Client) SearchFlights(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error) {
	criteria.Clamp()

	var result domain.SearchResult
	if err := c.do(ctx, http.MethodPost, "/flights/search", criteria, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetFlight fetches the detail of one flight.
func (c *Client) GetFlight(ctx context.Context, id domain.FlightID) (*domain.FlightDetail, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.MsgFlightIDRequired)
	}

	var detail domain.FlightDetail
	if err := c.do(ctx, http.MethodGet, "/flights/"+url.PathEscape(string(id)), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetIPLocation returns the position the backend derives from the caller's IP.
func (c *Client) GetIPLocation(ctx context.Context) (*domain.Location, error) {
	var loc domain.Location
	if err := c.do(ctx, http.MethodGet, "/geo/ip", nil, &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// do sends the request under the retry policy and decodes a 2xx body into out.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
	}

	log := zerolog.Ctx(ctx)
	cfg := c.retry.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		log.Warn().
			Err(err).
			Str("method", method).
			Str("path", path).
			Int("attempt", attempt).
			Dur("retry_in", delay).
			Msg("Request failed, retrying")
	})

	err := retry.Do(ctx, func() error {
		return classifyForRetry(c.once(ctx, method, path, payload, out))
	}, cfg)

	var permanent *retry.Permanent
	if errors.As(err, &permanent) {
		return permanent.Err
	}
	return err
}

func (c *Client) once(ctx context.Context, method, path string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return retry.NewPermanent(fmt.Errorf("client: build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return retry.NewPermanent(ctx.Err())
		}
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("client: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return retry.NewPermanent(fmt.Errorf("client: decode response: %w", err))
	}
	return nil
}
