package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/flight-tower/flight-tower/internal/infrastructure/retry"
)

// APIError is a non-2xx answer from the forwarding service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("flight tower: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("flight tower: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Temporary reports whether repeating the request may succeed.
// Gateway errors (502, 503, 504) are temporary; everything else is the caller's problem.
func (e *APIError) Temporary() bool {
	switch e.StatusCode {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// errorEnvelope is the service's error body.
type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// newAPIError decodes an error response. Bodies that are not an envelope are
// kept as trimmed text.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		apiErr.Code = env.Code
		apiErr.Message = env.Message
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// classifyForRetry marks errors that must not be retried as permanent.
func classifyForRetry(err error) error {
	if apiErr, ok := err.(*APIError); ok && !apiErr.Temporary() {
		return retry.NewPermanent(apiErr)
	}
	return err
}
