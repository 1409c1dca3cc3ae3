package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies why a forwarded request did not produce a payload.
type ErrorKind string

// Error kinds produced while forwarding a request to the backend.
const (
	KindNotConfigured         ErrorKind = "not_configured"
	KindInvalidInput          ErrorKind = "invalid_input"
	KindTimeout               ErrorKind = "timeout"
	KindTransportFailure      ErrorKind = "transport_failure"
	KindUpstreamError         ErrorKind = "upstream_error"
	KindMalformedUpstreamBody ErrorKind = "malformed_upstream_body"
	KindSerializationFailure  ErrorKind = "serialization_failure"
)

// Sentinel errors, one per ErrorKind. A ForwardError unwraps to the sentinel of its kind.
var (
	ErrNotConfigured         = errors.New("backend not configured")
	ErrInvalidInput          = errors.New("invalid input")
	ErrTimeout               = errors.New("backend timed out")
	ErrTransportFailure      = errors.New("backend transport failure")
	ErrUpstreamError         = errors.New("backend returned an error status")
	ErrMalformedUpstreamBody = errors.New("backend returned a malformed body")
	ErrSerializationFailure  = errors.New("payload serialization failed")
)

var kindSentinels = map[ErrorKind]error{
	KindNotConfigured:         ErrNotConfigured,
	KindInvalidInput:          ErrInvalidInput,
	KindTimeout:               ErrTimeout,
	KindTransportFailure:      ErrTransportFailure,
	KindUpstreamError:         ErrUpstreamError,
	KindMalformedUpstreamBody: ErrMalformedUpstreamBody,
	KindSerializationFailure:  ErrSerializationFailure,
}

// Messages returned to the browser for the fixed-status error kinds.
const (
	MsgNotConfigured        = "Backend API URL is not configured."
	MsgFlightIDRequired     = "Flight ID is required"
	MsgInvalidJSONBody      = "Invalid JSON in request body"
	MsgTimedOut             = "Request to backend timed out"
	MsgTransportFailed      = "Backend request failed"
	MsgNoContent            = "Backend returned no content"
	MsgInvalidUpstreamBody  = "Backend returned invalid (non-JSON) response"
	MsgSerializationFailure = "Failed to serialize backend response"
)

// ForwardError is the uniform error produced by the forwarding layer.
// StatusCode is the HTTP status the browser receives.
type ForwardError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
}

// NewForwardError creates a ForwardError of the given kind.
func NewForwardError(kind ErrorKind, message string, statusCode int) *ForwardError {
	return &ForwardError{
		Kind:       kind,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Error implements the error interface.
func (e *ForwardError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
}

// Unwrap returns the sentinel error for the error kind.
func (e *ForwardError) Unwrap() error {
	return kindSentinels[e.Kind]
}

// NotConfiguredError is returned when no backend base URL is available.
func NotConfiguredError() *ForwardError {
	return NewForwardError(KindNotConfigured, MsgNotConfigured, http.StatusInternalServerError)
}

// InvalidInputError is returned for inbound requests that cannot be forwarded.
func InvalidInputError(message string) *ForwardError {
	return NewForwardError(KindInvalidInput, message, http.StatusBadRequest)
}

// TimeoutError is returned when the backend did not answer before the deadline.
func TimeoutError() *ForwardError {
	return NewForwardError(KindTimeout, MsgTimedOut, http.StatusGatewayTimeout)
}

// TransportFailureError is returned when the backend could not be reached.
func TransportFailureError(message string) *ForwardError {
	if message == "" {
		message = MsgTransportFailed
	}
	return NewForwardError(KindTransportFailure, message, http.StatusBadGateway)
}

// UpstreamError carries the backend's own status code and message.
func UpstreamError(message string, statusCode int) *ForwardError {
	return NewForwardError(KindUpstreamError, message, statusCode)
}

// MalformedUpstreamBodyError is returned for 204 responses and 2xx bodies that are not JSON.
func MalformedUpstreamBodyError(message string) *ForwardError {
	return NewForwardError(KindMalformedUpstreamBody, message, http.StatusBadGateway)
}

// SerializationFailureError is returned when a successful payload cannot be encoded.
func SerializationFailureError() *ForwardError {
	return NewForwardError(KindSerializationFailure, MsgSerializationFailure, http.StatusInternalServerError)
}

// IsNotConfigured checks if the error is a missing-configuration error.
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}

// IsInvalidInput checks if the error is an inbound validation error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsTimeout checks if the error is a backend timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsTransportFailure checks if the error is a backend transport failure.
func IsTransportFailure(err error) bool {
	return errors.Is(err, ErrTransportFailure)
}

// IsUpstreamError checks if the error carries a backend error status.
func IsUpstreamError(err error) bool {
	return errors.Is(err, ErrUpstreamError)
}

// IsMalformedUpstreamBody checks if the backend body could not be used.
func IsMalformedUpstreamBody(err error) bool {
	return errors.Is(err, ErrMalformedUpstreamBody)
}
