// Package response provides standardized HTTP response builders for the flight tower proxy.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"github.com/flight-tower/flight-tower/internal/domain"
)

// ErrorDetail is the error envelope returned to the browser.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`
	// Message is a human-readable error message
	Message string `json:"message"`
}

// Error codes used in API responses.
const (
	CodeNotConfigured       = "not_configured"
	CodeInvalidRequest      = "invalid_request"
	CodeTimeout             = "timeout"
	CodeBadGateway          = "bad_gateway"
	CodeUpstreamError       = "upstream_error"
	CodeInvalidUpstreamBody = "invalid_upstream_response"
	CodeInternalError       = "internal_error"
	CodeNotFound            = "not_found"
	CodeMethodNotAllowed    = "method_not_allowed"
)

// Error messages used in API responses.
const (
	MsgInternalError    = "An unexpected error occurred"
	MsgRouteNotFound    = "Route not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// kindCodes maps each forwarding error kind to its envelope code.
var kindCodes = map[domain.ErrorKind]string{
	domain.KindNotConfigured:         CodeNotConfigured,
	domain.KindInvalidInput:          CodeInvalidRequest,
	domain.KindTimeout:               CodeTimeout,
	domain.KindTransportFailure:      CodeBadGateway,
	domain.KindUpstreamError:         CodeUpstreamError,
	domain.KindMalformedUpstreamBody: CodeInvalidUpstreamBody,
	domain.KindSerializationFailure:  CodeInternalError,
}

// CodeFor returns the envelope code for an error kind.
func CodeFor(kind domain.ErrorKind) string {
	if code, ok := kindCodes[kind]; ok {
		return code
	}
	return CodeInternalError
}

// NewErrorDetail builds the envelope for a forwarding error.
func NewErrorDetail(err *domain.ForwardError) *ErrorDetail {
	return &ErrorDetail{
		Code:    CodeFor(err.Kind),
		Message: err.Message,
	}
}
