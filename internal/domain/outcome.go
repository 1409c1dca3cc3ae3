package domain

import (
	"encoding/json"
)

// OutcomeKind tags the variant held by a RemoteOutcome.
type OutcomeKind int

// Remote call outcomes.
const (
	// OutcomeSuccess means a response arrived; its status is not yet interpreted
	OutcomeSuccess OutcomeKind = iota
	// OutcomeTimedOut means the deadline fired before a complete response arrived
	OutcomeTimedOut
	// OutcomeTransportFailure means the backend could not be reached
	OutcomeTransportFailure
)

// String returns the outcome name for logging.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeTimedOut:
		return "timed_out"
	case OutcomeTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// RemoteOutcome is the result of one bounded call to the backend.
// StatusCode and Body are set for OutcomeSuccess, Message for OutcomeTransportFailure.
type RemoteOutcome struct {
	Kind       OutcomeKind
	StatusCode int
	Body       []byte
	Message    string
}

// SuccessOutcome builds an outcome for a fully read response.
func SuccessOutcome(statusCode int, body []byte) RemoteOutcome {
	return RemoteOutcome{Kind: OutcomeSuccess, StatusCode: statusCode, Body: body}
}

// TimedOutOutcome builds an outcome for an elapsed deadline.
func TimedOutOutcome() RemoteOutcome {
	return RemoteOutcome{Kind: OutcomeTimedOut}
}

// TransportFailureOutcome builds an outcome for an unreachable backend.
func TransportFailureOutcome(message string) RemoteOutcome {
	return RemoteOutcome{Kind: OutcomeTransportFailure, Message: message}
}

// NormalizedResult is either a JSON payload or a ForwardError, never both.
type NormalizedResult struct {
	Payload json.RawMessage
	Err     *ForwardError
}

// OkResult wraps a successful payload.
func OkResult(payload json.RawMessage) NormalizedResult {
	return NormalizedResult{Payload: payload}
}

// ErrorResult wraps a forwarding error.
func ErrorResult(err *ForwardError) NormalizedResult {
	return NormalizedResult{Err: err}
}

// IsOk returns true if the result holds a payload.
func (r NormalizedResult) IsOk() bool {
	return r.Err == nil
}
