package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/flight-tower/flight-tower/internal/domain"
)

// upstreamMessageFields are checked in order when a backend error body is a JSON object.
// "detail" is what FastAPI backends use.
var upstreamMessageFields = []string{"message", "error", "detail"}

// Normalize reduces a remote outcome to a payload or a uniform error.
// The order of the checks matters: transport classification wins over status,
// and status wins over body shape.
func Normalize(outcome domain.RemoteOutcome) domain.NormalizedResult {
	switch outcome.Kind {
	case domain.OutcomeTimedOut:
		return domain.ErrorResult(domain.TimeoutError())
	case domain.OutcomeTransportFailure:
		return domain.ErrorResult(domain.TransportFailureError(outcome.Message))
	}

	if outcome.StatusCode == http.StatusNoContent {
		return domain.ErrorResult(domain.MalformedUpstreamBodyError(domain.MsgNoContent))
	}

	if outcome.StatusCode < 200 || outcome.StatusCode > 299 {
		return domain.ErrorResult(domain.UpstreamError(upstreamMessage(outcome), outcome.StatusCode))
	}

	body := bytes.TrimSpace(outcome.Body)
	if len(body) == 0 || !json.Valid(body) {
		return domain.ErrorResult(domain.MalformedUpstreamBodyError(domain.MsgInvalidUpstreamBody))
	}

	return domain.OkResult(json.RawMessage(body))
}

// upstreamMessage picks a human-readable message out of a backend error body.
func upstreamMessage(outcome domain.RemoteOutcome) string {
	text := strings.TrimSpace(string(outcome.Body))
	if text == "" {
		return fmt.Sprintf("Backend error: %d", outcome.StatusCode)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err == nil {
		for _, field := range upstreamMessageFields {
			var msg string
			if err := json.Unmarshal(obj[field], &msg); err == nil && msg != "" {
				return msg
			}
		}
	}

	return text
}
