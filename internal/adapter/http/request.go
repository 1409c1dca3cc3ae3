package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxSearchBodyBytes caps the search request body.
const maxSearchBodyBytes = 64 << 10

var (
	errBodyEmpty     = errors.New("search body is empty")
	errBodyNotObject = errors.New("search body must be a JSON object")
	errBodyTooLarge  = errors.New("search body too large")
)

// readSearchBody reads the raw search criteria from the request.
// The body must be a single JSON object; "{}" selects all defaults. Field
// values are left untyped for domain.NewSearchCriteria.
func readSearchBody(r *http.Request) (map[string]any, error) {
	if r.Body == nil {
		return nil, errBodyEmpty
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxSearchBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxSearchBodyBytes {
		return nil, errBodyTooLarge
	}

	return decodeSearchBody(body)
}

// decodeSearchBody parses a search body. Numbers are kept as json.Number so
// large limits are not rounded before they are saturated.
func decodeSearchBody(body []byte) (map[string]any, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errBodyEmpty
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if dec.More() {
		return nil, errors.New("decode body: trailing data after JSON value")
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errBodyNotObject
	}
	return obj, nil
}
