package response

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// Health writes a health check response stamped with the given time.
func Health(c echo.Context, now time.Time) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
		Time:   now.UTC().Format(time.RFC3339),
	})
}

// Payload writes a backend payload as a 200 response, byte for byte.
// A payload that is not valid JSON becomes a 500 envelope instead of a
// half-written body.
func Payload(c echo.Context, payload json.RawMessage) error {
	if !json.Valid(payload) {
		return SerializationFailure(c)
	}
	return c.JSONBlob(http.StatusOK, payload)
}
