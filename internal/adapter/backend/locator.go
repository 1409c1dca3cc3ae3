// Package backend talks to the external flight-data service.
// It resolves the service location, builds outbound requests and executes
// them under a hard timeout.
package backend

import (
	"strings"

	"github.com/flight-tower/flight-tower/internal/domain"
)

// StaticLocator resolves a base URL fixed at construction time.
type StaticLocator struct {
	baseURL string
}

// NewStaticLocator creates a locator for the given base URL.
// An empty or blank URL yields a locator that reports "not configured".
func NewStaticLocator(baseURL string) *StaticLocator {
	return &StaticLocator{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

// Resolve implements domain.Locator.
func (l *StaticLocator) Resolve() (string, bool) {
	if l == nil || l.baseURL == "" {
		return "", false
	}
	return l.baseURL, true
}

var _ domain.Locator = (*StaticLocator)(nil)
