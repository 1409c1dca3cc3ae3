package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/flight-tower/flight-tower/internal/domain"
	"github.com/flight-tower/flight-tower/internal/infrastructure/timeutil"
)

// DefaultCacheTTL is how long a search result is served without revalidation.
const DefaultCacheTTL = 15 * time.Second

// Searcher runs proximity searches. *Client implements it.
type Searcher interface {
	SearchFlights(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error)
}

// Snapshot is what the cache hands back for a search.
type Snapshot struct {
	Criteria  domain.SearchCriteria
	Result    *domain.SearchResult
	FetchedAt time.Time

	// Stale is set when Result belongs to an earlier fetch because the refresh failed
	// or because the criteria changed and the new fetch failed.
	Stale bool

	// Err is the refresh error, if any. It is set together with Stale.
	Err error
}

type cacheEntry struct {
	result    *domain.SearchResult
	fetchedAt time.Time
}

// SearchCache revalidates search results keyed by their clamped criteria.
// Concurrent lookups of the same criteria share one request. When a refresh fails
// the last good result is kept and returned as stale.
type SearchCache struct {
	searcher Searcher
	clock    timeutil.Clock
	ttl      time.Duration

	group singleflight.Group

	mu      sync.Mutex
	entries map[domain.SearchCriteria]cacheEntry
	last    *Snapshot
}

// NewSearchCache creates a cache in front of searcher. A non-positive ttl uses DefaultCacheTTL.
func NewSearchCache(searcher Searcher, clock timeutil.Clock, ttl time.Duration) *SearchCache {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &SearchCache{
		searcher: searcher,
		clock:    clock,
		ttl:      ttl,
		entries:  make(map[domain.SearchCriteria]cacheEntry),
	}
}

// Get returns a fresh result for criteria, fetching it when missing or expired.
// An error is returned only when the fetch failed and there is nothing to show.
func (c *SearchCache) Get(ctx context.Context, criteria domain.SearchCriteria) (Snapshot, error) {
	criteria.Clamp()

	c.mu.Lock()
	entry, ok := c.entries[criteria]
	c.mu.Unlock()

	if ok && c.clock.Now().Sub(entry.fetchedAt) < c.ttl {
		return Snapshot{Criteria: criteria, Result: entry.result, FetchedAt: entry.fetchedAt}, nil
	}

	v, err, _ := c.group.Do(cacheKey(criteria), func() (any, error) {
		return c.searcher.SearchFlights(ctx, criteria)
	})
	if err != nil {
		return c.fallback(criteria, err)
	}

	snap := Snapshot{Criteria: criteria, Result: v.(*domain.SearchResult), FetchedAt: c.clock.Now()}

	c.mu.Lock()
	c.entries[criteria] = cacheEntry{result: snap.Result, fetchedAt: snap.FetchedAt}
	c.last = &snap
	c.mu.Unlock()

	return snap, nil
}

// Invalidate drops every cached entry but keeps the last result for fallback.
func (c *SearchCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[domain.SearchCriteria]cacheEntry)
	c.mu.Unlock()
}

// fallback prefers the stale entry for the same criteria, then the last result seen.
func (c *SearchCache) fallback(criteria domain.SearchCriteria, err error) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[criteria]; ok {
		return Snapshot{Criteria: criteria, Result: entry.result, FetchedAt: entry.fetchedAt, Stale: true, Err: err}, nil
	}
	if c.last != nil {
		snap := *c.last
		snap.Stale = true
		snap.Err = err
		return snap, nil
	}
	return Snapshot{Criteria: criteria}, err
}

func cacheKey(criteria domain.SearchCriteria) string {
	return fmt.Sprintf("%g|%g|%g|%d", criteria.Lat, criteria.Lon, criteria.RadiusKm, criteria.Limit)
}
