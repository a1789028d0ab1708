package services

import (
	"sync"
	"time"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

// listingCache is the single mutable slot holding the derived,
// display-ready meeting listing. Entries expire after a fixed TTL, but
// any write that could change the filtered set (a stored analysis, a
// changed override, a blob change event) must invalidate the slot
// immediately rather than waiting for expiry.
//
// Access follows read-check-recompute-write under a mutex; recomputation
// itself is coalesced by the owning service's singleflight group.
type listingCache struct {
	mu         sync.Mutex
	value      *domain.MeetingListing
	insertedAt time.Time
	ttl        time.Duration
}

// newListingCache creates a cache slot with the given TTL.
func newListingCache(ttl time.Duration) *listingCache {
	return &listingCache{ttl: ttl}
}

// Get returns the cached listing if present and fresh.
func (c *listingCache) Get() (*domain.MeetingListing, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.value == nil {
		return nil, false
	}
	if time.Since(c.insertedAt) > c.ttl {
		c.value = nil
		return nil, false
	}
	return c.value, true
}

// Set stores a freshly computed listing.
func (c *listingCache) Set(value *domain.MeetingListing) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
	c.insertedAt = time.Now()
}

// Invalidate drops the cached listing immediately.
func (c *listingCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = nil
}
