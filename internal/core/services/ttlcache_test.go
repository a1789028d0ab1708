package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

func TestListingCache_GetAfterSet(t *testing.T) {
	cache := newListingCache(time.Minute)

	_, ok := cache.Get()
	assert.False(t, ok)

	listing := &domain.MeetingListing{}
	cache.Set(listing)

	got, ok := cache.Get()
	assert.True(t, ok)
	assert.Same(t, listing, got)
}

func TestListingCache_Expiry(t *testing.T) {
	cache := newListingCache(10 * time.Millisecond)
	cache.Set(&domain.MeetingListing{})

	time.Sleep(30 * time.Millisecond)

	_, ok := cache.Get()
	assert.False(t, ok)
}

func TestListingCache_Invalidate(t *testing.T) {
	cache := newListingCache(time.Minute)
	cache.Set(&domain.MeetingListing{})

	cache.Invalidate()

	_, ok := cache.Get()
	assert.False(t, ok)
}
