// Package redis provides a Redis-backed analysis store for deployments
// that share the insights cache across processes. Entries are JSON
// payloads under an "analysis:" key prefix with an optional TTL.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/parallax-labs/meetlens/internal/core/domain"
	"github.com/parallax-labs/meetlens/internal/core/ports/driven"
)

const keyPrefix = "analysis:"

// Ensure AnalysisStore implements the interface.
var _ driven.AnalysisStore = (*AnalysisStore)(nil)

// AnalysisStore is a Redis implementation of driven.AnalysisStore.
type AnalysisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalysisStore creates an analysis store on the given Redis server.
// A zero ttl keeps entries until explicitly deleted.
func NewAnalysisStore(addr string, db int, ttl time.Duration) *AnalysisStore {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	return &AnalysisStore{client: client, ttl: ttl}
}

// Close releases the underlying client connections.
func (s *AnalysisStore) Close() error {
	return s.client.Close()
}

// Get retrieves the cached insights for a meeting.
func (s *AnalysisStore) Get(ctx context.Context, meetingID string) (*domain.MeetingInsights, error) {
	data, err := s.client.Get(ctx, keyPrefix+meetingID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetching analysis %s: %w: %w", meetingID, domain.ErrStorageUnavailable, err)
	}

	var insights domain.MeetingInsights
	if err := json.Unmarshal([]byte(data), &insights); err != nil {
		return nil, fmt.Errorf("analysis for %s: %w: %w", meetingID, domain.ErrMalformedPayload, err)
	}
	return &insights, nil
}

// Put stores or replaces the insights for a meeting.
func (s *AnalysisStore) Put(ctx context.Context, meetingID string, insights domain.MeetingInsights) error {
	if meetingID == "" {
		return domain.ErrInvalidInput
	}

	data, err := json.Marshal(insights)
	if err != nil {
		return fmt.Errorf("marshalling insights: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+meetingID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("saving analysis %s: %w: %w", meetingID, domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Delete removes the cached insights for a meeting.
func (s *AnalysisStore) Delete(ctx context.Context, meetingID string) error {
	if err := s.client.Del(ctx, keyPrefix+meetingID).Err(); err != nil {
		return fmt.Errorf("deleting analysis %s: %w: %w", meetingID, domain.ErrStorageUnavailable, err)
	}
	return nil
}
