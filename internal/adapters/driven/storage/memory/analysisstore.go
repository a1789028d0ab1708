package memory

import (
	"context"
	"sync"

	"github.com/parallax-labs/meetlens/internal/core/domain"
	"github.com/parallax-labs/meetlens/internal/core/ports/driven"
)

// Ensure AnalysisStore implements the interface.
var _ driven.AnalysisStore = (*AnalysisStore)(nil)

// AnalysisStore is an in-memory implementation of driven.AnalysisStore.
type AnalysisStore struct {
	mu       sync.RWMutex
	insights map[string]domain.MeetingInsights
}

// NewAnalysisStore creates a new in-memory analysis store.
func NewAnalysisStore() *AnalysisStore {
	return &AnalysisStore{insights: make(map[string]domain.MeetingInsights)}
}

// Get retrieves the cached insights for a meeting.
func (s *AnalysisStore) Get(_ context.Context, meetingID string) (*domain.MeetingInsights, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	insights, ok := s.insights[meetingID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &insights, nil
}

// Put stores or replaces the insights for a meeting.
func (s *AnalysisStore) Put(_ context.Context, meetingID string, insights domain.MeetingInsights) error {
	if meetingID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insights[meetingID] = insights
	return nil
}

// Delete removes the cached insights for a meeting.
func (s *AnalysisStore) Delete(_ context.Context, meetingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.insights, meetingID)
	return nil
}
