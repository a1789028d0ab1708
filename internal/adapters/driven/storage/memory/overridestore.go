// Package memory provides in-memory implementations of the persistence
// ports for tests and ephemeral setups.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/parallax-labs/meetlens/internal/core/domain"
	"github.com/parallax-labs/meetlens/internal/core/ports/driven"
)

// Ensure OverrideStore implements the interface.
var _ driven.OverrideStore = (*OverrideStore)(nil)

// OverrideStore is an in-memory implementation of driven.OverrideStore.
type OverrideStore struct {
	mu        sync.RWMutex
	overrides map[string]domain.OverrideSetting
}

// NewOverrideStore creates a new in-memory override store.
func NewOverrideStore() *OverrideStore {
	return &OverrideStore{overrides: make(map[string]domain.OverrideSetting)}
}

// Get retrieves the override for a meeting.
func (s *OverrideStore) Get(_ context.Context, meetingID string) (*domain.OverrideSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	setting, ok := s.overrides[meetingID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &setting, nil
}

// Put stores or replaces the override for a meeting.
func (s *OverrideStore) Put(_ context.Context, setting domain.OverrideSetting) error {
	if setting.MeetingID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[setting.MeetingID] = setting
	return nil
}

// List returns all persisted overrides.
func (s *OverrideStore) List(_ context.Context) ([]domain.OverrideSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	settings := make([]domain.OverrideSetting, 0, len(s.overrides))
	for _, setting := range s.overrides {
		settings = append(settings, setting)
	}
	sort.Slice(settings, func(i, j int) bool {
		return settings[i].MeetingID < settings[j].MeetingID
	})
	return settings, nil
}
