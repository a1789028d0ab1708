package driven

import (
	"context"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

// OverrideStore persists manual relevance overrides keyed by meeting id.
// A missing override returns domain.ErrNotFound; that is the normal
// outcome for meetings nobody has touched.
type OverrideStore interface {
	// Get retrieves the override for a meeting.
	Get(ctx context.Context, meetingID string) (*domain.OverrideSetting, error)

	// Put stores or replaces the override for a meeting.
	Put(ctx context.Context, setting domain.OverrideSetting) error

	// List returns all persisted overrides.
	List(ctx context.Context) ([]domain.OverrideSetting, error)
}
