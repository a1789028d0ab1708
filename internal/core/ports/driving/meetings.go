package driving

import (
	"context"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

// MeetingService exposes the artifact grouping and enrichment pipeline.
type MeetingService interface {
	// ListMeetings derives the current meeting records from blob storage,
	// merging cached analyses and manual overrides. Per-item failures
	// degrade individual fields and surface as diagnostics; a fatal
	// listing failure yields an empty listing rather than an error.
	ListMeetings(ctx context.Context) (*domain.MeetingListing, error)

	// Analyze classifies the meeting's transcript and extracts key
	// moments, persisting the result. Concurrent calls for the same
	// meeting are coalesced. Returns the cached insights when present.
	Analyze(ctx context.Context, meetingID string) (*domain.MeetingInsights, error)

	// SetOverride persists a manual relevance decision for a meeting and
	// invalidates the listing cache.
	SetOverride(ctx context.Context, setting domain.OverrideSetting) error

	// GetOverride retrieves the persisted override for a meeting.
	// Returns domain.ErrNotFound when no override exists.
	GetOverride(ctx context.Context, meetingID string) (*domain.OverrideSetting, error)
}
