package driven

import (
	"context"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

// AnalysisStore persists computed meeting insights keyed by the derived
// meeting id. A cache miss returns domain.ErrNotFound. A corrupt
// persisted payload returns domain.ErrMalformedPayload; the service
// treats both, and any other failure, as a miss (fail-open).
type AnalysisStore interface {
	// Get retrieves the cached insights for a meeting.
	Get(ctx context.Context, meetingID string) (*domain.MeetingInsights, error)

	// Put stores or replaces the insights for a meeting.
	Put(ctx context.Context, meetingID string, insights domain.MeetingInsights) error

	// Delete removes the cached insights for a meeting. Deleting a
	// missing entry is not an error.
	Delete(ctx context.Context, meetingID string) error
}
