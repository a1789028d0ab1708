package domain

import "time"

// OverrideSetting is a persisted manual relevance decision for a meeting.
// It is created or updated only by explicit administrative action and is
// kept indefinitely until replaced. When present it is authoritative over
// the classifier's relevance verdict; category, title and participants
// continue to come from the classifier regardless.
type OverrideSetting struct {
	// MeetingID is the derived meeting id the override applies to.
	MeetingID string `json:"meetingId"`

	// IsPortfolioRelevant is the manual relevance decision.
	IsPortfolioRelevant bool `json:"isPortfolioRelevant"`

	// Description optionally records why the override was set.
	Description string `json:"description,omitempty"`

	// UpdatedAt is when the override was last written.
	UpdatedAt time.Time `json:"updatedAt"`
}
