package domain

import "time"

// MeetingRecord is the logical grouping of video/transcript/summary
// artifacts sharing a derived key. Identity is purely derived from
// filename key-stripping; it is not a persisted primary key, and records
// are re-derived on every listing call.
type MeetingRecord struct {
	// ID is the derived group key.
	ID string

	// Title is the human-readable title derived from the filename.
	Title string

	// DateRecorded is the meeting date in "YYYY-MM-DD" form.
	DateRecorded string

	// Participants lists attendee names when known.
	Participants []string

	// Video is the artifact occupying the video slot, if any.
	Video *RawArtifact

	// Transcript is the artifact occupying the transcript slot, if any.
	Transcript *RawArtifact

	// Summary is the artifact occupying the summary slot, if any.
	Summary *RawArtifact

	// VideoURL is a signed URL for the video artifact. Empty when signing
	// failed; a failed sign degrades the field, never the batch.
	VideoURL string

	// Category is the display category. Never "skip"; degraded or
	// unanalysed meetings carry DisplayUncategorized.
	Category string

	// IsPortfolioRelevant is the merged relevance verdict: the override
	// value when an override exists, else the classifier's verdict.
	IsPortfolioRelevant bool

	// Insights holds the cached analysis for this meeting, if any.
	Insights *MeetingInsights
}

// MeetingInsights is the persisted analysis payload for one meeting,
// computed on demand and cached out-of-band keyed by the derived id.
type MeetingInsights struct {
	// Category is the classifier's verdict.
	Category Category `json:"category"`

	// Confidence is the classifier's confidence in [0, 0.9].
	Confidence float64 `json:"confidence"`

	// Reason is the classifier's rationale.
	Reason string `json:"reason"`

	// KeyMoments are the extracted highlights, empty for skipped content.
	KeyMoments []KeyMoment `json:"keyMoments,omitempty"`

	// Participants are attendee names parsed from the transcript header,
	// when present.
	Participants []string `json:"participants,omitempty"`

	// PortfolioRelevant is the classifier's relevance verdict before any
	// override is applied.
	PortfolioRelevant bool `json:"portfolioRelevant"`

	// AnalyzedAt is when the analysis was computed.
	AnalyzedAt time.Time `json:"analyzedAt"`
}

// BatchDiagnostic records a single per-item failure inside a batch
// operation. Items that fail are excluded or degraded while the batch
// continues; diagnostics aggregate what went wrong for the caller.
type BatchDiagnostic struct {
	// Key identifies the affected meeting or artifact.
	Key string

	// Stage names the pipeline stage that failed (list, fetch, sign,
	// analysis, override).
	Stage string

	// Detail is the failure description.
	Detail string
}

// MeetingListing is the result of a listing call: the derived records
// plus aggregated per-item diagnostics.
type MeetingListing struct {
	// Meetings are the derived records, one per group key.
	Meetings []MeetingRecord

	// Diagnostics aggregates per-item failures. A non-empty slice does
	// not make the listing an error.
	Diagnostics []BatchDiagnostic
}
