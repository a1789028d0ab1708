package domain

// MomentType tags the topic group that produced a key moment.
type MomentType string

const (
	// MomentArchitecture marks design and systems discussion.
	MomentArchitecture MomentType = "architecture"

	// MomentLeadership marks direction-setting and ownership discussion.
	MomentLeadership MomentType = "leadership"

	// MomentTechnical marks implementation detail discussion.
	MomentTechnical MomentType = "technical"

	// MomentMentoring marks teaching and guidance.
	MomentMentoring MomentType = "mentoring"

	// MomentDecision marks an explicit decision point.
	MomentDecision MomentType = "decision"
)

// KeyMoment is a scored, timestamped highlight extracted from a transcript.
type KeyMoment struct {
	// Timestamp is a synthesised "mm:ss" position marker. It is derived
	// from the sentence's position fraction over an assumed maximum
	// duration, not from real media time.
	Timestamp string `json:"timestamp"`

	// Description is the sentence that produced the moment.
	Description string `json:"description"`

	// Type is the topic group that matched.
	Type MomentType `json:"type"`

	// Importance is the moment's score in [1, 10]. Only moments scoring
	// at least 6 are emitted by the extractor.
	Importance int `json:"importance"`
}
