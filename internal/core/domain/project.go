package domain

import "time"

// ProjectEntity is a portfolio project entry that videos can link to.
type ProjectEntity struct {
	// ID is the project identifier.
	ID string `json:"id"`

	// Name is the project display name.
	Name string `json:"name"`

	// Description is the project summary text.
	Description string `json:"description"`

	// TechStack lists the technologies the project uses.
	TechStack []string `json:"techStack"`

	// Topics lists free-form topic labels.
	Topics []string `json:"topics"`

	// Category is the project's domain category (e.g. "architecture",
	// "systems", "ai", "leadership").
	Category string `json:"category"`

	// Language is the primary implementation language.
	Language string `json:"language"`

	// Stars is the repository star count.
	Stars int `json:"stars"`

	// LastUpdated is when the project last changed.
	LastUpdated time.Time `json:"lastUpdated"`
}

// VideoEntity is a materialised meeting video considered for linking.
type VideoEntity struct {
	// ID is the video identifier, typically the derived meeting id.
	ID string `json:"id"`

	// Type is the video's classified kind ("architecture", "technical",
	// "leadership", "mentoring").
	Type string `json:"type"`

	// Title is the video title.
	Title string `json:"title"`

	// Description is the video summary text.
	Description string `json:"description"`

	// KeyMoments are the extracted highlights for the video.
	KeyMoments []KeyMoment `json:"keyMoments,omitempty"`

	// Participants lists attendee names.
	Participants []string `json:"participants,omitempty"`
}

// ExistingLink marks an already-established video/project association so
// batch suggestion runs can exclude it.
type ExistingLink struct {
	// VideoID is the linked video.
	VideoID string `json:"videoId"`

	// ProjectID is the linked project.
	ProjectID string `json:"projectId"`
}
