package domain

// LinkType describes the nature of a suggested video/project link.
type LinkType string

const (
	// LinkArchitectureReview ties a design session to a project.
	LinkArchitectureReview LinkType = "architecture-review"

	// LinkTechnicalDiscussion ties an implementation session to a project.
	LinkTechnicalDiscussion LinkType = "technical-discussion"

	// LinkMentoringSession ties a mentoring session to a project.
	LinkMentoringSession LinkType = "mentoring-session"

	// LinkPlanning is the fallback link type.
	LinkPlanning LinkType = "planning"
)

// ConfidenceBucket is a coarse tier summarising suggestion reliability.
type ConfidenceBucket string

const (
	// ConfidenceHigh requires a score of at least 8 with at least three
	// recorded reasons.
	ConfidenceHigh ConfidenceBucket = "high"

	// ConfidenceMedium requires a score of at least 6 with at least two
	// recorded reasons.
	ConfidenceMedium ConfidenceBucket = "medium"

	// ConfidenceLow is everything else.
	ConfidenceLow ConfidenceBucket = "low"
)

// Suggestion is a scored, ranked video-to-project link candidate.
type Suggestion struct {
	// ID uniquely identifies this suggestion instance.
	ID string `json:"id"`

	// VideoID is the candidate video.
	VideoID string `json:"videoId"`

	// ProjectID is the candidate project.
	ProjectID string `json:"projectId"`

	// Score is the composite relevance score, always clamped to [1, 10].
	Score float64 `json:"score"`

	// LinkType is the suggested association kind.
	LinkType LinkType `json:"linkType"`

	// Confidence is the coarse reliability tier.
	Confidence ConfidenceBucket `json:"confidence"`

	// Reasons lists the factors that contributed to the score.
	Reasons []string `json:"reasons"`
}

// SuggestionFilters narrows a batch suggestion run.
type SuggestionFilters struct {
	// VideoID restricts the run to a single video.
	VideoID string

	// ProjectID restricts the run to a single project.
	ProjectID string

	// MinScore excludes suggestions scoring below it. Zero means the
	// default threshold applies.
	MinScore float64

	// IncludeLinked keeps pairs that already have an existing link.
	IncludeLinked bool

	// Limit truncates the ranked result. Zero means the default: 50 for
	// full scans, 20 when a single entity is targeted.
	Limit int
}
