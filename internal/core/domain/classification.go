package domain

// Category is the classifier's verdict for a transcript.
type Category string

const (
	// CategoryArchitectureReview covers system and infrastructure design sessions.
	CategoryArchitectureReview Category = "architecture-review"

	// CategoryTechnicalDiscussion covers implementation-level engineering talk.
	CategoryTechnicalDiscussion Category = "technical-discussion"

	// CategoryMentoringSession covers teaching and guidance conversations.
	CategoryMentoringSession Category = "mentoring-session"

	// CategoryLeadershipMoment covers decision-making and direction-setting.
	CategoryLeadershipMoment Category = "leadership-moment"

	// CategoryCodeReview covers review of concrete changes.
	CategoryCodeReview Category = "code-review"

	// CategorySkip marks content with no portfolio value.
	// Skip is an internal verdict and is never surfaced as a displayable
	// category; records carrying it are shown as DisplayUncategorized.
	CategorySkip Category = "skip"
)

// DisplayUncategorized is the category shown for meetings whose
// classification is skip, degraded, or missing.
const DisplayUncategorized = "uncategorized"

// Categories lists the non-skip categories in fixed enumeration order.
// The order is load-bearing: classification ties break toward the
// earliest category.
var Categories = []Category{
	CategoryArchitectureReview,
	CategoryTechnicalDiscussion,
	CategoryMentoringSession,
	CategoryLeadershipMoment,
	CategoryCodeReview,
}

// Valid reports whether the category is a known value, including skip.
func (c Category) Valid() bool {
	if c == CategorySkip {
		return true
	}
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Display returns the category string suitable for presentation.
// Skip is mapped to DisplayUncategorized.
func (c Category) Display() string {
	if c == CategorySkip || c == "" {
		return DisplayUncategorized
	}
	return string(c)
}

// IsSkip reports whether the category is the skip verdict.
func (c Category) IsSkip() bool {
	return c == CategorySkip
}

// PortfolioRelevant is the classifier's relevance verdict: any non-skip
// category is considered portfolio relevant. An explicit override, when
// present, supersedes this verdict.
func (c Category) PortfolioRelevant() bool {
	return !c.IsSkip()
}

// ClassificationResult is the deterministic output of the transcript
// classifier: a category, a saturating confidence, and a rationale.
type ClassificationResult struct {
	// Category is the winning category, or skip.
	Category Category

	// Confidence is the classifier's confidence in [0, 0.9].
	Confidence float64

	// Reason is a short human-readable rationale.
	Reason string
}

// IsSkip reports whether the result landed on the skip path.
func (r ClassificationResult) IsSkip() bool {
	return r.Category.IsSkip()
}

// PortfolioRelevant reports the result's relevance verdict.
func (r ClassificationResult) PortfolioRelevant() bool {
	return r.Category.PortfolioRelevant()
}
