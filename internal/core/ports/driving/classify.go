package driving

import "github.com/parallax-labs/meetlens/internal/core/domain"

// Classifier categorises transcript text deterministically.
type Classifier interface {
	// Classify returns the category, confidence and rationale for the
	// given transcript text. The same text always yields the same
	// result; filename is an optional hint for the skip gate.
	Classify(text, filename string) domain.ClassificationResult
}

// MomentExtractor extracts scored highlights from transcript text.
// Invoked only for transcripts whose classification is non-skip.
type MomentExtractor interface {
	// Extract returns up to eight key moments sorted by importance
	// descending, stable on ties.
	Extract(text string) []domain.KeyMoment
}
