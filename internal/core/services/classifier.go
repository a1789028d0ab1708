package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/parallax-labs/meetlens/internal/core/domain"
	"github.com/parallax-labs/meetlens/internal/core/ports/driving"
	"github.com/parallax-labs/meetlens/internal/logger"
)

// Ensure TranscriptClassifier implements the interface.
var _ driving.Classifier = (*TranscriptClassifier)(nil)

// minTranscriptLength is the shortest cleaned transcript worth scoring.
const minTranscriptLength = 50

// confidenceFloor is the stage-3 veto threshold: a winning category whose
// confidence falls below it is reclassified as skip.
const confidenceFloor = 0.3

// maxConfidence saturates the confidence scale.
const maxConfidence = 0.9

var (
	bracketedMeta = regexp.MustCompile(`\[[^\]]*\]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// TranscriptClassifier is the deterministic rule-based categoriser.
// Classification is a pure function of the input text and filename: no
// randomness, no external state. Construct one instance at application
// start and inject it wherever classification is needed.
type TranscriptClassifier struct {
	skip  []*regexp.Regexp
	rules []CategoryRule
}

// NewTranscriptClassifier creates a classifier backed by the default
// rule tables.
func NewTranscriptClassifier() *TranscriptClassifier {
	return &TranscriptClassifier{
		skip:  skipPatterns,
		rules: categoryRules,
	}
}

// Classify categorises transcript text.
//
// Three stages run in order. Stage 1 is the administrative skip gate,
// checked before any topical scoring and authoritative. Stage 2 scores
// every category against its pattern table and picks the arg-max, ties
// breaking toward the fixed enumeration order. Stage 3 vetoes winners
// whose confidence lands below the floor. The filename, when given,
// participates in the skip gate only.
func (c *TranscriptClassifier) Classify(text, filename string) domain.ClassificationResult {
	cleaned := cleanTranscript(text)

	if len(cleaned) < minTranscriptLength {
		return domain.ClassificationResult{
			Category:   domain.CategorySkip,
			Confidence: 0.5,
			Reason:     "transcript too short to classify",
		}
	}

	// Stage 1: skip gate.
	gateInput := cleaned
	if filename != "" {
		gateInput = filename + " " + cleaned
	}
	for _, pattern := range c.skip {
		if pattern.MatchString(gateInput) {
			return domain.ClassificationResult{
				Category:   domain.CategorySkip,
				Confidence: 0.8,
				Reason:     "administrative/non-technical content",
			}
		}
	}

	// Stage 2: category scoring.
	best := domain.CategorySkip
	bestScore := 0
	for _, rule := range c.rules {
		score := 0
		for _, pattern := range rule.Patterns {
			score += len(pattern.FindAllStringIndex(cleaned, -1))
		}
		if score > bestScore {
			best = rule.Category
			bestScore = score
		}
	}

	if bestScore == 0 {
		return domain.ClassificationResult{
			Category:   domain.CategorySkip,
			Confidence: 0.5,
			Reason:     "no relevant indicators",
		}
	}

	confidence := float64(bestScore) / 10
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	// Stage 3: confidence floor veto. A nonzero score existed, but the
	// signal is too weak to surface as a category.
	if confidence < confidenceFloor {
		logger.Debug("Classification veto: %s scored %d, confidence %.2f below floor", best, bestScore, confidence)
		return domain.ClassificationResult{
			Category:   domain.CategorySkip,
			Confidence: confidence,
			Reason:     "low confidence",
		}
	}

	return domain.ClassificationResult{
		Category:   best,
		Confidence: confidence,
		Reason:     fmt.Sprintf("matched %d %s indicators", bestScore, best),
	}
}

// cleanTranscript strips bracketed metadata and collapses whitespace.
func cleanTranscript(text string) string {
	cleaned := bracketedMeta.ReplaceAllString(text, " ")
	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
