package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/parallax-labs/meetlens/internal/core/domain"
	"github.com/parallax-labs/meetlens/internal/core/ports/driving"
)

// Ensure KeyMomentExtractor implements the interface.
var _ driving.MomentExtractor = (*KeyMomentExtractor)(nil)

const (
	// minSentenceLength filters out fragments and filler.
	minSentenceLength = 20

	// baseImportance is every candidate's starting score.
	baseImportance = 5

	// emitThreshold is the minimum importance worth emitting.
	emitThreshold = 6

	// maxMoments caps the returned highlight count.
	maxMoments = 8

	// assumedDurationSeconds is the fixed duration used to synthesise
	// timestamps from sentence position. It is an approximation, not
	// measured media time.
	assumedDurationSeconds = 3600
)

// KeyMomentExtractor performs sentence-level importance scoring and
// moment tagging for non-skipped transcripts.
type KeyMomentExtractor struct{}

// NewKeyMomentExtractor creates a new extractor.
func NewKeyMomentExtractor() *KeyMomentExtractor {
	return &KeyMomentExtractor{}
}

// Extract scores each candidate sentence against the five topic groups
// and returns the top eight moments by importance, descending. The sort
// is stable: ties preserve original sentence order. A single sentence
// may emit one moment per matching topic group.
func (e *KeyMomentExtractor) Extract(text string) []domain.KeyMoment {
	sentences := splitSentences(cleanTranscript(text))

	var candidates []string
	for _, s := range sentences {
		if len(s) > minSentenceLength {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	var moments []domain.KeyMoment
	for i, sentence := range candidates {
		importance := scoreSentence(sentence)
		if importance < emitThreshold {
			continue
		}
		timestamp := synthesiseTimestamp(i, len(candidates))
		for _, group := range momentRules {
			for _, pattern := range group.Patterns {
				if pattern.MatchString(sentence) {
					moments = append(moments, domain.KeyMoment{
						Timestamp:   timestamp,
						Description: sentence,
						Type:        group.Type,
						Importance:  importance,
					})
					break
				}
			}
		}
	}

	sort.SliceStable(moments, func(i, j int) bool {
		return moments[i].Importance > moments[j].Importance
	})

	if len(moments) > maxMoments {
		moments = moments[:maxMoments]
	}
	return moments
}

// scoreSentence computes importance: base 5, plus one per high-value
// keyword occurrence, plus one for a question, plus one for a causal
// connective, clamped to 10.
func scoreSentence(sentence string) int {
	lower := strings.ToLower(sentence)

	importance := baseImportance
	for _, keyword := range importantKeywords {
		importance += strings.Count(lower, keyword)
	}
	if strings.Contains(sentence, "?") {
		importance++
	}
	for _, connective := range causalConnectives {
		if strings.Contains(lower, connective) {
			importance++
			break
		}
	}

	if importance > 10 {
		importance = 10
	}
	return importance
}

// synthesiseTimestamp maps a sentence's position fraction onto the
// assumed duration as an "mm:ss" marker.
func synthesiseTimestamp(index, total int) string {
	seconds := index * assumedDurationSeconds / total
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// splitSentences splits text on common sentence terminators.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}
