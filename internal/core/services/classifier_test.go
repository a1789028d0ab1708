package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

func TestTranscriptClassifier_ArchitectureReview(t *testing.T) {
	c := NewTranscriptClassifier()

	text := "Today we walked through the proposed database architecture. " +
		"Splitting the monolith into microservices should improve scalability " +
		"of the whole architecture under load."

	result := c.Classify(text, "")

	assert.Equal(t, domain.CategoryArchitectureReview, result.Category)
	assert.GreaterOrEqual(t, result.Confidence, 0.3)
	assert.Contains(t, result.Reason, "architecture-review")
	assert.True(t, result.Category.PortfolioRelevant())
}

func TestTranscriptClassifier_SkipGateBeatsTechnicalContent(t *testing.T) {
	c := NewTranscriptClassifier()

	// Technical keyword density does not matter once the skip gate fires.
	text := "Quick standup before the deep dive: we then spent an hour on " +
		"the microservices architecture and the scalability roadmap."

	result := c.Classify(text, "")

	assert.Equal(t, domain.CategorySkip, result.Category)
	assert.InDelta(t, 0.8, result.Confidence, 0.001)
	assert.Equal(t, "administrative/non-technical content", result.Reason)
	assert.False(t, result.Category.PortfolioRelevant())
}

func TestTranscriptClassifier_FilenameFeedsSkipGate(t *testing.T) {
	c := NewTranscriptClassifier()

	text := "We compared two approaches for the event-driven architecture " +
		"and reviewed the microservices deployment in detail."

	// Without a filename hint this is technical content.
	assert.NotEqual(t, domain.CategorySkip, c.Classify(text, "").Category)

	// The filename participates in the skip gate only.
	result := c.Classify(text, "standup-2024-03-01-transcript.txt")
	assert.Equal(t, domain.CategorySkip, result.Category)
	assert.InDelta(t, 0.8, result.Confidence, 0.001)
}

func TestTranscriptClassifier_TooShort(t *testing.T) {
	c := NewTranscriptClassifier()

	result := c.Classify("architecture", "")

	assert.Equal(t, domain.CategorySkip, result.Category)
	assert.InDelta(t, 0.5, result.Confidence, 0.001)
	assert.Equal(t, "transcript too short to classify", result.Reason)
}

func TestTranscriptClassifier_BracketedMetadataDoesNotCount(t *testing.T) {
	c := NewTranscriptClassifier()

	// Bracketed segments are stripped before scoring and length checks.
	result := c.Classify("[architecture architecture architecture architecture] hi", "")

	assert.Equal(t, domain.CategorySkip, result.Category)
	assert.Equal(t, "transcript too short to classify", result.Reason)
}

func TestTranscriptClassifier_NoIndicators(t *testing.T) {
	c := NewTranscriptClassifier()

	text := "Everyone shared their favourite recipes and we talked about music for most of the call."

	result := c.Classify(text, "")

	assert.Equal(t, domain.CategorySkip, result.Category)
	assert.InDelta(t, 0.5, result.Confidence, 0.001)
	assert.Equal(t, "no relevant indicators", result.Reason)
}

func TestTranscriptClassifier_ConfidenceFloorVeto(t *testing.T) {
	c := NewTranscriptClassifier()

	// A single weak indicator scores 0.1, below the 0.3 floor.
	text := "Someone mentioned debugging once and then the call moved on to unrelated chatter entirely."

	result := c.Classify(text, "")

	assert.Equal(t, domain.CategorySkip, result.Category)
	assert.Less(t, result.Confidence, 0.3)
	assert.Equal(t, "low confidence", result.Reason)
}

func TestTranscriptClassifier_ConfidenceCapped(t *testing.T) {
	c := NewTranscriptClassifier()

	text := strings.Repeat("architecture ", 15) + "discussed at length."

	result := c.Classify(text, "")

	assert.Equal(t, domain.CategoryArchitectureReview, result.Category)
	assert.InDelta(t, 0.9, result.Confidence, 0.001)
}

func TestTranscriptClassifier_CategorySamples(t *testing.T) {
	c := NewTranscriptClassifier()

	tests := []struct {
		name string
		text string
		want domain.Category
	}{
		{
			name: "technical discussion",
			text: "The implementation kept leaking goroutines, so we spent the session " +
				"debugging the worker pool and improving its performance with a refactor.",
			want: domain.CategoryTechnicalDiscussion,
		},
		{
			name: "mentoring session",
			text: "Let me show you how I approach this: mentoring works best when we " +
				"walk you through real best practices and talk about career guidance.",
			want: domain.CategoryMentoringSession,
		},
		{
			name: "leadership moment",
			text: "The roadmap discussion with stakeholders centred on strategy, the " +
				"product vision, and how we prioritise the trade-offs for next quarter.",
			want: domain.CategoryLeadershipMoment,
		},
		{
			name: "code review",
			text: "The pull request looks solid; the code review flagged missing unit tests " +
				"and we agreed to merge once test coverage improves.",
			want: domain.CategoryCodeReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.text, "")
			assert.Equal(t, tt.want, result.Category)
			assert.True(t, result.Category.PortfolioRelevant())
		})
	}
}

func TestTranscriptClassifier_Deterministic(t *testing.T) {
	c := NewTranscriptClassifier()

	text := "We reviewed the microservices architecture and its scalability limits " +
		"before agreeing on the infrastructure changes."

	first := c.Classify(text, "review.txt")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Classify(text, "review.txt"))
	}
}
