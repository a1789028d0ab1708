package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

func TestKeyMomentExtractor_EmptyText(t *testing.T) {
	e := NewKeyMomentExtractor()

	assert.Nil(t, e.Extract(""))
	assert.Nil(t, e.Extract("short. tiny. hi."))
}

func TestKeyMomentExtractor_OneSentencePerMatchingGroup(t *testing.T) {
	e := NewKeyMomentExtractor()

	// Keywords: architecture, database, performance (+3); causal "because"
	// (+1). Importance 9; matches the architecture, decision and technical
	// topic groups.
	text := "We decided to refactor the architecture because the database performance was degrading."

	moments := e.Extract(text)

	require.Len(t, moments, 3)
	types := map[domain.MomentType]bool{}
	for _, m := range moments {
		assert.Equal(t, 9, m.Importance)
		assert.Equal(t, "00:00", m.Timestamp)
		types[m.Type] = true
	}
	assert.True(t, types[domain.MomentArchitecture])
	assert.True(t, types[domain.MomentDecision])
	assert.True(t, types[domain.MomentTechnical])
}

func TestKeyMomentExtractor_BelowThresholdNotEmitted(t *testing.T) {
	e := NewKeyMomentExtractor()

	// Matches the mentoring group but scores only the base 5.
	moments := e.Extract("I can explain the plan to everyone tomorrow.")

	assert.Empty(t, moments)
}

func TestKeyMomentExtractor_ImportanceClampedAtTen(t *testing.T) {
	e := NewKeyMomentExtractor()

	text := "The architecture decision covered scalability, performance, security, database design and deployment strategy."

	moments := e.Extract(text)

	require.NotEmpty(t, moments)
	for _, m := range moments {
		assert.Equal(t, 10, m.Importance)
	}
}

func TestKeyMomentExtractor_CapsAtEightMoments(t *testing.T) {
	e := NewKeyMomentExtractor()

	var b strings.Builder
	for i := 0; i < 12; i++ {
		b.WriteString("We made a decision about the architecture and database design today. ")
	}

	moments := e.Extract(b.String())

	assert.Len(t, moments, 8)
}

func TestKeyMomentExtractor_SortedByImportanceDescending(t *testing.T) {
	e := NewKeyMomentExtractor()

	text := "We should improve the deployment pipeline before release. " +
		"The architecture decision on database security and performance was the highlight because it unblocks everything."

	moments := e.Extract(text)

	require.NotEmpty(t, moments)
	for i := 1; i < len(moments); i++ {
		assert.GreaterOrEqual(t, moments[i-1].Importance, moments[i].Importance)
	}
	assert.Equal(t, 10, moments[0].Importance)
}

func TestKeyMomentExtractor_TimestampFromPosition(t *testing.T) {
	e := NewKeyMomentExtractor()

	// Four candidate sentences; only the second scores high enough to
	// emit. Its position maps onto the assumed one-hour duration.
	text := "The opening remarks covered the usual logistics and nothing else. " +
		"We agreed on the new architecture and its database design. " +
		"Then everyone talked about their weekend plans for a while. " +
		"The closing remarks covered the usual logistics once more."

	moments := e.Extract(text)

	require.NotEmpty(t, moments)
	for _, m := range moments {
		assert.Equal(t, "15:00", m.Timestamp)
	}
}
