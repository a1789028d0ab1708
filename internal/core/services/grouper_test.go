package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

func TestArtifactGrouper_DetectType(t *testing.T) {
	g := NewArtifactGrouper()

	tests := []struct {
		filename string
		want     domain.ArtifactType
	}{
		{"kickoff_2024-03-01_video.mp4", domain.ArtifactVideo},
		{"KICKOFF.MP4", domain.ArtifactVideo},
		{"kickoff_2024-03-01_recap.md", domain.ArtifactSummary},
		{"weekly-summary.txt", domain.ArtifactSummary},
		{"kickoff_2024-03-01_transcript.txt", domain.ArtifactTranscript},
		{"notes.txt", domain.ArtifactTranscript},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, g.DetectType(tt.filename), "filename %q", tt.filename)
	}
}

func TestArtifactGrouper_GroupKey(t *testing.T) {
	g := NewArtifactGrouper()

	tests := []struct {
		filename string
		want     string
	}{
		{"kickoff_2024-03-01_transcript.txt", "kickoff_2024-03-01"},
		{"kickoff_2024-03-01_video.mp4", "kickoff_2024-03-01"},
		{"kickoff_2024-03-01_recap.md", "kickoff_2024-03-01"},
		// Role tokens strip repeatedly.
		{"design-review_video_transcript.txt", "design-review"},
		// Unknown extensions stay and get sanitised.
		{"meeting.wav", "meeting_wav"},
		// Characters outside the key alphabet become underscores.
		{"sprint review (final).txt", "sprint_review__final_"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, g.GroupKey(tt.filename), "filename %q", tt.filename)
	}
}

func TestArtifactGrouper_Title(t *testing.T) {
	g := NewArtifactGrouper()

	assert.Equal(t, "Kickoff 2024 03 01", g.Title("kickoff_2024-03-01_transcript.txt"))
	assert.Equal(t, "Platform Design Review", g.Title("platform-design-review.mp4"))
	assert.Equal(t, "Untitled Meeting", g.Title("_transcript.txt"))
	assert.Equal(t, "Équipe Sync", g.Title("équipe-sync.txt"))
}

func TestArtifactGrouper_Date(t *testing.T) {
	g := NewArtifactGrouper()

	assert.Equal(t, "2024-03-01", g.Date("kickoff_2024-03-01_transcript.txt"))
	assert.Equal(t, "2024-03-01", g.Date("kickoff_2024_03_01.txt"))

	// No date in the filename defaults to today.
	assert.Equal(t, time.Now().Format("2006-01-02"), g.Date("kickoff.txt"))
}

func TestArtifactGrouper_Group_MergesSlots(t *testing.T) {
	g := NewArtifactGrouper()

	artifacts := []domain.RawArtifact{
		deriveFor(g, "meetings/kickoff_2024-03-01_transcript.txt"),
		deriveFor(g, "meetings/kickoff_2024-03-01_video.mp4"),
		deriveFor(g, "meetings/kickoff_2024-03-01_recap.md"),
	}

	records := g.Group(artifacts)
	require.Len(t, records, 1)

	record, ok := records["kickoff_2024-03-01"]
	require.True(t, ok)
	assert.Equal(t, "Kickoff 2024 03 01", record.Title)
	assert.Equal(t, "2024-03-01", record.DateRecorded)
	assert.Equal(t, domain.DisplayUncategorized, record.Category)
	require.NotNil(t, record.Video)
	require.NotNil(t, record.Transcript)
	require.NotNil(t, record.Summary)
	assert.Equal(t, "meetings/kickoff_2024-03-01_video.mp4", record.Video.Key)
}

func TestArtifactGrouper_Group_LastWins(t *testing.T) {
	g := NewArtifactGrouper()

	artifacts := []domain.RawArtifact{
		deriveFor(g, "old/kickoff_2024-03-01_transcript.txt"),
		deriveFor(g, "new/kickoff_2024-03-01_transcript.txt"),
	}

	records := g.Group(artifacts)
	require.Len(t, records, 1)

	record := records["kickoff_2024-03-01"]
	require.NotNil(t, record.Transcript)
	assert.Equal(t, "new/kickoff_2024-03-01_transcript.txt", record.Transcript.Key)
}

func TestArtifactGrouper_Group_SeparateKeys(t *testing.T) {
	g := NewArtifactGrouper()

	artifacts := []domain.RawArtifact{
		deriveFor(g, "kickoff_2024-03-01_transcript.txt"),
		deriveFor(g, "retro_2024-03-08_transcript.txt"),
	}

	records := g.Group(artifacts)
	assert.Len(t, records, 2)
}

func deriveFor(g *ArtifactGrouper, key string) domain.RawArtifact {
	return g.Derive(domain.ObjectInfo{Key: key, Size: 1, LastModified: time.Now()})
}
