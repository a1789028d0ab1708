package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

func suggestionFixtures() ([]domain.VideoEntity, []domain.ProjectEntity) {
	videos := []domain.VideoEntity{
		architectureVideo(),
		{ID: "vid-2", Title: "General chat", Description: "Nothing specific"},
	}
	projects := []domain.ProjectEntity{
		platformProject(),
		{ID: "proj-2", Name: "Docs", Description: "Documentation", Category: "docs"},
	}
	return videos, projects
}

func TestSuggestionService_RankedDescending(t *testing.T) {
	s := NewSuggestionService(NewProjectVideoMatcher())
	videos, projects := suggestionFixtures()

	suggestions, err := s.SuggestLinks(context.Background(), videos, projects, nil,
		domain.SuggestionFilters{MinScore: 1})

	require.NoError(t, err)
	require.Len(t, suggestions, 4)
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].Score, suggestions[i].Score)
	}
	assert.Equal(t, "vid-1", suggestions[0].VideoID)
	assert.Equal(t, "proj-1", suggestions[0].ProjectID)
}

func TestSuggestionService_DefaultMinScoreFiltersWeakPairs(t *testing.T) {
	s := NewSuggestionService(NewProjectVideoMatcher())
	videos, projects := suggestionFixtures()

	suggestions, err := s.SuggestLinks(context.Background(), videos, projects, nil,
		domain.SuggestionFilters{})

	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "vid-1", suggestions[0].VideoID)
	assert.GreaterOrEqual(t, suggestions[0].Score, defaultMinScore)
}

func TestSuggestionService_ExcludesExistingLinks(t *testing.T) {
	s := NewSuggestionService(NewProjectVideoMatcher())
	videos, projects := suggestionFixtures()
	existing := []domain.ExistingLink{{VideoID: "vid-1", ProjectID: "proj-1"}}

	suggestions, err := s.SuggestLinks(context.Background(), videos, projects, existing,
		domain.SuggestionFilters{})

	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggestionService_IncludeLinkedKeepsPairs(t *testing.T) {
	s := NewSuggestionService(NewProjectVideoMatcher())
	videos, projects := suggestionFixtures()
	existing := []domain.ExistingLink{{VideoID: "vid-1", ProjectID: "proj-1"}}

	suggestions, err := s.SuggestLinks(context.Background(), videos, projects, existing,
		domain.SuggestionFilters{IncludeLinked: true})

	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "vid-1", suggestions[0].VideoID)
}

func TestSuggestionService_VideoFilter(t *testing.T) {
	s := NewSuggestionService(NewProjectVideoMatcher())
	videos, projects := suggestionFixtures()

	suggestions, err := s.SuggestLinks(context.Background(), videos, projects, nil,
		domain.SuggestionFilters{VideoID: "vid-2", MinScore: 1})

	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	for _, suggestion := range suggestions {
		assert.Equal(t, "vid-2", suggestion.VideoID)
	}
}

func TestSuggestionService_UnknownVideoFilterYieldsNothing(t *testing.T) {
	s := NewSuggestionService(NewProjectVideoMatcher())
	videos, projects := suggestionFixtures()

	suggestions, err := s.SuggestLinks(context.Background(), videos, projects, nil,
		domain.SuggestionFilters{VideoID: "missing", MinScore: 1})

	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggestionService_LimitTruncates(t *testing.T) {
	s := NewSuggestionService(NewProjectVideoMatcher())
	videos, projects := suggestionFixtures()

	suggestions, err := s.SuggestLinks(context.Background(), videos, projects, nil,
		domain.SuggestionFilters{MinScore: 1, Limit: 2})

	require.NoError(t, err)
	assert.Len(t, suggestions, 2)
}

func TestSuggestionService_CancelledContext(t *testing.T) {
	s := NewSuggestionService(NewProjectVideoMatcher())
	videos, projects := suggestionFixtures()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SuggestLinks(ctx, videos, projects, nil, domain.SuggestionFilters{})
	assert.ErrorIs(t, err, context.Canceled)
}
