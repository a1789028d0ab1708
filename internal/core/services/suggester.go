package services

import (
	"context"
	"sort"

	"github.com/parallax-labs/meetlens/internal/core/domain"
	"github.com/parallax-labs/meetlens/internal/core/ports/driving"
	"github.com/parallax-labs/meetlens/internal/logger"
)

// Ensure SuggestionService implements the interface.
var _ driving.Suggester = (*SuggestionService)(nil)

const (
	// defaultMinScore excludes weak suggestions unless the caller says
	// otherwise.
	defaultMinScore = 4.0

	// fullScanLimit truncates cross-product runs.
	fullScanLimit = 50

	// singleEntityLimit truncates runs targeting one video or project.
	singleEntityLimit = 20
)

// SuggestionService runs the matcher over video/project cross-products
// and returns ranked link suggestions.
type SuggestionService struct {
	matcher *ProjectVideoMatcher
}

// NewSuggestionService creates a suggestion service around the matcher.
func NewSuggestionService(matcher *ProjectVideoMatcher) *SuggestionService {
	return &SuggestionService{matcher: matcher}
}

// SuggestLinks scores every candidate pair, excludes already-linked
// pairs unless filters ask otherwise, drops suggestions below the
// minimum score, sorts descending by score, and truncates the result.
func (s *SuggestionService) SuggestLinks(
	ctx context.Context,
	videos []domain.VideoEntity,
	projects []domain.ProjectEntity,
	existing []domain.ExistingLink,
	filters domain.SuggestionFilters,
) ([]domain.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	linked := make(map[string]bool, len(existing))
	for _, link := range existing {
		linked[link.VideoID+"\x00"+link.ProjectID] = true
	}

	minScore := filters.MinScore
	if minScore <= 0 {
		minScore = defaultMinScore
	}

	candidateVideos := videos
	if filters.VideoID != "" {
		candidateVideos = filterVideos(videos, filters.VideoID)
	}
	candidateProjects := projects
	if filters.ProjectID != "" {
		candidateProjects = filterProjects(projects, filters.ProjectID)
	}

	suggestions := make([]domain.Suggestion, 0, len(candidateVideos)*len(candidateProjects))
	for _, video := range candidateVideos {
		for _, project := range candidateProjects {
			if !filters.IncludeLinked && linked[video.ID+"\x00"+project.ID] {
				continue
			}
			suggestion := s.matcher.Score(video, project)
			if suggestion.Score < minScore {
				continue
			}
			suggestions = append(suggestions, suggestion)
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	limit := filters.Limit
	if limit <= 0 {
		limit = fullScanLimit
		if filters.VideoID != "" || filters.ProjectID != "" {
			limit = singleEntityLimit
		}
	}
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	logger.Debug("Suggested %d links from %d videos x %d projects (min score %.1f)",
		len(suggestions), len(candidateVideos), len(candidateProjects), minScore)
	return suggestions, nil
}

// filterVideos narrows to a single video by id.
func filterVideos(videos []domain.VideoEntity, id string) []domain.VideoEntity {
	for i := range videos {
		if videos[i].ID == id {
			return videos[i : i+1]
		}
	}
	return nil
}

// filterProjects narrows to a single project by id.
func filterProjects(projects []domain.ProjectEntity, id string) []domain.ProjectEntity {
	for i := range projects {
		if projects[i].ID == id {
			return projects[i : i+1]
		}
	}
	return nil
}
