package driving

import (
	"context"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

// Suggester produces ranked video-to-project link suggestions.
type Suggester interface {
	// SuggestLinks scores the cross-product of the given videos and
	// projects, excludes existing links unless asked otherwise, filters
	// by the minimum score, and returns suggestions sorted by score
	// descending.
	SuggestLinks(
		ctx context.Context,
		videos []domain.VideoEntity,
		projects []domain.ProjectEntity,
		existing []domain.ExistingLink,
		filters domain.SuggestionFilters,
	) ([]domain.Suggestion, error)
}
