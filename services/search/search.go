package search

import (
	"context"
	"fmt"

	"travelbook/models"
)

// Search returns catalogue offerings for a validated query. The empty result
// set is not an error; the wizard renders it as "no offerings found".
func (s *DefaultSearchService) Search(ctx context.Context, query models.SearchQuery) ([]models.Offering, error) {
	offerings, err := s.Repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search provider failed: %w", err)
	}
	return offerings, nil
}
