package search

import (
	"context"

	"travelbook/database/repository/offering"
	"travelbook/models"
)

// SearchService is the listing provider consumed by the booking wizard.
// Failures surface to the caller; the wizard never retries automatically.
type SearchService interface {
	Search(ctx context.Context, query models.SearchQuery) ([]models.Offering, error)
}

// DefaultSearchService implements SearchService over the offering catalogue.
type DefaultSearchService struct {
	Repo offeringRepo.OfferingRepository
}
