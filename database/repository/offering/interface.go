package offeringRepo

import (
	"context"
	"errors"

	"travelbook/models"
)

// ErrNotFound is returned when no offering matches the lookup.
var ErrNotFound = errors.New("offering not found")

// OfferingRepository defines read access to the bookable-offering catalogue.
type OfferingRepository interface {
	Search(ctx context.Context, query models.SearchQuery) ([]models.Offering, error)
	GetByID(ctx context.Context, offeringID string) (*models.Offering, error)
}
