package driven

import (
	"context"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

// PlacesAPI wraps the backend's directory search endpoints.
type PlacesAPI interface {
	// SearchLawFirms queries the directory for candidate firms.
	// An empty result set is not an error.
	SearchLawFirms(ctx context.Context, query domain.SearchQuery) ([]domain.PlaceResult, error)

	// SearchCity queries the directory for cities matching the name.
	SearchCity(ctx context.Context, city string) ([]domain.CityResult, error)

	// PlaceDetails fetches a single place by id.
	PlaceDetails(ctx context.Context, placeID string) (*domain.PlaceResult, error)
}
