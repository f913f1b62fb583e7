package driving

import (
	"context"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

// FirmSearchService locates law firms through the directory and turns
// a chosen candidate into a working firm configuration.
type FirmSearchService interface {
	// Search queries the directory. An empty result set means no
	// firms were found; the caller stays in the search state.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.PlaceResult, error)

	// SearchCity queries the directory for matching cities.
	SearchCity(ctx context.Context, city string) ([]domain.CityResult, error)

	// PlaceDetails fetches a single directory place by id.
	PlaceDetails(ctx context.Context, placeID string) (*domain.PlaceResult, error)

	// SelectFirm deterministically maps a candidate to a firm with
	// the default practice area and an empty keyword set.
	SelectFirm(candidate domain.PlaceResult) *domain.Firm
}
