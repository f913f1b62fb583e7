package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driven"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driving"
	"github.com/growlaw/growlaw-cli/internal/logger"
)

// Ensure FirmSearchService implements the interface.
var _ driving.FirmSearchService = (*FirmSearchService)(nil)

// FirmSearchService finds law firms through the directory backend.
type FirmSearchService struct {
	places driven.PlacesAPI
}

// NewFirmSearchService creates a new firm search service.
func NewFirmSearchService(places driven.PlacesAPI) *FirmSearchService {
	return &FirmSearchService{places: places}
}

// Search queries the directory for candidate firms.
func (s *FirmSearchService) Search(
	ctx context.Context, query domain.SearchQuery,
) ([]domain.PlaceResult, error) {
	logger.Section("Firm Search")
	logger.Debug("Query: %q location: %q", query.Query, query.Location)

	query.Query = strings.TrimSpace(query.Query)
	if query.Query == "" {
		return nil, fmt.Errorf("search: %w", domain.ErrInvalidInput)
	}

	results, err := s.places.SearchLawFirms(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search law firms: %w", err)
	}

	logger.Debug("Directory returned %d candidates", len(results))
	return results, nil
}

// SearchCity queries the directory for matching cities.
func (s *FirmSearchService) SearchCity(ctx context.Context, city string) ([]domain.CityResult, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, fmt.Errorf("city search: %w", domain.ErrInvalidInput)
	}

	results, err := s.places.SearchCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("search city: %w", err)
	}
	return results, nil
}

// PlaceDetails fetches a single directory place by id.
func (s *FirmSearchService) PlaceDetails(ctx context.Context, placeID string) (*domain.PlaceResult, error) {
	if placeID == "" {
		return nil, fmt.Errorf("place details: %w", domain.ErrInvalidInput)
	}

	place, err := s.places.PlaceDetails(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("place details: %w", err)
	}
	return place, nil
}

// SelectFirm maps a directory candidate to a working firm. The mapping
// is deterministic: default practice area, empty keyword set.
func (s *FirmSearchService) SelectFirm(candidate domain.PlaceResult) *domain.Firm {
	logger.Debug("Selected firm %q (%s)", candidate.Name, candidate.PlaceID)
	return domain.NewFirmFromPlace(candidate)
}
