package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driven"
)

// placesAPI implements driven.PlacesAPI.
type placesAPI struct {
	client *Client
}

var _ driven.PlacesAPI = (*placesAPI)(nil)

// coordinatesPayload is the wire form of a geographic point.
type coordinatesPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// placePayload is the wire form of a directory search result.
type placePayload struct {
	PlaceID       string             `json:"placeId"`
	Name          string             `json:"name"`
	Address       string             `json:"address"`
	Location      coordinatesPayload `json:"location"`
	GoogleMapsURL string             `json:"googleMapsUrl"`
	Website       string             `json:"website"`
	PhoneNumber   string             `json:"phoneNumber"`
	Types         []string           `json:"types"`
	OSMType       string             `json:"osmType,omitempty"`
	OSMID         int64              `json:"osmId,omitempty"`
}

// cityPayload is the wire form of a city search result.
type cityPayload struct {
	PlaceID  string             `json:"placeId"`
	Name     string             `json:"name"`
	Location coordinatesPayload `json:"location"`
	Type     string             `json:"type"`
	Class    string             `json:"class"`
}

// SearchLawFirms queries the directory for law firm candidates.
func (p *placesAPI) SearchLawFirms(ctx context.Context, query domain.SearchQuery) ([]domain.PlaceResult, error) {
	params := url.Values{}
	params.Set("query", query.Query)
	if query.Location != "" {
		params.Set("location", query.Location)
	}
	if query.RadiusMeters > 0 {
		params.Set("radius", strconv.Itoa(query.RadiusMeters))
	}

	var payload struct {
		Results      []placePayload `json:"results"`
		TotalResults int            `json:"totalResults"`
	}
	if err := p.client.getJSON(ctx, "/api/places-test/search", params, &payload); err != nil {
		return nil, fmt.Errorf("searching law firms: %w", err)
	}

	results := make([]domain.PlaceResult, 0, len(payload.Results))
	for _, pl := range payload.Results {
		results = append(results, pl.toDomain())
	}
	return results, nil
}

// SearchCity queries the directory for cities.
func (p *placesAPI) SearchCity(ctx context.Context, city string) ([]domain.CityResult, error) {
	params := url.Values{}
	params.Set("city", city)

	var payload struct {
		Results      []cityPayload `json:"results"`
		TotalResults int           `json:"totalResults"`
	}
	if err := p.client.getJSON(ctx, "/api/places/city", params, &payload); err != nil {
		return nil, fmt.Errorf("searching cities: %w", err)
	}

	results := make([]domain.CityResult, 0, len(payload.Results))
	for _, c := range payload.Results {
		results = append(results, domain.CityResult{
			PlaceID: c.PlaceID,
			Name:    c.Name,
			Location: domain.Coordinates{
				Latitude:  c.Location.Latitude,
				Longitude: c.Location.Longitude,
			},
			Type:  c.Type,
			Class: c.Class,
		})
	}
	return results, nil
}

// PlaceDetails fetches a single place by its directory id.
func (p *placesAPI) PlaceDetails(ctx context.Context, placeID string) (*domain.PlaceResult, error) {
	var payload placePayload
	if err := p.client.getJSON(ctx, "/api/places/"+url.PathEscape(placeID), nil, &payload); err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetching place details: %w", err)
	}

	result := payload.toDomain()
	return &result, nil
}

func (p placePayload) toDomain() domain.PlaceResult {
	return domain.PlaceResult{
		PlaceID: p.PlaceID,
		Name:    p.Name,
		Address: p.Address,
		Location: domain.Coordinates{
			Latitude:  p.Location.Latitude,
			Longitude: p.Location.Longitude,
		},
		GoogleMapsURL: p.GoogleMapsURL,
		Website:       p.Website,
		PhoneNumber:   p.PhoneNumber,
		Types:         p.Types,
		OSMType:       p.OSMType,
		OSMID:         p.OSMID,
	}
}
