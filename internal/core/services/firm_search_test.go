package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

func TestFirmSearchService_Search(t *testing.T) {
	mock := &mockPlacesAPI{
		results: []domain.PlaceResult{
			{PlaceID: "p1", Name: "Acme Law", Address: "1 Main St"},
			{PlaceID: "p2", Name: "Best Legal", Address: "2 Oak Ave"},
		},
	}
	svc := NewFirmSearchService(mock)

	results, err := svc.Search(context.Background(), domain.SearchQuery{Query: "law firm"})

	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "Acme Law", results[0].Name)
}

func TestFirmSearchService_Search_EmptyResultsIsNotAnError(t *testing.T) {
	svc := NewFirmSearchService(&mockPlacesAPI{results: []domain.PlaceResult{}})

	results, err := svc.Search(context.Background(), domain.SearchQuery{Query: "nowhere llp"})

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFirmSearchService_Search_BlankQuery(t *testing.T) {
	svc := NewFirmSearchService(&mockPlacesAPI{})

	_, err := svc.Search(context.Background(), domain.SearchQuery{Query: "   "})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFirmSearchService_Search_BackendError(t *testing.T) {
	backendErr := errors.New("directory timeout")
	svc := NewFirmSearchService(&mockPlacesAPI{searchErr: backendErr})

	_, err := svc.Search(context.Background(), domain.SearchQuery{Query: "acme"})

	assert.ErrorIs(t, err, backendErr)
}

func TestFirmSearchService_SelectFirm(t *testing.T) {
	svc := NewFirmSearchService(&mockPlacesAPI{})
	candidate := domain.PlaceResult{
		PlaceID: "p1",
		Name:    "Acme Law",
		Address: "123 Main St, Springfield",
		Website: "https://acmelaw.example",
	}

	firm := svc.SelectFirm(candidate)

	require.NotNil(t, firm)
	assert.Equal(t, "General Practice", firm.PracticeArea)
	assert.Empty(t, firm.Keywords)
	assert.Equal(t, "Acme Law", firm.Name)

	// Toggling a keyword twice round-trips to empty.
	firm.ToggleKeyword("Dairy Farming")
	firm.ToggleKeyword("Dairy Farming")
	assert.Empty(t, firm.Keywords)
}

func TestFirmSearchService_SearchCity(t *testing.T) {
	mock := &mockPlacesAPI{
		cities: []domain.CityResult{{PlaceID: "c1", Name: "Chicago", Type: "city"}},
	}
	svc := NewFirmSearchService(mock)

	cities, err := svc.SearchCity(context.Background(), "Chicago")

	require.NoError(t, err)
	assert.Len(t, cities, 1)

	_, err = svc.SearchCity(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFirmSearchService_PlaceDetails(t *testing.T) {
	mock := &mockPlacesAPI{place: &domain.PlaceResult{PlaceID: "p1", Name: "Acme Law"}}
	svc := NewFirmSearchService(mock)

	place, err := svc.PlaceDetails(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "Acme Law", place.Name)

	_, err = svc.PlaceDetails(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
