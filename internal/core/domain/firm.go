package domain

import "strings"

// DefaultPracticeArea is assigned to a firm when a directory candidate
// is selected, before the user edits it.
const DefaultPracticeArea = "General Practice"

// SuggestedKeywords is the fixed list of keywords offered during firm
// configuration. Keywords outside this list are treated as custom.
var SuggestedKeywords = []string{
	"Dairy Farming",
	"Milk Production",
	"Holstein Cows",
	"Sustainable Dairy Practices",
	"Regenerative Farming",
	"Animal Welfare",
	"Non-GMO Milk",
	"Dairy Processing",
	"Manure Management",
	"Dairy Education Center",
}

// SearchQuery describes a directory search for law firms.
type SearchQuery struct {
	// Query is the free-text firm name or search phrase.
	Query string

	// Location optionally narrows the search geographically.
	Location string

	// RadiusMeters optionally limits the search radius. Zero means
	// the backend default.
	RadiusMeters int
}

// Coordinates is a geographic point.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// PlaceResult is a candidate firm returned by the directory search.
// It is immutable once received.
type PlaceResult struct {
	// PlaceID is the directory identifier for the place.
	PlaceID string

	// Name is the business name.
	Name string

	// Address is the formatted street address.
	Address string

	// Location is the geographic position.
	Location Coordinates

	// GoogleMapsURL links to the place on Google Maps.
	GoogleMapsURL string

	// Website is the business website, if known.
	Website string

	// PhoneNumber is the business phone number, if known.
	PhoneNumber string

	// Types are the directory categories for the place.
	Types []string

	// OSMType and OSMID identify the OpenStreetMap object backing
	// the result, when the directory is OSM-based.
	OSMType string
	OSMID   int64
}

// CityResult is a candidate city returned by the city search.
type CityResult struct {
	PlaceID  string
	Name     string
	Location Coordinates
	Type     string
	Class    string
}

// Firm is the working record of the law firm under configuration.
// It is created from a selected PlaceResult and mutated in place by
// practice-area edits and keyword toggles until a report is run.
type Firm struct {
	// ID is the originating directory place id, if any.
	ID string

	// Name is the firm name.
	Name string

	// Website is the firm website.
	Website string

	// PracticeArea is the free-text primary practice area.
	PracticeArea string

	// Location is the research location.
	Location string

	// Keywords is the duplicate-free keyword list. Insertion order is
	// preserved for display.
	Keywords []string
}

// NewFirmFromPlace maps a directory candidate to a working firm with
// the default practice area and an empty keyword set.
func NewFirmFromPlace(place PlaceResult) *Firm {
	return &Firm{
		ID:           place.PlaceID,
		Name:         place.Name,
		Website:      place.Website,
		PracticeArea: DefaultPracticeArea,
		Location:     place.Address,
		Keywords:     []string{},
	}
}

// HasKeyword reports whether the keyword is in the firm's set.
func (f *Firm) HasKeyword(keyword string) bool {
	for _, k := range f.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}

// ToggleKeyword removes the keyword if present, otherwise appends it.
// Applying it twice leaves the set unchanged.
func (f *Firm) ToggleKeyword(keyword string) {
	for i, k := range f.Keywords {
		if k == keyword {
			f.Keywords = append(f.Keywords[:i], f.Keywords[i+1:]...)
			return
		}
	}
	f.Keywords = append(f.Keywords, keyword)
}

// AddKeyword trims the keyword and appends it unless it is empty or
// already present.
func (f *Firm) AddKeyword(keyword string) bool {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" || f.HasKeyword(keyword) {
		return false
	}
	f.Keywords = append(f.Keywords, keyword)
	return true
}

// SetPracticeArea replaces the primary practice area.
func (f *Firm) SetPracticeArea(area string) {
	f.PracticeArea = area
}

// CustomKeywords returns the firm's keywords that are not in the
// suggested list, preserving insertion order.
func (f *Firm) CustomKeywords() []string {
	suggested := make(map[string]struct{}, len(SuggestedKeywords))
	for _, k := range SuggestedKeywords {
		suggested[k] = struct{}{}
	}

	var custom []string
	for _, k := range f.Keywords {
		if _, ok := suggested[k]; !ok {
			custom = append(custom, k)
		}
	}
	return custom
}
