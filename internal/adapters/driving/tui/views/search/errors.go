package search

import "errors"

// ErrNoSearchService is returned when the view has no search service.
var ErrNoSearchService = errors.New("search: firm search service is required")
