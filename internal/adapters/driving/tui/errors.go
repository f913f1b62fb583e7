package tui

import "errors"

// ErrMissingSearchService is returned when the firm search service is not provided.
var ErrMissingSearchService = errors.New("tui: firm search service is required")

// ErrMissingAnalysisService is returned when the firm analysis service is not provided.
var ErrMissingAnalysisService = errors.New("tui: firm analysis service is required")

// ErrMissingGradingService is returned when the document grading service is not provided.
var ErrMissingGradingService = errors.New("tui: document grading service is required")

// ErrMissingReportService is returned when the report service is not provided.
var ErrMissingReportService = errors.New("tui: report service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
