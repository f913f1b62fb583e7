// Package domain defines the core business entities for the GrowLaw CLI.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Firm: The law firm under configuration for an AI visibility report
//   - PlaceResult: A candidate firm returned by the directory search
//   - AnalysisJob: A server-tracked asynchronous website analysis
//   - DocumentAnalysis: A graded legal document
//   - RankingReport: Per-platform AI visibility results with a summary
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
