package domain

import "time"

// PlatformResult is the visibility outcome on a single AI assistant
// platform (ChatGPT, Gemini, Perplexity, ...).
type PlatformResult struct {
	// Platform is the platform name.
	Platform string `json:"platform"`

	// IsVisible reports whether the firm surfaced on the platform.
	IsVisible bool `json:"isVisible"`

	// Rank is the position among the platform's recommendations.
	// Present only when visible; always >= 1 when set.
	Rank *int `json:"rank,omitempty"`

	// URL is the result location, when the platform provided one.
	URL string `json:"url,omitempty"`

	// Error is set when the check against this platform failed.
	Error string `json:"error,omitempty"`
}

// RankingSummary aggregates the per-platform results.
type RankingSummary struct {
	// TotalPlatforms is the number of platforms checked.
	TotalPlatforms int `json:"totalPlatforms"`

	// VisibleOn counts platforms where the firm surfaced.
	VisibleOn int `json:"visibleOn"`

	// NotVisibleOn counts platforms where it did not.
	NotVisibleOn int `json:"notVisibleOn"`

	// VisibilityScore is the aggregate percentage in [0, 100].
	VisibilityScore int `json:"visibilityScore"`

	// AveragePosition is the mean rank among visible platforms, or
	// nil when the firm was visible nowhere.
	AveragePosition *float64 `json:"averagePosition"`

	// Grade is the letter grade derived from the visibility score.
	Grade string `json:"grade"`
}

// RankingReport is the outcome of an AI visibility check.
// It is immutable after receipt.
type RankingReport struct {
	Success      bool                      `json:"success,omitempty"`
	BusinessName string                    `json:"businessName,omitempty"`
	Query        string                    `json:"query,omitempty"`
	Platforms    map[string]PlatformResult `json:"platforms,omitempty"`
	Summary      *RankingSummary           `json:"summary,omitempty"`
	Timestamp    time.Time                 `json:"timestamp,omitempty"`
}

// Validate checks the score and rank invariants.
func (r *RankingReport) Validate() error {
	if r.Summary != nil {
		if r.Summary.VisibilityScore < 0 || r.Summary.VisibilityScore > 100 {
			return ErrScoreOutOfRange
		}
	}
	for _, p := range r.Platforms {
		if p.Rank != nil && *p.Rank < 1 {
			return ErrInvalidRank
		}
	}
	return nil
}

// RankingRequest is a basic visibility check submission.
type RankingRequest struct {
	BusinessName string `json:"businessName"`
	Keywords     string `json:"keywords,omitempty"`
	Location     string `json:"location"`
}

// ComprehensiveCheckRequest is the full visibility check submission.
type ComprehensiveCheckRequest struct {
	Business string `json:"business"`
	Keywords string `json:"keywords,omitempty"`
	Location string `json:"location"`
	Industry string `json:"industry,omitempty"`
	URL      string `json:"url,omitempty"`
	City     string `json:"city,omitempty"`
}
