package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestRankingReport_Validate(t *testing.T) {
	avg := 2.5
	report := RankingReport{
		Success:      true,
		BusinessName: "MVP Law Firm",
		Platforms: map[string]PlatformResult{
			"chatgpt":    {Platform: "ChatGPT", IsVisible: true, Rank: intPtr(2)},
			"gemini":     {Platform: "Gemini", IsVisible: true, Rank: intPtr(3)},
			"perplexity": {Platform: "Perplexity", IsVisible: false},
		},
		Summary: &RankingSummary{
			TotalPlatforms:  5,
			VisibleOn:       3,
			NotVisibleOn:    2,
			VisibilityScore: 60,
			AveragePosition: &avg,
			Grade:           "C",
		},
	}

	assert.NoError(t, report.Validate())
}

func TestRankingReport_Validate_ScoreOutOfRange(t *testing.T) {
	report := RankingReport{
		Summary: &RankingSummary{VisibilityScore: 120},
	}

	assert.ErrorIs(t, report.Validate(), ErrScoreOutOfRange)
}

func TestRankingReport_Validate_InvalidRank(t *testing.T) {
	report := RankingReport{
		Platforms: map[string]PlatformResult{
			"chatgpt": {Platform: "ChatGPT", IsVisible: true, Rank: intPtr(0)},
		},
	}

	assert.ErrorIs(t, report.Validate(), ErrInvalidRank)
}

func TestRankingReport_Validate_NoSummary(t *testing.T) {
	// Partial responses without a summary are still well-formed.
	report := RankingReport{BusinessName: "Acme Law"}

	assert.NoError(t, report.Validate())
}
