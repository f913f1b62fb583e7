package domain

import "time"

// AnalysisTypeComprehensive is the analysis tag sent with every
// document upload.
const AnalysisTypeComprehensive = "comprehensive"

// DocumentScores is the per-dimension breakdown of a graded document.
// All scores are integers in [0, 100].
type DocumentScores struct {
	Structure     int `json:"structure"`
	Content       int `json:"content"`
	LegalAccuracy int `json:"legalAccuracy"`
	Clarity       int `json:"clarity"`
}

// DocumentAnalysis is the graded result for a single uploaded document.
// It is immutable after receipt.
type DocumentAnalysis struct {
	// ID identifies the analysis on the server.
	ID string `json:"id"`

	// Score is the overall score in [0, 100].
	Score int `json:"score"`

	// Feedback is the narrative assessment.
	Feedback string `json:"feedback"`

	// Suggestions is the ordered list of improvement suggestions.
	Suggestions []string `json:"suggestions"`

	// Analysis is the per-dimension breakdown.
	Analysis DocumentScores `json:"analysis"`

	// Timestamp is when the analysis was produced.
	Timestamp time.Time `json:"timestamp"`
}

// Validate checks the score invariants.
func (d *DocumentAnalysis) Validate() error {
	scores := []int{
		d.Score,
		d.Analysis.Structure,
		d.Analysis.Content,
		d.Analysis.LegalAccuracy,
		d.Analysis.Clarity,
	}
	for _, s := range scores {
		if s < 0 || s > 100 {
			return ErrScoreOutOfRange
		}
	}
	return nil
}
