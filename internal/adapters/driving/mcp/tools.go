package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

// SearchFirmsInput is the input schema for the search_firms tool.
type SearchFirmsInput struct {
	Query    string `json:"query" jsonschema:"the law firm name or search phrase"`
	Location string `json:"location,omitempty" jsonschema:"optional location to narrow the search"`
	Radius   int    `json:"radius,omitempty" jsonschema:"optional search radius in meters"`
}

// SearchFirmsOutput is the output schema for the search_firms tool.
type SearchFirmsOutput struct {
	Results []FirmResultOutput `json:"results"`
	Count   int                `json:"count"`
}

// FirmResultOutput represents a single directory candidate.
type FirmResultOutput struct {
	PlaceID string `json:"place_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Website string `json:"website,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// GradeDocumentInput is the input schema for the grade_document tool.
type GradeDocumentInput struct {
	Path string `json:"path" jsonschema:"filesystem path of the document to grade"`
}

// GradeDocumentOutput is the output schema for the grade_document tool.
type GradeDocumentOutput struct {
	ID            string   `json:"id"`
	Score         int      `json:"score"`
	Structure     int      `json:"structure"`
	Content       int      `json:"content"`
	LegalAccuracy int      `json:"legal_accuracy"`
	Clarity       int      `json:"clarity"`
	Feedback      string   `json:"feedback,omitempty"`
	Suggestions   []string `json:"suggestions,omitempty"`
}

// CheckRankingInput is the input schema for the check_ai_ranking tool.
type CheckRankingInput struct {
	BusinessName string `json:"business_name" jsonschema:"the business to check visibility for"`
	Keywords     string `json:"keywords,omitempty" jsonschema:"optional comma-separated keywords"`
	Location     string `json:"location,omitempty" jsonschema:"the business location"`
}

// CheckRankingOutput is the output schema for the check_ai_ranking tool.
type CheckRankingOutput struct {
	VisibleOn       int    `json:"visible_on"`
	TotalPlatforms  int    `json:"total_platforms"`
	VisibilityScore int    `json:"visibility_score"`
	Grade           string `json:"grade,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_firms",
		Description: "Search the places directory for law firms",
	}, s.handleSearchFirms)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "grade_document",
		Description: "Grade a legal document and return scores and suggestions",
	}, s.handleGradeDocument)

	if s.ports.Ranking != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "check_ai_ranking",
			Description: "Check how visible a business is across AI assistant platforms",
		}, s.handleCheckRanking)
	}
}

// handleSearchFirms handles the search_firms tool invocation.
func (s *Server) handleSearchFirms(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchFirmsInput,
) (*mcp.CallToolResult, SearchFirmsOutput, error) {
	query := domain.SearchQuery{
		Query:        input.Query,
		Location:     input.Location,
		RadiusMeters: input.Radius,
	}

	results, err := s.ports.Search.Search(ctx, query)
	if err != nil {
		return nil, SearchFirmsOutput{}, err
	}

	output := SearchFirmsOutput{
		Results: make([]FirmResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = FirmResultOutput{
			PlaceID: results[i].PlaceID,
			Name:    results[i].Name,
			Address: results[i].Address,
			Website: results[i].Website,
			Phone:   results[i].PhoneNumber,
		}
	}

	return nil, output, nil
}

// handleGradeDocument handles the grade_document tool invocation.
func (s *Server) handleGradeDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GradeDocumentInput,
) (*mcp.CallToolResult, GradeDocumentOutput, error) {
	analysis, err := s.ports.Grading.Grade(ctx, input.Path)
	if err != nil {
		return nil, GradeDocumentOutput{}, err
	}

	output := GradeDocumentOutput{
		ID:            analysis.ID,
		Score:         analysis.Score,
		Structure:     analysis.Analysis.Structure,
		Content:       analysis.Analysis.Content,
		LegalAccuracy: analysis.Analysis.LegalAccuracy,
		Clarity:       analysis.Analysis.Clarity,
		Feedback:      analysis.Feedback,
		Suggestions:   analysis.Suggestions,
	}

	return nil, output, nil
}

// handleCheckRanking handles the check_ai_ranking tool invocation.
func (s *Server) handleCheckRanking(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckRankingInput,
) (*mcp.CallToolResult, CheckRankingOutput, error) {
	req := domain.RankingRequest{
		BusinessName: input.BusinessName,
		Keywords:     input.Keywords,
		Location:     input.Location,
	}

	report, err := s.ports.Ranking.Check(ctx, req)
	if err != nil {
		return nil, CheckRankingOutput{}, err
	}

	var output CheckRankingOutput
	if report.Summary != nil {
		output = CheckRankingOutput{
			VisibleOn:       report.Summary.VisibleOn,
			TotalPlatforms:  report.Summary.TotalPlatforms,
			VisibilityScore: report.Summary.VisibilityScore,
			Grade:           report.Summary.Grade,
		}
	}

	return nil, output, nil
}
