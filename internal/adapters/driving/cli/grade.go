package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

var gradeJSON bool

var gradeCmd = &cobra.Command{
	Use:   "grade [file]",
	Short: "Grade a legal document",
	Long: `Uploads a legal document for comprehensive grading and prints the
overall score, per-dimension breakdown, and improvement suggestions.`,
	Args: cobra.ExactArgs(1),
	RunE: runGrade,
}

func init() {
	gradeCmd.Flags().BoolVar(&gradeJSON, "json", false, "output the grading as JSON")
	rootCmd.AddCommand(gradeCmd)
}

func runGrade(cmd *cobra.Command, args []string) error {
	if gradingService == nil {
		return errors.New("grading service not configured")
	}

	analysis, err := gradingService.Grade(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("grading failed: %w", err)
	}

	return outputGrading(cmd, analysis)
}

func outputGrading(cmd *cobra.Command, analysis *domain.DocumentAnalysis) error {
	if gradeJSON {
		data, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal grading: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Score: %d/100\n", analysis.Score)
	cmd.Printf("  Structure:      %d\n", analysis.Analysis.Structure)
	cmd.Printf("  Content:        %d\n", analysis.Analysis.Content)
	cmd.Printf("  Legal Accuracy: %d\n", analysis.Analysis.LegalAccuracy)
	cmd.Printf("  Clarity:        %d\n", analysis.Analysis.Clarity)

	if analysis.Feedback != "" {
		cmd.Println()
		cmd.Println(analysis.Feedback)
	}
	if len(analysis.Suggestions) > 0 {
		cmd.Println()
		cmd.Println("Suggestions:")
		for _, s := range analysis.Suggestions {
			cmd.Printf("  - %s\n", s)
		}
	}

	return nil
}
