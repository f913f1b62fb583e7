package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

var (
	analyzeName  string
	analyzeEmail string
	analyzeWait  bool
	analyzeJSON  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a law firm website",
	Long:  `Submit a firm website for analysis and track the job to completion.`,
}

var analyzeRunCmd = &cobra.Command{
	Use:   "run [url]",
	Short: "Submit a website analysis",
	Long: `Submits the firm website for analysis. The job runs asynchronously
on the backend; pass --wait to poll until it finishes.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var analyzeStatusCmd = &cobra.Command{
	Use:   "status [job-id]",
	Short: "Show the state of an analysis job",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyzeStatus,
}

func init() {
	analyzeRunCmd.Flags().StringVar(&analyzeName, "name", "", "firm name (required)")
	analyzeRunCmd.Flags().StringVar(&analyzeEmail, "email", "", "contact email (required)")
	analyzeRunCmd.Flags().BoolVarP(&analyzeWait, "wait", "w", false, "poll until the job finishes")
	analyzeRunCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the job as JSON")
	analyzeCmd.AddCommand(analyzeRunCmd)
	analyzeCmd.AddCommand(analyzeStatusCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	ctx := context.Background()
	req := domain.AnalysisRequest{
		FirmURL:  args[0],
		FirmName: analyzeName,
		Email:    analyzeEmail,
	}

	job, err := analysisService.Submit(ctx, req)
	if err != nil {
		return fmt.Errorf("analysis submission failed: %w", err)
	}

	if analyzeWait {
		cmd.Printf("Job %s submitted, waiting...\n", job.JobID)
		job, err = analysisService.Await(ctx, job.JobID)
		if err != nil {
			return fmt.Errorf("waiting for analysis: %w", err)
		}
	}

	return outputJob(cmd, job)
}

func runAnalyzeStatus(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	job, err := analysisService.Poll(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("fetching job: %w", err)
	}

	return outputJob(cmd, job)
}

func outputJob(cmd *cobra.Command, job *domain.AnalysisJob) error {
	if analyzeJSON {
		data, err := json.MarshalIndent(job, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal job: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Job:    %s\n", job.JobID)
	cmd.Printf("Status: %s\n", job.Status)
	if job.FirmName != "" {
		cmd.Printf("Firm:   %s (%s)\n", job.FirmName, job.FirmURL)
	}

	if job.Results == nil {
		return nil
	}

	r := job.Results
	cmd.Println()
	cmd.Printf("Score: %d/100\n", r.Score)
	cmd.Printf("  Website Quality:   %d\n", r.Analysis.WebsiteQuality)
	cmd.Printf("  Content Relevance: %d\n", r.Analysis.ContentRelevance)
	cmd.Printf("  User Experience:   %d\n", r.Analysis.UserExperience)
	cmd.Printf("  Legal Compliance:  %d\n", r.Analysis.LegalCompliance)
	if r.Feedback != "" {
		cmd.Println()
		cmd.Println(r.Feedback)
	}
	for _, s := range r.Suggestions {
		cmd.Printf("  - %s\n", s)
	}

	return nil
}
