package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

var (
	rankKeywords string
	rankLocation string
	rankIndustry string
	rankURL      string
	rankCity     string
	rankJSON     bool
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Check AI assistant visibility",
	Long: `Checks whether a firm surfaces when AI assistants are asked for
recommendations, and where it ranks.`,
}

var rankCheckCmd = &cobra.Command{
	Use:   "check [business]",
	Short: "Run a basic visibility check",
	Args:  cobra.ExactArgs(1),
	RunE:  runRankCheck,
}

var rankComprehensiveCmd = &cobra.Command{
	Use:   "comprehensive [business]",
	Short: "Run the full multi-platform check",
	Args:  cobra.ExactArgs(1),
	RunE:  runRankComprehensive,
}

var rankTestCmd = &cobra.Command{
	Use:   "test [business]",
	Short: "Run the check against the backend's test route",
	Args:  cobra.ExactArgs(1),
	RunE:  runRankTest,
}

func init() {
	rankCmd.PersistentFlags().StringVarP(&rankKeywords, "keywords", "k", "", "comma-separated keywords")
	rankCmd.PersistentFlags().StringVarP(&rankLocation, "location", "l", "", "business location")
	rankCmd.PersistentFlags().BoolVar(&rankJSON, "json", false, "output the report as JSON")
	rankComprehensiveCmd.Flags().StringVar(&rankIndustry, "industry", "", "business industry")
	rankComprehensiveCmd.Flags().StringVar(&rankURL, "url", "", "business website")
	rankComprehensiveCmd.Flags().StringVar(&rankCity, "city", "", "business city")
	rankTestCmd.Flags().StringVar(&rankIndustry, "industry", "", "business industry")
	rankTestCmd.Flags().StringVar(&rankURL, "url", "", "business website")
	rankTestCmd.Flags().StringVar(&rankCity, "city", "", "business city")
	rankCmd.AddCommand(rankCheckCmd)
	rankCmd.AddCommand(rankComprehensiveCmd)
	rankCmd.AddCommand(rankTestCmd)
	rootCmd.AddCommand(rankCmd)
}

func runRankCheck(cmd *cobra.Command, args []string) error {
	if rankingService == nil {
		return errors.New("ranking service not configured")
	}

	req := domain.RankingRequest{
		BusinessName: args[0],
		Keywords:     rankKeywords,
		Location:     rankLocation,
	}

	report, err := rankingService.Check(context.Background(), req)
	if err != nil {
		return fmt.Errorf("visibility check failed: %w", err)
	}

	return outputReport(cmd, report)
}

func runRankComprehensive(cmd *cobra.Command, args []string) error {
	return runComprehensiveVariant(cmd, args[0], false)
}

func runRankTest(cmd *cobra.Command, args []string) error {
	return runComprehensiveVariant(cmd, args[0], true)
}

func runComprehensiveVariant(cmd *cobra.Command, business string, test bool) error {
	if rankingService == nil {
		return errors.New("ranking service not configured")
	}

	req := domain.ComprehensiveCheckRequest{
		Business: business,
		Keywords: rankKeywords,
		Location: rankLocation,
		Industry: rankIndustry,
		URL:      rankURL,
		City:     rankCity,
	}

	var (
		report *domain.RankingReport
		err    error
	)
	if test {
		report, err = rankingService.Test(context.Background(), req)
	} else {
		report, err = rankingService.Comprehensive(context.Background(), req)
	}
	if err != nil {
		return fmt.Errorf("visibility check failed: %w", err)
	}

	return outputReport(cmd, report)
}

func outputReport(cmd *cobra.Command, report *domain.RankingReport) error {
	if rankJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if report.BusinessName != "" {
		cmd.Printf("Business: %s\n", report.BusinessName)
	}
	if report.Query != "" {
		cmd.Printf("Query:    %s\n", report.Query)
	}

	if len(report.Platforms) > 0 {
		cmd.Println()
		names := make([]string, 0, len(report.Platforms))
		for name := range report.Platforms {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			p := report.Platforms[name]
			switch {
			case p.Error != "":
				cmd.Printf("  %-12s error: %s\n", name, p.Error)
			case p.IsVisible && p.Rank != nil:
				cmd.Printf("  %-12s visible (#%d)\n", name, *p.Rank)
			case p.IsVisible:
				cmd.Printf("  %-12s visible\n", name)
			default:
				cmd.Printf("  %-12s not visible\n", name)
			}
		}
	}

	if report.Summary != nil {
		s := report.Summary
		cmd.Println()
		cmd.Printf("Visible on %d of %d platforms\n", s.VisibleOn, s.TotalPlatforms)
		cmd.Printf("Visibility score: %d/100 (%s)\n", s.VisibilityScore, s.Grade)
		if s.AveragePosition != nil {
			cmd.Printf("Average position: %.1f\n", *s.AveragePosition)
		}
	}

	return nil
}
