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
	searchLocation string
	searchRadius   int
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the directory for law firms",
	Long: `Searches the places directory for law firms matching the query.
Use --location and --radius to narrow the search geographically.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "narrow the search to a location")
	searchCmd.Flags().IntVarP(&searchRadius, "radius", "r", 0, "search radius in meters")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	ctx := context.Background()
	query := domain.SearchQuery{
		Query:        args[0],
		Location:     searchLocation,
		RadiusMeters: searchRadius,
	}

	results, err := searchService.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.PlaceResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.PlaceResult) error {
	if len(results) == 0 {
		cmd.Println("No law firms found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %s\n", i+1, results[i].Name)
		if results[i].Address != "" {
			cmd.Printf("      %s\n", results[i].Address)
		}
		if results[i].Website != "" {
			cmd.Printf("      %s\n", results[i].Website)
		}
		if results[i].PhoneNumber != "" {
			cmd.Printf("      %s\n", results[i].PhoneNumber)
		}
		cmd.Println()
	}

	return nil
}
