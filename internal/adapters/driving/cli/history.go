package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse document grading history",
	Long:  `List prior document gradings or show a single grading by id.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List prior gradings",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyGetCmd = &cobra.Command{
	Use:   "get [analysis-id]",
	Short: "Show a single grading",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryGet,
}

func init() {
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyGetCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if gradingService == nil {
		return errors.New("grading service not configured")
	}

	analyses, err := gradingService.History(context.Background())
	if err != nil {
		return fmt.Errorf("fetching history: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(analyses, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(analyses) == 0 {
		cmd.Println("No gradings yet.")
		return nil
	}

	cmd.Println("History:")
	cmd.Println()
	for i := range analyses {
		cmd.Printf("  %s  %3d/100  %s\n",
			analyses[i].Timestamp.Format("2006-01-02 15:04"),
			analyses[i].Score,
			analyses[i].ID,
		)
	}

	return nil
}

func runHistoryGet(cmd *cobra.Command, args []string) error {
	if gradingService == nil {
		return errors.New("grading service not configured")
	}

	analysis, err := gradingService.ByID(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("fetching grading: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal grading: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("ID:    %s\n", analysis.ID)
	cmd.Printf("Date:  %s\n", analysis.Timestamp.Format("2006-01-02 15:04"))
	cmd.Printf("Score: %d/100\n", analysis.Score)
	if analysis.Feedback != "" {
		cmd.Println()
		cmd.Println(analysis.Feedback)
	}

	return nil
}
