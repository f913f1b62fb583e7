package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for growlaw.

The TUI walks you through finding your firm in the directory,
configuring research keywords, and running an AI visibility report.
It also grades documents and analyzes websites interactively.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select / Submit
  Esc      - Back / Cancel
  q        - Quit (from menu)`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(
		searchService,
		analysisService,
		gradingService,
		reportService,
	)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("starting TUI: %w", err)
	}

	return app.WithContext(cmd.Context()).Run()
}
