// Package cli provides the command-line interface for growlaw.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/growlaw/growlaw-cli/internal/core/ports/driving"
	"github.com/growlaw/growlaw-cli/internal/logger"
)

// version is the CLI version, overridable at build time with -ldflags.
var version = "0.1.0"

// verbose enables debug logging.
var verbose bool

// Service instances injected at startup.
var (
	searchService   driving.FirmSearchService
	analysisService driving.FirmAnalysisService
	gradingService  driving.DocumentGradingService
	rankingService  driving.RankingService
	reportService   driving.ReportService
)

var rootCmd = &cobra.Command{
	Use:   "growlaw",
	Short: "AI visibility tooling for law firms",
	Long: `growlaw grades legal documents, analyzes law firm websites, and
checks how visible a firm is across AI assistant platforms.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Services aggregates the driving ports the CLI depends on.
type Services struct {
	Search   driving.FirmSearchService
	Analysis driving.FirmAnalysisService
	Grading  driving.DocumentGradingService
	Ranking  driving.RankingService
	Report   driving.ReportService
}

// SetServices injects the core services used by the commands.
func SetServices(s Services) {
	searchService = s.Search
	analysisService = s.Analysis
	gradingService = s.Grading
	rankingService = s.Ranking
	reportService = s.Report
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
