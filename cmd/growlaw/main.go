// Command growlaw is the entry point for the growlaw CLI, TUI, and MCP
// server. It wires the driven adapters (backend client, config store,
// grading history cache) into the core services and hands them to the
// driving adapters.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/growlaw/growlaw-cli/internal/adapters/driven/backend"
	configfile "github.com/growlaw/growlaw-cli/internal/adapters/driven/config/file"
	"github.com/growlaw/growlaw-cli/internal/adapters/driven/storage/sqlite"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/cli"
	"github.com/growlaw/growlaw-cli/internal/core/services"
	"github.com/growlaw/growlaw-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	var timeout time.Duration
	if secs := cfg.GetInt(configfile.KeyBackendTimeout); secs > 0 {
		timeout = time.Duration(secs) * time.Second
	}

	client := backend.NewClient(backend.Config{
		BaseURL: cfg.GetString(configfile.KeyBackendBaseURL),
		Timeout: timeout,
	})

	history, err := sqlite.NewHistoryStore(cfg.GetString(configfile.KeyDataDir))
	if err != nil {
		return fmt.Errorf("opening grading history: %w", err)
	}
	defer func() {
		if cerr := history.Close(); cerr != nil {
			logger.Warn("closing grading history: %v", cerr)
		}
	}()

	cli.SetServices(cli.Services{
		Search:   services.NewFirmSearchService(client.Places()),
		Analysis: services.NewFirmAnalysisService(client.Analysis()),
		Grading:  services.NewDocumentService(client.Documents(), history),
		Ranking:  services.NewRankingService(client.Ranking()),
		Report:   services.NewReportService(client.Assistant()),
	})

	return cli.Execute()
}
