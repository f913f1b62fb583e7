package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	askModel       string
	askTemperature float64
)

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Ask the AI assistant a question",
	Long: `Sends a free-form message to the backend's AI assistant and prints
the reply.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askModel, "model", "m", "", "assistant model (backend default when empty)")
	askCmd.Flags().Float64VarP(&askTemperature, "temperature", "t", 0, "sampling temperature (backend default when zero)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	reply, err := reportService.Ask(context.Background(), args[0], askModel, askTemperature)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	cmd.Println(reply)
	return nil
}
