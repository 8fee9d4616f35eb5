package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild all embeddings from the backend's documents",
	Long: `Clears the embedding index and re-embeds every document the backend knows
about. The rebuild runs server-side; this command waits for completion.`,
	RunE: runReindex,
}

func init() {
	rootCmd.AddCommand(reindexCmd)
}

func runReindex(cmd *cobra.Command, _ []string) error {
	if maintenanceService == nil {
		return errors.New("maintenance service not configured")
	}

	cmd.Println("Rebuilding embeddings...")
	status, err := maintenanceService.Recreate(cmd.Context())
	if err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}
	if !status.Succeeded() {
		return fmt.Errorf("reindex failed: %s", status.Message)
	}

	cmd.Println(status.Message)
	return nil
}
