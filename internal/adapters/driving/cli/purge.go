package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/envint-labs/envint-cli/internal/core/domain"
)

var purgeYes bool

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all embeddings from the index",
	Long: `Permanently deletes every embedding from the backend index.

The command asks for confirmation when run interactively. In scripts, pass
--yes to skip the prompt; without a terminal and without --yes it refuses
to run.`,
	RunE: runPurge,
}

func init() {
	purgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(purgeCmd)
}

func runPurge(cmd *cobra.Command, _ []string) error {
	if maintenanceService == nil {
		return errors.New("maintenance service not configured")
	}

	if !purgeYes {
		if err := confirmPurge(cmd); err != nil {
			return err
		}
	}

	status, err := maintenanceService.Purge(cmd.Context())
	if err != nil {
		return fmt.Errorf("purge failed: %w", err)
	}
	if !status.Succeeded() {
		return fmt.Errorf("purge failed: %s", status.Message)
	}

	cmd.Println(status.Message)
	return nil
}

// confirmPurge asks for an explicit yes on the terminal.
// A non-interactive session cannot confirm, so it is refused outright.
func confirmPurge(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("refusing to purge without a terminal; pass --yes to confirm")
	}

	cmd.Print("Delete ALL embeddings from the index? This cannot be undone. [y/N] ")
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read confirmation: %w", err)
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		return domain.ErrNotConfirmed
	}
	return nil
}
