package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui"
	"github.com/envint-labs/envint-cli/internal/core/ports/driven"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Launch the interactive dashboard",
	Long: `Launch the interactive terminal dashboard.

Ask questions, review the evidence behind each answer with confidence and
conflict analysis, and run index maintenance, all with keyboard navigation.

Controls:
  Enter    - Submit question
  ↑/k, ↓/j - Navigate sources
  s        - Toggle sort (relevance/date)
  e        - Explain top sources
  m        - Index maintenance
  ?        - Toggle help
  ctrl+c   - Quit`,
	RunE: runDash,
}

func init() {
	rootCmd.AddCommand(dashCmd)
}

func runDash(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in dashboard: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(queryService, explanationService, maintenanceService))
	if err != nil {
		return fmt.Errorf("failed to create dashboard: %w", err)
	}

	app.WithContext(cmd.Context())
	if configStore != nil {
		app.SetSuggestedQuestions(configStore.GetStringSlice(driven.KeySuggestedQuestions))
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
