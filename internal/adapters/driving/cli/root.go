// Package cli provides the command-line interface for envint.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/envint-labs/envint-cli/internal/core/ports/driven"
	"github.com/envint-labs/envint-cli/internal/core/ports/driving"
	"github.com/envint-labs/envint-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services. The composition root wires these before Execute runs.
var (
	queryService       driving.QueryService
	explanationService driving.ExplanationService
	maintenanceService driving.MaintenanceService
	configStore        driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "envint",
	Short: "Terminal dashboard for the Envint document intelligence backend",
	Long: `envint is a terminal client for a retrieval-augmented document backend.

Ask questions about your indexed documents, inspect the evidence behind each
answer, and maintain the embedding index, all from the terminal.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Services bundles everything the CLI commands need.
type Services struct {
	Query       driving.QueryService
	Explanation driving.ExplanationService
	Maintenance driving.MaintenanceService
	Config      driven.ConfigStore
}

// SetServices injects the core services into the CLI commands.
func SetServices(s Services) {
	queryService = s.Query
	explanationService = s.Explanation
	maintenanceService = s.Maintenance
	configStore = s.Config
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
