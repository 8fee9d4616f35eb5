// Command envint is a terminal client for the Envint document
// intelligence backend.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/envint-labs/envint-cli/internal/adapters/driven/backend"
	configfile "github.com/envint-labs/envint-cli/internal/adapters/driven/config/file"
	"github.com/envint-labs/envint-cli/internal/adapters/driving/cli"
	"github.com/envint-labs/envint-cli/internal/core/ports/driven"
	"github.com/envint-labs/envint-cli/internal/core/services"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "envint: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	store, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg := backend.Config{
		BaseURL: store.GetString(driven.KeyBackendURL),
	}
	if timeout := store.GetInt(driven.KeyBackendTimeout); timeout > 0 {
		cfg.Timeout = time.Duration(timeout) * time.Second
	}
	// ENVINT_BACKEND_URL wins over the config file, for ad hoc use.
	if url := os.Getenv("ENVINT_BACKEND_URL"); url != "" {
		cfg.BaseURL = url
	}

	client := backend.NewClient(cfg)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Query:       services.NewQueryService(client),
		Explanation: services.NewExplanationService(client),
		Maintenance: services.NewMaintenanceService(client),
		Config:      store,
	})

	return cli.Execute()
}
