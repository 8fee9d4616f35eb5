// Package tui provides an interactive terminal dashboard for envint.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/envint-labs/envint-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Query submits questions to the backend.
	Query driving.QueryService

	// Explanation fetches explanations for top-ranked evidence.
	Explanation driving.ExplanationService

	// Maintenance performs index maintenance actions.
	Maintenance driving.MaintenanceService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	query driving.QueryService,
	explanation driving.ExplanationService,
	maintenance driving.MaintenanceService,
) *Ports {
	return &Ports{
		Query:       query,
		Explanation: explanation,
		Maintenance: maintenance,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	if p.Explanation == nil {
		return ErrMissingExplanationService
	}
	if p.Maintenance == nil {
		return ErrMissingMaintenanceService
	}
	return nil
}
