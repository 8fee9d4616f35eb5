package tui

import "errors"

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("tui: query service is required")

// ErrMissingExplanationService is returned when the explanation service is not provided.
var ErrMissingExplanationService = errors.New("tui: explanation service is required")

// ErrMissingMaintenanceService is returned when the maintenance service is not provided.
var ErrMissingMaintenanceService = errors.New("tui: maintenance service is required")
