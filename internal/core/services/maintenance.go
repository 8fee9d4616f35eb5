package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/envint-labs/envint-cli/internal/core/domain"
	"github.com/envint-labs/envint-cli/internal/core/ports/driven"
	"github.com/envint-labs/envint-cli/internal/core/ports/driving"
	"github.com/envint-labs/envint-cli/internal/logger"
)

// Ensure MaintenanceService implements the interface.
var _ driving.MaintenanceService = (*MaintenanceService)(nil)

// MaintenanceService performs administrative operations on the backend index.
// It does not gate destructive operations itself; confirmation belongs to the
// caller so the gate can be replaced in non-interactive environments. At most
// one action runs at a time; a call made while another action is still
// running returns domain.ErrActionInFlight.
type MaintenanceService struct {
	backend driven.Backend
	busy    atomic.Bool
}

// NewMaintenanceService creates a new maintenance service.
func NewMaintenanceService(backend driven.Backend) *MaintenanceService {
	return &MaintenanceService{backend: backend}
}

// Upload ingests the document at path into the backend index.
func (s *MaintenanceService) Upload(ctx context.Context, path string) (*domain.ActionStatus, error) {
	if path == "" {
		return nil, domain.ErrNoFileSelected
	}
	if !s.busy.CompareAndSwap(false, true) {
		return nil, domain.ErrActionInFlight
	}
	defer s.busy.Store(false)

	logger.Section("Document Upload")
	logger.Debug("File: %s", path)

	status, err := s.backend.UploadDocument(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}
	logger.Info("Upload %s: %s", status.Status, status.Message)
	return status, nil
}

// Recreate clears the index and re-embeds every known file.
// The rebuild is idempotent server-side, so no confirmation is required.
func (s *MaintenanceService) Recreate(ctx context.Context) (*domain.ActionStatus, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, domain.ErrActionInFlight
	}
	defer s.busy.Store(false)

	logger.Section("Recreate Embeddings")

	status, err := s.backend.RecreateEmbeddings(ctx)
	if err != nil {
		return nil, fmt.Errorf("recreate embeddings: %w", err)
	}
	logger.Info("Recreate %s: %s", status.Status, status.Message)
	return status, nil
}

// Purge permanently deletes all embeddings from the index.
func (s *MaintenanceService) Purge(ctx context.Context) (*domain.ActionStatus, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, domain.ErrActionInFlight
	}
	defer s.busy.Store(false)

	logger.Section("Delete Embeddings")

	status, err := s.backend.DeleteEmbeddings(ctx)
	if err != nil {
		return nil, fmt.Errorf("delete embeddings: %w", err)
	}
	logger.Info("Purge %s: %s", status.Status, status.Message)
	return status, nil
}

// Ping reports whether the backend is reachable.
func (s *MaintenanceService) Ping(ctx context.Context) error {
	if err := s.backend.Ping(ctx); err != nil {
		logger.Warn("Backend unreachable: %v", err)
		return fmt.Errorf("ping backend: %w", err)
	}
	return nil
}
