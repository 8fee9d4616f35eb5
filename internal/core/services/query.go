package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/envint-labs/envint-cli/internal/core/domain"
	"github.com/envint-labs/envint-cli/internal/core/ports/driven"
	"github.com/envint-labs/envint-cli/internal/core/ports/driving"
	"github.com/envint-labs/envint-cli/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService submits questions to the RAG backend.
type QueryService struct {
	backend driven.Backend
}

// NewQueryService creates a new query service.
func NewQueryService(backend driven.Backend) *QueryService {
	return &QueryService{backend: backend}
}

// Ask submits a question and returns the backend's answer.
// A blank question returns domain.ErrEmptyQuery without touching the backend.
func (s *QueryService) Ask(ctx context.Context, question string) (*domain.QueryResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domain.ErrEmptyQuery
	}

	logger.Section("Query Execution")
	logger.Debug("Question: %q", question)

	result, err := s.backend.Query(ctx, question)
	if err != nil {
		logger.Warn("Query failed: %v", err)
		return nil, fmt.Errorf("ask backend: %w", err)
	}

	logger.Info("Answer received: %d chunks, %d conflicts, confidence %s",
		len(result.Provenance), len(result.ConflictingEvidence), result.ConfidenceLevel)
	return result, nil
}
