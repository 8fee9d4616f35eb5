package services

import (
	"context"
	"fmt"

	"github.com/envint-labs/envint-cli/internal/core/domain"
	"github.com/envint-labs/envint-cli/internal/core/ports/driven"
	"github.com/envint-labs/envint-cli/internal/core/ports/driving"
	"github.com/envint-labs/envint-cli/internal/logger"
)

// Ensure ExplanationService implements the interface.
var _ driving.ExplanationService = (*ExplanationService)(nil)

// TopChunkCount is how many chunks are sent for explanation.
const TopChunkCount = 3

// ExplanationService fetches AI explanations for top-ranked evidence.
type ExplanationService struct {
	backend driven.Backend
}

// NewExplanationService creates a new explanation service.
func NewExplanationService(backend driven.Backend) *ExplanationService {
	return &ExplanationService{backend: backend}
}

// ExplainTop sends the top chunks by relevance score to the explanation
// backend. Selection uses the stable relevance order regardless of how the
// chunks are currently sorted for display, and never issues a retrieval call.
func (s *ExplanationService) ExplainTop(
	ctx context.Context, question string, chunks []domain.EvidenceChunk,
) ([]domain.ChunkExplanation, error) {
	if len(chunks) == 0 {
		return nil, domain.ErrNoChunks
	}

	top := domain.TopByRelevance(chunks, TopChunkCount)

	logger.Section("Chunk Explanation")
	logger.Debug("Explaining %d of %d chunks", len(top), len(chunks))

	explanations, err := s.backend.ExplainChunks(ctx, question, top)
	if err != nil {
		logger.Warn("Explanation failed: %v", err)
		return nil, fmt.Errorf("explain chunks: %w", err)
	}

	logger.Info("Received %d explanations", len(explanations))
	return explanations, nil
}
