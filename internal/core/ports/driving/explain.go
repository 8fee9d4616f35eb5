package driving

import (
	"context"

	"github.com/envint-labs/envint-cli/internal/core/domain"
)

// ExplanationService fetches AI explanations for top-ranked evidence.
type ExplanationService interface {
	// ExplainTop selects the highest-scoring chunks of the given result
	// set and requests an explanation for each in the context of the
	// question. It never triggers a new retrieval call.
	ExplainTop(ctx context.Context, question string, chunks []domain.EvidenceChunk) ([]domain.ChunkExplanation, error)
}
