package driven

import (
	"context"

	"github.com/envint-labs/envint-cli/internal/core/domain"
)

// Backend is the Envint RAG API boundary. Retrieval, answer synthesis, and
// conflict detection all happen server-side; the client only consumes the
// computed results.
type Backend interface {
	// Query submits a natural-language question and returns the full
	// answer with evidence, confidence, and detected conflicts. A reply
	// whose payload signals a logical error is still returned as a result
	// (with Error set); the returned error covers transport failures only.
	Query(ctx context.Context, question string) (*domain.QueryResult, error)

	// ExplainChunks requests a focused AI explanation for the given
	// chunks (at most three) in the context of the question.
	ExplainChunks(ctx context.Context, question string, chunks []domain.EvidenceChunk) ([]domain.ChunkExplanation, error)

	// UploadDocument ingests the file at path into the index.
	UploadDocument(ctx context.Context, path string) (*domain.ActionStatus, error)

	// RecreateEmbeddings clears the index and re-embeds every known file.
	RecreateEmbeddings(ctx context.Context) (*domain.ActionStatus, error)

	// DeleteEmbeddings permanently clears the index.
	DeleteEmbeddings(ctx context.Context) (*domain.ActionStatus, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}
