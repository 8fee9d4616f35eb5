package driving

import (
	"context"

	"github.com/envint-labs/envint-cli/internal/core/domain"
)

// QueryService submits questions to the RAG backend.
type QueryService interface {
	// Ask submits a question and returns the backend's answer.
	// A blank question returns domain.ErrEmptyQuery.
	Ask(ctx context.Context, question string) (*domain.QueryResult, error)
}
