package services

import (
	"context"

	"github.com/envint-labs/envint-cli/internal/core/domain"
)

// MockBackend implements driven.Backend for testing.
type MockBackend struct {
	QueryFunc              func(ctx context.Context, question string) (*domain.QueryResult, error)
	ExplainChunksFunc      func(ctx context.Context, question string, chunks []domain.EvidenceChunk) ([]domain.ChunkExplanation, error)
	UploadDocumentFunc     func(ctx context.Context, path string) (*domain.ActionStatus, error)
	RecreateEmbeddingsFunc func(ctx context.Context) (*domain.ActionStatus, error)
	DeleteEmbeddingsFunc   func(ctx context.Context) (*domain.ActionStatus, error)
	PingFunc               func(ctx context.Context) error
}

func (m *MockBackend) Query(ctx context.Context, question string) (*domain.QueryResult, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, question)
	}
	return &domain.QueryResult{}, nil
}

func (m *MockBackend) ExplainChunks(
	ctx context.Context, question string, chunks []domain.EvidenceChunk,
) ([]domain.ChunkExplanation, error) {
	if m.ExplainChunksFunc != nil {
		return m.ExplainChunksFunc(ctx, question, chunks)
	}
	return nil, nil
}

func (m *MockBackend) UploadDocument(ctx context.Context, path string) (*domain.ActionStatus, error) {
	if m.UploadDocumentFunc != nil {
		return m.UploadDocumentFunc(ctx, path)
	}
	return &domain.ActionStatus{Status: "success"}, nil
}

func (m *MockBackend) RecreateEmbeddings(ctx context.Context) (*domain.ActionStatus, error) {
	if m.RecreateEmbeddingsFunc != nil {
		return m.RecreateEmbeddingsFunc(ctx)
	}
	return &domain.ActionStatus{Status: "success"}, nil
}

func (m *MockBackend) DeleteEmbeddings(ctx context.Context) (*domain.ActionStatus, error) {
	if m.DeleteEmbeddingsFunc != nil {
		return m.DeleteEmbeddingsFunc(ctx)
	}
	return &domain.ActionStatus{Status: "success"}, nil
}

func (m *MockBackend) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
