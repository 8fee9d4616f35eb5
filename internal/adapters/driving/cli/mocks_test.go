package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/envint-labs/envint-cli/internal/core/domain"
)

// mockQueryService implements driving.QueryService for testing.
type mockQueryService struct {
	AskFunc func(ctx context.Context, question string) (*domain.QueryResult, error)
}

func (m *mockQueryService) Ask(ctx context.Context, question string) (*domain.QueryResult, error) {
	if m.AskFunc != nil {
		return m.AskFunc(ctx, question)
	}
	return &domain.QueryResult{}, nil
}

// mockExplanationService implements driving.ExplanationService for testing.
type mockExplanationService struct {
	ExplainTopFunc func(ctx context.Context, question string, chunks []domain.EvidenceChunk) ([]domain.ChunkExplanation, error)
}

func (m *mockExplanationService) ExplainTop(
	ctx context.Context, question string, chunks []domain.EvidenceChunk,
) ([]domain.ChunkExplanation, error) {
	if m.ExplainTopFunc != nil {
		return m.ExplainTopFunc(ctx, question, chunks)
	}
	return nil, nil
}

// mockMaintenanceService implements driving.MaintenanceService for testing.
type mockMaintenanceService struct {
	UploadFunc   func(ctx context.Context, path string) (*domain.ActionStatus, error)
	RecreateFunc func(ctx context.Context) (*domain.ActionStatus, error)
	PurgeFunc    func(ctx context.Context) (*domain.ActionStatus, error)
	PingFunc     func(ctx context.Context) error
}

func (m *mockMaintenanceService) Upload(ctx context.Context, path string) (*domain.ActionStatus, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, path)
	}
	return &domain.ActionStatus{Status: "success"}, nil
}

func (m *mockMaintenanceService) Recreate(ctx context.Context) (*domain.ActionStatus, error) {
	if m.RecreateFunc != nil {
		return m.RecreateFunc(ctx)
	}
	return &domain.ActionStatus{Status: "success"}, nil
}

func (m *mockMaintenanceService) Purge(ctx context.Context) (*domain.ActionStatus, error) {
	if m.PurgeFunc != nil {
		return m.PurgeFunc(ctx)
	}
	return &domain.ActionStatus{Status: "success"}, nil
}

func (m *mockMaintenanceService) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// execute runs the root command with the given args and returns its output.
// Injected services are restored when the test finishes.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		queryService = nil
		explanationService = nil
		maintenanceService = nil
		configStore = nil
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
