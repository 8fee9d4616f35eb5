package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/messages"
	"github.com/envint-labs/envint-cli/internal/core/domain"
)

// MockQueryService implements driving.QueryService for testing.
type MockQueryService struct {
	AskFunc func(ctx context.Context, question string) (*domain.QueryResult, error)
}

func (m *MockQueryService) Ask(ctx context.Context, question string) (*domain.QueryResult, error) {
	if m.AskFunc != nil {
		return m.AskFunc(ctx, question)
	}
	return &domain.QueryResult{}, nil
}

func successResult() *domain.QueryResult {
	score := 82.0
	return &domain.QueryResult{
		Answer:          "Satisfaction improved 8% in Q1.",
		ConfidenceLevel: domain.ConfidenceHigh,
		ConfidenceScore: &score,
		ConflictingEvidence: []string{
			"Finance_chunk3 -> Budget variance flagged",
		},
		Provenance: []domain.EvidenceChunk{
			{ID: "hr_chunk1", Score: 0.9, Metadata: map[string]any{"filename": "HR_Survey.pdf"}},
			{ID: "fin_chunk2", Score: 0.7, Metadata: map[string]any{"filename": "Finance_Q1.pdf"}},
		},
	}
}

func TestDashboard_SubmitIgnoresBlank(t *testing.T) {
	v := NewView(nil, nil, &MockQueryService{})

	cmd := v.submit("   ")

	assert.Nil(t, cmd)
	assert.False(t, v.Pending())
	assert.Zero(t, v.Seq())
}

func TestDashboard_SubmitStartsQuery(t *testing.T) {
	svc := &MockQueryService{
		AskFunc: func(ctx context.Context, question string) (*domain.QueryResult, error) {
			assert.Equal(t, "Did wait times improve?", question)
			return successResult(), nil
		},
	}
	v := NewView(nil, nil, svc)

	cmd := v.submit("Did wait times improve?")

	require.NotNil(t, cmd)
	assert.True(t, v.Pending())

	msg := cmd()
	completed, ok := msg.(messages.QueryCompleted)
	require.True(t, ok)
	assert.Equal(t, uint64(1), completed.Seq)
	require.NoError(t, completed.Err)
	assert.Equal(t, "Satisfaction improved 8% in Q1.", completed.Result.Answer)
}

func TestDashboard_LastSubmittedWins(t *testing.T) {
	v := NewView(nil, nil, &MockQueryService{})

	first := v.submit("first question")
	require.NotNil(t, first)
	second := v.submit("second question")
	require.NotNil(t, second)

	// The first (stale) completion arrives after the second submission.
	v.handleQueryCompleted(messages.QueryCompleted{
		Seq:    1,
		Result: &domain.QueryResult{Answer: "stale answer"},
	})
	assert.True(t, v.Pending(), "stale completion must not settle the newer query")
	assert.Nil(t, v.Result())

	v.handleQueryCompleted(messages.QueryCompleted{
		Seq:    2,
		Result: successResult(),
	})
	assert.True(t, v.Answered())
	assert.Equal(t, "Satisfaction improved 8% in Q1.", v.Result().Answer)
}

func TestDashboard_StaleErrorIgnored(t *testing.T) {
	v := NewView(nil, nil, &MockQueryService{})

	v.submit("first")
	v.submit("second")

	v.handleQueryCompleted(messages.QueryCompleted{Seq: 1, Err: domain.ErrBackendUnavailable})

	assert.True(t, v.Pending())
	assert.Empty(t, v.Err())
}

func TestDashboard_TransportError(t *testing.T) {
	v := NewView(nil, nil, &MockQueryService{})

	v.submit("any question")
	v.handleQueryCompleted(messages.QueryCompleted{Seq: 1, Err: domain.ErrBackendUnavailable})

	assert.False(t, v.Answered())
	assert.Equal(t, "Failed to connect to backend.", v.Err())
}

func TestDashboard_TransportErrorHidesDialDetail(t *testing.T) {
	v := NewView(nil, nil, &MockQueryService{})
	v.SetDimensions(120, 40)

	wrapped := fmt.Errorf("ask backend: %w: %v", domain.ErrBackendUnavailable,
		errors.New(`Post "http://localhost:8000/api/query": connection refused`))
	v.submit("any question")
	v.handleQueryCompleted(messages.QueryCompleted{Seq: 1, Err: wrapped})

	view := v.View()
	assert.Contains(t, view, "Failed to connect to backend.")
	assert.NotContains(t, view, "localhost:8000")
	assert.NotContains(t, view, "connection refused")
}

func TestDashboard_PayloadError(t *testing.T) {
	v := NewView(nil, nil, &MockQueryService{})

	v.submit("any question")
	v.handleQueryCompleted(messages.QueryCompleted{
		Seq:    1,
		Result: &domain.QueryResult{Error: "index is empty"},
	})

	assert.False(t, v.Answered())
	assert.Equal(t, "index is empty", v.Err())
}

func TestDashboard_SuccessMovesFocusToResults(t *testing.T) {
	v := NewView(nil, nil, &MockQueryService{})

	v.submit("q")
	v.handleQueryCompleted(messages.QueryCompleted{Seq: 1, Result: successResult()})

	assert.True(t, v.Answered())
	assert.False(t, v.InputFocused())
	assert.Equal(t, domain.SortByRelevanceOrder, v.SortOrder())
}

func TestDashboard_NewQueryResetsSortOrder(t *testing.T) {
	v := NewView(nil, nil, &MockQueryService{})

	v.submit("q")
	v.handleQueryCompleted(messages.QueryCompleted{Seq: 1, Result: successResult()})

	// Toggle to date order, then submit a new question.
	v.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	assert.Equal(t, domain.SortByDateOrder, v.SortOrder())

	v.submit("another q")
	v.handleQueryCompleted(messages.QueryCompleted{Seq: 2, Result: successResult()})
	assert.Equal(t, domain.SortByRelevanceOrder, v.SortOrder(),
		"each new answer starts back at relevance order")
}

func TestDashboard_SuggestedQuestionFill(t *testing.T) {
	v := NewView(nil, nil, &MockQueryService{})
	v.SetSuggestedQuestions([]string{
		"Has patient satisfaction improved?",
		"Any budget conflicts this quarter?",
	})

	v.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})

	assert.Equal(t, "Any budget conflicts this quarter?", v.input.Value())
}

func TestDashboard_ViewRendersAnswer(t *testing.T) {
	v := NewView(nil, nil, &MockQueryService{})
	v.SetDimensions(120, 40)

	v.submit("q")
	v.handleQueryCompleted(messages.QueryCompleted{Seq: 1, Result: successResult()})

	view := v.View()
	assert.Contains(t, view, "Satisfaction improved 8% in Q1.")
	assert.Contains(t, view, "82%")
	assert.Contains(t, view, "Conflicting evidence (1)")
	assert.Contains(t, view, "Budget variance flagged")
	assert.Contains(t, view, "Avg similarity: 80.0%")
	assert.Contains(t, view, "Conflicts found: 1")
}

func TestDashboard_ViewRendersZeroConflicts(t *testing.T) {
	v := NewView(nil, nil, &MockQueryService{})
	v.SetDimensions(120, 40)

	result := successResult()
	result.ConflictingEvidence = nil

	v.submit("q")
	v.handleQueryCompleted(messages.QueryCompleted{Seq: 1, Result: result})

	view := v.View()
	assert.Contains(t, view, "Conflicts found: 0")
	assert.NotContains(t, view, "Conflicting evidence", "no cards for a clean answer")
}

func TestDashboard_ViewRendersPlaceholderPercent(t *testing.T) {
	v := NewView(nil, nil, &MockQueryService{})
	v.SetDimensions(120, 40)

	result := successResult()
	result.ConfidenceScore = nil

	v.submit("q")
	v.handleQueryCompleted(messages.QueryCompleted{Seq: 1, Result: result})

	assert.Contains(t, v.View(), "85%", "High tier without a score renders as 85%")
}

func TestDashboard_ExplainKeyOpensDetail(t *testing.T) {
	v := NewView(nil, nil, &MockQueryService{})

	v.submit("q")
	v.handleQueryCompleted(messages.QueryCompleted{Seq: 1, Result: successResult()})

	_, cmd := v.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	require.NotNil(t, cmd)

	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewDetail, changed.View)
}

func TestDashboard_NewQuestionKeyReturnsToIdle(t *testing.T) {
	v := NewView(nil, nil, &MockQueryService{})

	v.submit("q")
	v.handleQueryCompleted(messages.QueryCompleted{Seq: 1, Result: successResult()})
	require.True(t, v.Answered())

	v.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})

	assert.False(t, v.Answered())
	assert.Nil(t, v.Result())
	assert.True(t, v.InputFocused())
	assert.Empty(t, v.Question())
}

func TestDashboard_Reset(t *testing.T) {
	v := NewView(nil, nil, &MockQueryService{})

	v.submit("q")
	v.handleQueryCompleted(messages.QueryCompleted{Seq: 1, Result: successResult()})

	v.Reset()

	assert.False(t, v.Answered())
	assert.Nil(t, v.Result())
	assert.True(t, v.InputFocused())
	assert.Empty(t, v.Question())
}
