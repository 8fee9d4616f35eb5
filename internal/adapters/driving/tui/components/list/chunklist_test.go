package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envint-labs/envint-cli/internal/core/domain"
)

func testChunks() []domain.EvidenceChunk {
	return []domain.EvidenceChunk{
		{
			ID:    "finance_q1_chunk1",
			Score: 0.62,
			Metadata: map[string]any{
				"filename": "Finance_Q1_Report.pdf",
				"date":     "2026-01-15",
			},
		},
		{
			ID:    "hr_chunk2",
			Score: 0.91,
			Metadata: map[string]any{
				"filename": "HR_Survey.pdf",
				"date":     "2025-11-02",
			},
		},
		{
			ID:    "ops_chunk3",
			Score: 0.45,
			Metadata: map[string]any{
				"filename": "Operations_Review.pdf",
				"date":     "2026-03-20",
			},
		},
	}
}

func TestChunkList_DefaultsToRelevanceOrder(t *testing.T) {
	l := NewChunkList(nil)
	l.SetChunks(testChunks())

	sorted := l.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, "hr_chunk2", sorted[0].ID)
	assert.Equal(t, "finance_q1_chunk1", sorted[1].ID)
	assert.Equal(t, "ops_chunk3", sorted[2].ID)
}

func TestChunkList_ToggleOrder(t *testing.T) {
	l := NewChunkList(nil)
	l.SetChunks(testChunks())
	l.MoveDown()

	l.ToggleOrder()

	assert.Equal(t, domain.SortByDateOrder, l.Order())
	assert.Zero(t, l.Selected(), "toggling the order resets selection")

	sorted := l.Sorted()
	assert.Equal(t, "ops_chunk3", sorted[0].ID)
	assert.Equal(t, "finance_q1_chunk1", sorted[1].ID)
	assert.Equal(t, "hr_chunk2", sorted[2].ID)

	l.ToggleOrder()
	assert.Equal(t, domain.SortByRelevanceOrder, l.Order())
}

func TestChunkList_ToggleKeepsOriginalChunks(t *testing.T) {
	l := NewChunkList(nil)
	chunks := testChunks()
	l.SetChunks(chunks)

	l.ToggleOrder()
	l.ToggleOrder()

	assert.Equal(t, chunks, l.Chunks(), "retrieval order is preserved under toggles")
}

func TestChunkList_Navigation(t *testing.T) {
	l := NewChunkList(nil)
	l.SetChunks(testChunks())

	assert.Zero(t, l.Selected())
	l.MoveUp()
	assert.Zero(t, l.Selected(), "cannot move above the first chunk")

	l.MoveDown()
	l.MoveDown()
	l.MoveDown()
	assert.Equal(t, 2, l.Selected(), "cannot move past the last chunk")

	selected := l.SelectedChunk()
	require.NotNil(t, selected)
	assert.Equal(t, "ops_chunk3", selected.ID)
}

func TestChunkList_Empty(t *testing.T) {
	l := NewChunkList(nil)

	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.SelectedChunk())
	assert.Contains(t, l.View(), "No sources")
}

func TestChunkList_ViewShowsOrderAndDepartment(t *testing.T) {
	l := NewChunkList(nil)
	l.SetChunks(testChunks())
	l.SetDimensions(100, 20)

	view := l.View()
	assert.Contains(t, view, "sorted by relevance")
	assert.Contains(t, view, "[Finance]")
	assert.Contains(t, view, "[HR]")
}
