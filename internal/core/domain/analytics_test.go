package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunk(id string, score float64, meta map[string]any) EvidenceChunk {
	return EvidenceChunk{ID: id, Score: score, Content: "content " + id, Metadata: meta}
}

func TestSortByRelevance_Descending(t *testing.T) {
	chunks := []EvidenceChunk{
		chunk("a", 0.4, nil),
		chunk("b", 0.9, nil),
		chunk("c", 0.7, nil),
	}

	sorted := SortByRelevance(chunks)

	require.Len(t, sorted, 3)
	for i := 1; i < len(sorted); i++ {
		assert.GreaterOrEqual(t, sorted[i-1].Score, sorted[i].Score)
	}
	// Input untouched.
	assert.Equal(t, "a", chunks[0].ID)
}

func TestSortByRelevance_StableOnTies(t *testing.T) {
	chunks := []EvidenceChunk{
		chunk("first", 0.5, nil),
		chunk("second", 0.5, nil),
		chunk("third", 0.5, nil),
	}

	sorted := SortByRelevance(chunks)

	assert.Equal(t, "first", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID)
	assert.Equal(t, "third", sorted[2].ID)
}

func TestSortByRelevance_Permutation(t *testing.T) {
	chunks := []EvidenceChunk{
		chunk("a", 0.1, nil),
		chunk("b", 0.8, nil),
		chunk("c", 0.8, nil),
		chunk("d", 0.3, nil),
	}

	sorted := SortByRelevance(chunks)

	seen := make(map[string]int)
	for _, c := range sorted {
		seen[c.ID]++
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1, "d": 1}, seen)
}

func TestSortByDate_MissingDatesLast(t *testing.T) {
	chunks := []EvidenceChunk{
		chunk("undated", 0.9, nil),
		chunk("old", 0.2, map[string]any{"date": "2023-01-15"}),
		chunk("new", 0.1, map[string]any{"date": "2024-06-01"}),
	}

	sorted := SortByDate(chunks)

	assert.Equal(t, "new", sorted[0].ID)
	assert.Equal(t, "old", sorted[1].ID)
	assert.Equal(t, "undated", sorted[2].ID)
}

func TestSortByDate_EmptyInput(t *testing.T) {
	assert.Empty(t, SortByDate(nil))
	assert.Empty(t, SortByDate([]EvidenceChunk{}))
}

func TestTopByRelevance(t *testing.T) {
	chunks := []EvidenceChunk{
		chunk("a", 0.4, nil),
		chunk("b", 0.9, nil),
		chunk("c", 0.7, nil),
		chunk("d", 0.8, nil),
		chunk("e", 0.1, nil),
	}

	top := TopByRelevance(chunks, 3)

	require.Len(t, top, 3)
	assert.Equal(t, "b", top[0].ID)
	assert.Equal(t, "d", top[1].ID)
	assert.Equal(t, "c", top[2].ID)
}

func TestTopByRelevance_ShortInput(t *testing.T) {
	top := TopByRelevance([]EvidenceChunk{chunk("a", 0.5, nil)}, 3)

	assert.Len(t, top, 1)
}

func TestGroupByDepartment(t *testing.T) {
	chunks := []EvidenceChunk{
		chunk("1", 0.9, map[string]any{"department": "Emergency"}),
		chunk("2", 0.8, map[string]any{"department": "Emergency"}),
		chunk("3", 0.7, map[string]any{"filename": "Radiology_2024.pdf"}),
		chunk("4", 0.6, nil),
	}

	groups := GroupByDepartment(chunks)

	require.Len(t, groups, 3)
	assert.Equal(t, DepartmentGroup{Department: "Emergency", Count: 2, Percent: 50.0}, groups[0])

	var total float64
	for _, g := range groups {
		total += g.Percent
	}
	assert.InDelta(t, 100.0, total, 0.2)
}

func TestGroupByDepartment_Empty(t *testing.T) {
	assert.Nil(t, GroupByDepartment(nil))
}

func TestAverageSimilarity(t *testing.T) {
	assert.Equal(t, float64(0), AverageSimilarity(nil))

	chunks := []EvidenceChunk{
		chunk("a", 0.8, nil),
		chunk("b", 0.6, nil),
	}
	assert.Equal(t, 70.0, AverageSimilarity(chunks))
}

func TestAverageSimilarity_OneDecimal(t *testing.T) {
	chunks := []EvidenceChunk{
		chunk("a", 0.333, nil),
		chunk("b", 0.333, nil),
		chunk("c", 0.333, nil),
	}

	assert.Equal(t, 33.3, AverageSimilarity(chunks))
}

func TestDistributeScores(t *testing.T) {
	chunks := []EvidenceChunk{
		chunk("a", 0.95, nil),
		chunk("b", 0.8, nil),
		chunk("c", 0.5, nil),
		chunk("d", 0.49, nil),
	}

	dist := DistributeScores(chunks)

	assert.Equal(t, ScoreDistribution{High: 2, Medium: 1, Low: 1}, dist)
	assert.Equal(t, ScoreDistribution{}, DistributeScores(nil))
}

func TestSorted_Orders(t *testing.T) {
	chunks := []EvidenceChunk{
		chunk("low", 0.1, map[string]any{"date": "2024-05-01"}),
		chunk("high", 0.9, map[string]any{"date": "2023-05-01"}),
	}

	assert.Equal(t, "high", Sorted(chunks, SortByRelevanceOrder)[0].ID)
	assert.Equal(t, "low", Sorted(chunks, SortByDateOrder)[0].ID)
}
