package domain

import (
	"math"
	"sort"
)

// SortOrder selects how retrieved evidence is ordered for display.
type SortOrder int

const (
	// SortByRelevanceOrder orders chunks by descending relevance score.
	SortByRelevanceOrder SortOrder = iota
	// SortByDateOrder orders chunks by descending metadata date.
	SortByDateOrder
)

// String returns the display name of the sort order.
func (o SortOrder) String() string {
	if o == SortByDateOrder {
		return "date"
	}
	return "relevance"
}

// SortByRelevance returns a new slice ordered by descending score.
// The sort is stable: chunks with equal scores keep their original order,
// which matters for clustered retrieval results where ties are common.
func SortByRelevance(chunks []EvidenceChunk) []EvidenceChunk {
	sorted := append([]EvidenceChunk(nil), chunks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted
}

// SortByDate returns a new slice ordered by descending metadata date.
// Comparison is lexicographic, which is only correct because dates are stored
// in ISO-like sortable string form (YYYY-MM-DD); chunks with a missing date
// compare as the empty string and therefore sort last.
func SortByDate(chunks []EvidenceChunk) []EvidenceChunk {
	sorted := append([]EvidenceChunk(nil), chunks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MetadataString("date") > sorted[j].MetadataString("date")
	})
	return sorted
}

// Sorted applies the given order to the chunks, returning a new slice.
func Sorted(chunks []EvidenceChunk, order SortOrder) []EvidenceChunk {
	if order == SortByDateOrder {
		return SortByDate(chunks)
	}
	return SortByRelevance(chunks)
}

// TopByRelevance returns the n highest-scoring chunks in stable descending
// order. It returns fewer when the input is shorter.
func TopByRelevance(chunks []EvidenceChunk, n int) []EvidenceChunk {
	sorted := SortByRelevance(chunks)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// DepartmentGroup is one department's share of the retrieved chunks.
type DepartmentGroup struct {
	// Department is the inferred department label.
	Department string

	// Count is the number of chunks in the group.
	Count int

	// Percent is the group's share of all chunks, rounded to one decimal.
	Percent float64
}

// GroupByDepartment derives per-department counts and percentage shares for
// the given chunks, ordered by descending count (ties by label for stable
// output). Returns nil for an empty chunk list.
func GroupByDepartment(chunks []EvidenceChunk) []DepartmentGroup {
	if len(chunks) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, c := range chunks {
		counts[InferDepartment(c)]++
	}

	groups := make([]DepartmentGroup, 0, len(counts))
	total := float64(len(chunks))
	for dept, count := range counts {
		groups = append(groups, DepartmentGroup{
			Department: dept,
			Count:      count,
			Percent:    roundOneDecimal(float64(count) / total * 100),
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Department < groups[j].Department
	})
	return groups
}

// ScoreDistribution counts retrieved chunks per similarity band.
type ScoreDistribution struct {
	// High counts chunks with a score of 0.8 or above.
	High int

	// Medium counts chunks with a score of 0.5 up to 0.8.
	Medium int

	// Low counts chunks below 0.5.
	Low int
}

// DistributeScores buckets the chunks into similarity bands.
func DistributeScores(chunks []EvidenceChunk) ScoreDistribution {
	var d ScoreDistribution
	for _, c := range chunks {
		switch {
		case c.Score >= 0.8:
			d.High++
		case c.Score >= 0.5:
			d.Medium++
		default:
			d.Low++
		}
	}
	return d
}

// AverageSimilarity is the arithmetic mean of the chunk scores expressed as a
// percentage rounded to one decimal place, or 0 for an empty list.
func AverageSimilarity(chunks []EvidenceChunk) float64 {
	if len(chunks) == 0 {
		return 0
	}
	var sum float64
	for _, c := range chunks {
		sum += c.Score
	}
	return roundOneDecimal(sum / float64(len(chunks)) * 100)
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
