package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecomposeConfidence_ScoreWinsVerbatim(t *testing.T) {
	score := 72.4

	d := DecomposeConfidence(ConfidenceLow, &score, nil)

	assert.Equal(t, 72.4, d.Percent)
	assert.Equal(t, ConfidenceLow, d.Level)
	assert.Empty(t, d.Bars)
}

func TestDecomposeConfidence_TierPlaceholders(t *testing.T) {
	tests := []struct {
		level ConfidenceLevel
		want  float64
	}{
		{ConfidenceHigh, 85},
		{ConfidenceMedium, 55},
		{ConfidenceLow, 25},
	}

	for _, tt := range tests {
		d := DecomposeConfidence(tt.level, nil, nil)
		assert.Equal(t, tt.want, d.Percent, "level %s", tt.level)
	}
}

func TestDecomposeConfidence_UnknownTierFallsBackToLow(t *testing.T) {
	d := DecomposeConfidence(ConfidenceLevel("Bogus"), nil, nil)

	assert.Equal(t, float64(25), d.Percent)
}

func TestDecomposeConfidence_BreakdownSortedByKey(t *testing.T) {
	breakdown := map[string]BreakdownFactor{
		"source_diversity":     {Value: 60, Weight: 20, Label: "Source Diversity"},
		"llm_confidence":       {Value: 90, Weight: 40, Label: "LLM Confidence"},
		"retrieval_similarity": {Value: 80, Weight: 40, Label: "Retrieval Similarity"},
	}

	d := DecomposeConfidence(ConfidenceHigh, nil, breakdown)

	assert.Len(t, d.Bars, 3)
	assert.Equal(t, "llm_confidence", d.Bars[0].Key)
	assert.Equal(t, "retrieval_similarity", d.Bars[1].Key)
	assert.Equal(t, "source_diversity", d.Bars[2].Key)
	assert.Equal(t, float64(90), d.Bars[0].Value)
	assert.Equal(t, float64(40), d.Bars[0].Weight)
	assert.Equal(t, "LLM Confidence", d.Bars[0].Label)
}

func TestDecomposeConfidence_BreakdownNotNormalised(t *testing.T) {
	// Weights summing to 150 are rendered as declared.
	breakdown := map[string]BreakdownFactor{
		"a": {Value: 50, Weight: 100, Label: "A"},
		"b": {Value: 50, Weight: 50, Label: "B"},
	}

	d := DecomposeConfidence(ConfidenceMedium, nil, breakdown)

	assert.Equal(t, float64(100), d.Bars[0].Weight)
	assert.Equal(t, float64(50), d.Bars[1].Weight)
}
