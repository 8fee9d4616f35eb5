package domain

import "sort"

// ConfidenceLevel is the backend's coarse confidence tier, ordered
// Low < Medium < High.
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "Low"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceHigh   ConfidenceLevel = "High"
)

// Tier placeholder percentages used when the backend supplies no numeric
// score. These are fixed display values, not derived from breakdown weights.
const (
	placeholderHigh   = 85
	placeholderMedium = 55
	placeholderLow    = 25
)

// ConfidenceBar is one rendered factor of a confidence breakdown.
type ConfidenceBar struct {
	// Key is the factor identifier (e.g. "retrieval_similarity").
	Key string

	// Label is the display label.
	Label string

	// Value is the factor's estimate (0-100).
	Value float64

	// Weight is the factor's declared weight percentage.
	Weight float64
}

// ConfidenceDisplay is the presentation of a confidence result: an overall
// percentage plus optional per-factor bars.
type ConfidenceDisplay struct {
	// Level is the source tier.
	Level ConfidenceLevel

	// Percent is the display percentage (0-100).
	Percent float64

	// Bars holds the breakdown factors sorted by key for stable rendering.
	// Empty when the backend supplied no breakdown.
	Bars []ConfidenceBar
}

// DecomposeConfidence builds the display form of a confidence result.
// A numeric score, when present, is used verbatim; otherwise the tier alone
// synthesises the percentage (High 85, Medium 55, Low 25). The breakdown is
// trusted as-is: values and weights are rendered without re-normalisation or
// validation that weights sum to 100.
func DecomposeConfidence(
	level ConfidenceLevel,
	score *float64,
	breakdown map[string]BreakdownFactor,
) ConfidenceDisplay {
	d := ConfidenceDisplay{Level: level}

	if score != nil {
		d.Percent = *score
	} else {
		switch level {
		case ConfidenceHigh:
			d.Percent = placeholderHigh
		case ConfidenceMedium:
			d.Percent = placeholderMedium
		default:
			d.Percent = placeholderLow
		}
	}

	if len(breakdown) == 0 {
		return d
	}

	keys := make([]string, 0, len(breakdown))
	for k := range breakdown {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d.Bars = make([]ConfidenceBar, 0, len(keys))
	for _, k := range keys {
		f := breakdown[k]
		d.Bars = append(d.Bars, ConfidenceBar{
			Key:    k,
			Label:  f.Label,
			Value:  f.Value,
			Weight: f.Weight,
		})
	}
	return d
}
