package domain

import "time"

// EvidenceChunk is one retrieved document fragment backing an answer.
// Scores are comparable within a single response's chunk set only; they are
// not normalised across responses.
type EvidenceChunk struct {
	// ID uniquely identifies the chunk within one response.
	ID string `json:"id"`

	// Score is the relevance score on the unit interval (higher = more relevant).
	Score float64 `json:"score"`

	// Content is the chunk text.
	Content string `json:"content"`

	// Metadata is an open mapping. Conventional keys: department, date,
	// filename, source_type, author.
	Metadata map[string]any `json:"metadata"`
}

// MetadataString returns the named metadata value if it is a string,
// or "" otherwise.
func (c EvidenceChunk) MetadataString(key string) string {
	if c.Metadata == nil {
		return ""
	}
	s, _ := c.Metadata[key].(string)
	return s
}

// BreakdownFactor is one contributing factor of a confidence breakdown.
type BreakdownFactor struct {
	// Value is the factor's own confidence estimate (0-100).
	Value float64 `json:"value"`

	// Weight is the factor's declared weight as a percentage.
	Weight float64 `json:"weight"`

	// Label is the human-readable factor name.
	Label string `json:"label"`
}

// QueryResult is the full backend answer to one question.
// A result is either an error result (Error set, other fields ignorable) or a
// content result, never both meaningfully. It is replaced wholesale by the
// next query's result, never mutated in place.
type QueryResult struct {
	// Answer is the synthesised answer text.
	Answer string `json:"answer"`

	// ConflictingEvidence lists conflicting-evidence descriptors, each a
	// "source -> claim" string (see ParseConflictPair).
	ConflictingEvidence []string `json:"conflicting_evidence"`

	// ConfidenceLevel is the coarse confidence tier.
	ConfidenceLevel ConfidenceLevel `json:"confidence_level"`

	// ConfidenceScore is the optional numeric confidence (0-100).
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`

	// ConfidenceBreakdown optionally decomposes the confidence into
	// weighted factors, keyed by factor identifier.
	ConfidenceBreakdown map[string]BreakdownFactor `json:"confidence_breakdown,omitempty"`

	// Reasoning is the free-text reasoning behind the answer.
	Reasoning string `json:"reasoning"`

	// Provenance is the ordered list of retrieved evidence chunks.
	Provenance []EvidenceChunk `json:"provenance"`

	// Error carries a payload-level error message. When set, the reply was
	// delivered but the backend could not answer.
	Error string `json:"error,omitempty"`
}

// IsError reports whether this is an error result.
func (r *QueryResult) IsError() bool {
	return r.Error != ""
}

// HasConflicts reports whether any conflicting evidence was detected.
func (r *QueryResult) HasConflicts() bool {
	return len(r.ConflictingEvidence) > 0
}

// Stance classifies how a chunk relates to the synthesised answer.
type Stance string

const (
	StanceSupports    Stance = "supports"
	StanceContradicts Stance = "contradicts"
	StanceNeutral     Stance = "neutral"
)

// ChunkExplanation is the AI analysis of one top-ranked evidence chunk.
// It is scoped to the currently displayed QueryResult and discarded when a
// new query is submitted or the detail view closes.
type ChunkExplanation struct {
	// ChunkID identifies the explained chunk.
	ChunkID string `json:"chunk_id"`

	// Title is a short descriptive title.
	Title string `json:"title"`

	// Stance is supports, contradicts, or neutral.
	Stance Stance `json:"stance"`

	// Relevance narrates why the chunk matters for the question.
	Relevance string `json:"relevance"`

	// KeyClaims lists the chunk's key claims.
	KeyClaims []string `json:"key_claims"`
}

// ActionStatus is the backend's reply to a maintenance action.
type ActionStatus struct {
	// Status is "success" or "error".
	Status string `json:"status"`

	// Message is the backend's own description of the outcome.
	Message string `json:"message"`
}

// Succeeded reports whether the action completed successfully.
func (s *ActionStatus) Succeeded() bool {
	return s.Status == "success"
}

// NotificationTTL is how long an ActionNotification stays visible before
// auto-dismissal.
const NotificationTTL = 4 * time.Second

// Severity is the tier of an ActionNotification.
type Severity int

const (
	// SeveritySuccess indicates the maintenance action succeeded.
	SeveritySuccess Severity = iota
	// SeverityFailure indicates the maintenance action failed.
	SeverityFailure
)

// ActionNotification is a transient message surfaced after a maintenance
// action. It expires after NotificationTTL or on manual dismissal.
type ActionNotification struct {
	// ID distinguishes this notification from earlier ones so a stale
	// expiry timer cannot dismiss a newer toast.
	ID string

	// Message is the displayed text.
	Message string

	// Severity is success or failure.
	Severity Severity
}
