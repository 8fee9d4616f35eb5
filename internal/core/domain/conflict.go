package domain

import "strings"

// conflictSeparator joins the source label and the claim in a
// conflicting-evidence descriptor.
const conflictSeparator = " -> "

// ConflictPair is one parsed conflicting-evidence descriptor.
type ConflictPair struct {
	// Source is the cleaned source label.
	Source string

	// Claim is the claim text.
	Claim string
}

// ParseConflictPair splits a "source -> claim" descriptor into its parts.
// The source label is cleaned by stripping a trailing "_chunk..." suffix and
// converting underscores to spaces. When the separator is absent the whole
// string is treated as the claim under a generic "Source" label.
func ParseConflictPair(evidence string) ConflictPair {
	source, claim, ok := strings.Cut(evidence, conflictSeparator)
	if !ok {
		return ConflictPair{Source: "Source", Claim: evidence}
	}
	return ConflictPair{Source: cleanSourceLabel(source), Claim: claim}
}

// cleanSourceLabel turns a chunk identifier like "Finance_chunk3" into a
// display label like "Finance".
func cleanSourceLabel(source string) string {
	if i := strings.Index(source, "_chunk"); i >= 0 {
		source = source[:i]
	}
	return strings.ReplaceAll(source, "_", " ")
}
