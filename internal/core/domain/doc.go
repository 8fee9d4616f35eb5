// Package domain contains the core business entities for the Envint
// conflict-intelligence client: query results, evidence chunks, confidence
// decomposition, and the pure helpers that derive display projections from
// them. It has no dependencies on adapters or transport concerns.
package domain
