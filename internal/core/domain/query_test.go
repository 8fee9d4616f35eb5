package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryResult_IsError(t *testing.T) {
	content := QueryResult{Answer: "All good"}
	failed := QueryResult{Error: "Failed to connect to backend."}

	assert.False(t, content.IsError())
	assert.True(t, failed.IsError())
}

func TestQueryResult_HasConflicts(t *testing.T) {
	none := QueryResult{}
	some := QueryResult{ConflictingEvidence: []string{"A -> x", "B -> y"}}

	assert.False(t, none.HasConflicts())
	assert.True(t, some.HasConflicts())
}

func TestEvidenceChunk_MetadataString(t *testing.T) {
	chunk := EvidenceChunk{
		Metadata: map[string]any{"department": "Emergency", "pages": 3},
	}

	assert.Equal(t, "Emergency", chunk.MetadataString("department"))
	assert.Equal(t, "", chunk.MetadataString("pages"))
	assert.Equal(t, "", chunk.MetadataString("missing"))
	assert.Equal(t, "", EvidenceChunk{}.MetadataString("department"))
}

func TestActionStatus_Succeeded(t *testing.T) {
	assert.True(t, (&ActionStatus{Status: "success"}).Succeeded())
	assert.False(t, (&ActionStatus{Status: "error"}).Succeeded())
}
