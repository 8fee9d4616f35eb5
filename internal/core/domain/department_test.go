package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferDepartment_ExplicitMetadata(t *testing.T) {
	chunk := EvidenceChunk{
		ID:       "Emergency_2024_chunk_0",
		Metadata: map[string]any{"department": "ICU", "filename": "Emergency_Q1.pdf"},
	}

	assert.Equal(t, "ICU", InferDepartment(chunk))
}

func TestInferDepartment_FromFilename(t *testing.T) {
	chunk := EvidenceChunk{
		Metadata: map[string]any{"filename": "Radiology_2024_report.pdf"},
	}

	assert.Equal(t, "Radiology", InferDepartment(chunk))
}

func TestInferDepartment_SkipsNumericTokens(t *testing.T) {
	chunk := EvidenceChunk{
		Metadata: map[string]any{"filename": "2024_Finance_summary.txt"},
	}

	assert.Equal(t, "Finance", InferDepartment(chunk))
}

func TestInferDepartment_FallsBackToChunkID(t *testing.T) {
	chunk := EvidenceChunk{ID: "Surgical_notes_chunk_3"}

	assert.Equal(t, "Surgical", InferDepartment(chunk))
}

func TestInferDepartment_Unknown(t *testing.T) {
	chunk := EvidenceChunk{ID: "2024_01"}

	assert.Equal(t, UnknownDepartment, InferDepartment(chunk))
}

func TestDepartmentFromFilename_Extensions(t *testing.T) {
	assert.Equal(t, "HR", DepartmentFromFilename("HR_policies.md"))
	assert.Equal(t, "Facilities", DepartmentFromFilename("Facilities_audit.PDF"))
	assert.Equal(t, "ICU", DepartmentFromFilename("ICU_beds"))
}

func TestDisplayFilename(t *testing.T) {
	assert.Equal(t, "Patient Relations Q1", DisplayFilename("Patient_Relations_Q1.pdf"))
	assert.Equal(t, "notes", DisplayFilename("notes.txt"))
}
