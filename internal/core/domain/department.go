package domain

import (
	"strconv"
	"strings"
)

// UnknownDepartment is the label used when no department can be inferred.
const UnknownDepartment = "Unknown"

// docExtensions are the document file extensions stripped before inferring a
// department from a filename.
var docExtensions = []string{".pdf", ".txt", ".md"}

// InferDepartment derives the department label for a chunk: the explicit
// metadata department field when present, otherwise the first
// underscore-delimited non-numeric token of the filename (falling back to the
// chunk ID), otherwise UnknownDepartment.
func InferDepartment(chunk EvidenceChunk) string {
	if dept := chunk.MetadataString("department"); dept != "" {
		return dept
	}

	name := chunk.MetadataString("filename")
	if name == "" {
		name = chunk.ID
	}
	if dept := DepartmentFromFilename(name); dept != "" {
		return dept
	}
	return UnknownDepartment
}

// DepartmentFromFilename applies the filename heuristic: strip a trailing
// .pdf/.txt/.md extension, split on underscores, and return the first token
// that is not purely numeric. Returns "" when no such token exists.
func DepartmentFromFilename(name string) string {
	for _, ext := range docExtensions {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			name = name[:len(name)-len(ext)]
			break
		}
	}

	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		if _, err := strconv.ParseFloat(part, 64); err == nil {
			continue
		}
		return part
	}
	return ""
}

// DisplayFilename renders a filename for display: underscores become spaces
// and a trailing document extension is dropped.
func DisplayFilename(name string) string {
	for _, ext := range docExtensions {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			name = name[:len(name)-len(ext)]
			break
		}
	}
	return strings.ReplaceAll(name, "_", " ")
}
