package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestDebug_SilentByDefault(t *testing.T) {
	defer reset()
	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("hidden %d", 1)

	assert.Empty(t, buf.String())
}

func TestDebug_Verbose(t *testing.T) {
	defer reset()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("query %q", "test")

	assert.Contains(t, buf.String(), `[DEBUG] query "test"`)
}

func TestSectionInfoWarn(t *testing.T) {
	defer reset()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Query Execution")
	Info("chunks: %d", 5)
	Warn("slow reply")

	out := buf.String()
	assert.Contains(t, out, "=== Query Execution ===")
	assert.Contains(t, out, "[INFO] chunks: 5")
	assert.Contains(t, out, "[WARN] slow reply")
}

func TestIsVerbose(t *testing.T) {
	defer reset()

	assert.False(t, IsVerbose())
	SetVerbose(true)
	assert.True(t, IsVerbose())
}
