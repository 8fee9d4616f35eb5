package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewTypeString(t *testing.T) {
	assert.Equal(t, "dashboard", ViewDashboard.String())
	assert.Equal(t, "detail", ViewDetail.String())
	assert.Equal(t, "maintenance", ViewMaintenance.String())
	assert.Equal(t, "help", ViewHelp.String())
	assert.Equal(t, "unknown", ViewType(99).String())
}

func TestActionKindString(t *testing.T) {
	assert.Equal(t, "upload", ActionUpload.String())
	assert.Equal(t, "recreate", ActionRecreate.String())
	assert.Equal(t, "purge", ActionPurge.String())
	assert.Equal(t, "unknown", ActionKind(99).String())
}
