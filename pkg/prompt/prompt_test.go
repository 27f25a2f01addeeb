package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildChunkPrompt(t *testing.T) {
	p := BuildChunkPrompt("[alice @ 2026-03-10T09:00:00Z]: hello\n")

	assert.Contains(t, p, "[alice @ 2026-03-10T09:00:00Z]: hello")
	assert.Contains(t, p, `"summary"`)
	assert.Contains(t, p, `"decisions"`)
	assert.Contains(t, p, `"action_items"`)
	assert.Contains(t, p, `"topics"`)
	assert.Contains(t, p, "JSON only")
	assert.False(t, strings.HasSuffix(p, "\n"))
}

func TestBuildChunkPrompt_Deterministic(t *testing.T) {
	a := BuildChunkPrompt("same input")
	b := BuildChunkPrompt("same input")
	assert.Equal(t, a, b)
}

func TestBuildAnnotationPrompt(t *testing.T) {
	p := BuildAnnotationPrompt("  Send the report to finance  ")

	assert.Contains(t, p, "Send the report to finance")
	assert.NotContains(t, p, "  Send")
	assert.Contains(t, p, `"owner"`)
	assert.Contains(t, p, `"due_date_iso"`)
	assert.NotContains(t, p, `"decisions"`, "annotation prompt asks for owner and due date only")
}
