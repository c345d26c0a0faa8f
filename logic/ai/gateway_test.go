package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDocumentPrompt(t *testing.T) {
	out, err := renderDocumentPrompt(promptAnalyze, "This Agreement is made between A and B.")
	require.NoError(t, err)
	assert.Contains(t, out, "This Agreement is made between A and B.")
	assert.Contains(t, out, "Output JSON only. No markdown.")
	assert.NotContains(t, out, "{{.Document}}")
}

func TestRenderGeneratePromptCuratedTemplate(t *testing.T) {
	out, err := renderGeneratePrompt("nda", map[string]string{
		"parties":  "Acme Corp and Jane Doe",
		"duration": "3 years",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Acme Corp and Jane Doe")
	assert.Contains(t, out, "3 years")
	// Unset parameters keep their fallbacks.
	assert.Contains(t, out, "Business discussions")
	assert.Contains(t, out, "State of incorporation")
}

func TestRenderGeneratePromptEmptyParamUsesFallback(t *testing.T) {
	out, err := renderGeneratePrompt("employment", map[string]string{"position": ""})
	require.NoError(t, err)
	assert.Contains(t, out, "- Position: Employee")
}

func TestRenderGeneratePromptUnknownType(t *testing.T) {
	out, err := renderGeneratePrompt("partnership", map[string]string{"partners": "A, B"})
	require.NoError(t, err)
	assert.Contains(t, out, "Generate a legal document of type: partnership")
	assert.Contains(t, out, `"partners":"A, B"`)
}
