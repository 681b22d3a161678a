package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("resume.json", "classify-chunks")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Chunks}}")
	assert.Contains(t, prompt, "Be inclusive")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("resume.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestFormat(t *testing.T) {
	result := Format("Extract {{.Category}} from {{.Context}}", map[string]string{
		"Category": "JobDetails",
		"Context":  "Acme Corp",
	})
	assert.Equal(t, "Extract JobDetails from Acme Corp", result)
}

func TestFormat_ValuesAreNotReexpanded(t *testing.T) {
	result := Format("{{.A}} {{.B}}", map[string]string{
		"A": "{{.B}}",
		"B": "b",
	})
	assert.Equal(t, "{{.B}} b", result)
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	assert.Equal(t, template, Format(template, map[string]string{}))
}

func TestRender(t *testing.T) {
	ClearCache()

	out, err := Render("resume.json", "extract-category", map[string]string{
		"Category":           "PersonalInfo",
		"Description":        "Contact details.",
		"Context":            "Asha Rao asha@example.com",
		"FormatInstructions": "Return ONLY valid JSON",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Extract the PersonalInfo section")
	assert.Contains(t, out, "<context>\nAsha Rao asha@example.com\n</context>")
	assert.NotContains(t, out, "{{.")
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List("resume.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"classify-chunks", "extract-category"}, keys)
}

func TestCaching(t *testing.T) {
	ClearCache()

	prompt1, err := Get("resume.json", "extract-category")
	require.NoError(t, err)
	prompt2, err := Get("resume.json", "extract-category")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}
