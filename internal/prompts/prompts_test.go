package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_TailorPrompt(t *testing.T) {
	prompt, err := Get("tailor-resume")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.JobDescription}}")
	assert.Contains(t, prompt, "{{.ResumeJSON}}")
	assert.Contains(t, prompt, "{{.Schema}}")
}

func TestGet_CorrectiveRetry(t *testing.T) {
	prompt, err := Get("corrective-retry")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.ValidationErrors}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("does-not-exist")
	})
}

func TestFormat(t *testing.T) {
	out := Format("Job: {{.JobDescription}} / Resume: {{.ResumeJSON}}", map[string]string{
		"JobDescription": "Go engineer",
		"ResumeJSON":     `{"skills":[]}`,
	})
	assert.Equal(t, `Job: Go engineer / Resume: {"skills":[]}`, out)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	out := Format("{{.Known}} {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x {{.Unknown}}", out)
}
