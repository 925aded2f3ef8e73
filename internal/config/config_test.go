package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"jd": "jd.txt", "timeout_seconds": 60, "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "jd.txt", cfg.JD)
	assert.Equal(t, 60, cfg.TimeoutSeconds)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)

	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{ nope`)

	_, err := LoadConfig(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{TimeoutSeconds: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingReferencedFile(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "nope.pdf")}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_EmptyConfigOK(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestResolveAPIKey_Priority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	cfg := &Config{APIKey: "config-key"}

	key, err := cfg.ResolveAPIKey("flag-key")
	require.NoError(t, err)
	assert.Equal(t, "flag-key", key)

	key, err = cfg.ResolveAPIKey("")
	require.NoError(t, err)
	assert.Equal(t, "config-key", key)

	cfg.APIKey = ""
	key, err = cfg.ResolveAPIKey("")
	require.NoError(t, err)
	assert.Equal(t, "env-key", key)
}

func TestResolveAPIKey_Missing(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := (&Config{}).ResolveAPIKey("")
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "GEMINI_API_KEY")
}
