package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ConfigDirName, ConfigFileName), ConfigPath())
	assert.Equal(t, filepath.Join(home, ConfigDirName), ConfigDir())
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvBaseURL, "")

	cfg := LoadConfig()

	assert.Empty(t, cfg.APIKey)
	assert.False(t, cfg.IsConfigured())
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
	assert.Equal(t, DefaultMaxInputChars, cfg.MaxInputChars)
	assert.Equal(t, "en", cfg.Language)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SaveFileConfig(&FileConfig{
		APIKey:  "sk-from-file",
		BaseURL: "https://file.example/v1",
	}))

	t.Setenv(EnvAPIKey, "sk-from-env")
	t.Setenv(EnvBaseURL, "https://env.example/v1")

	cfg := LoadConfig()

	assert.Equal(t, "sk-from-env", cfg.APIKey)
	assert.Equal(t, "https://env.example/v1", cfg.BaseURL)
}

func TestLoadConfigFallsBackToFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvBaseURL, "")

	require.NoError(t, SaveFileConfig(&FileConfig{
		APIKey:        "sk-file-only",
		Model:         "gpt-4.1",
		MaxTokens:     512,
		MaxInputChars: 9000,
		Language:      "pt-br",
	}))

	cfg := LoadConfig()

	assert.Equal(t, "sk-file-only", cfg.APIKey)
	assert.True(t, cfg.IsConfigured())
	assert.Equal(t, "gpt-4.1", cfg.Model)
	assert.Equal(t, 512, cfg.MaxTokens)
	assert.Equal(t, 9000, cfg.MaxInputChars)
	assert.Equal(t, "pt-br", cfg.Language)
}

func TestSaveFileConfigRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	in := &FileConfig{APIKey: "sk-secret", Model: "gpt-4.1-mini"}
	require.NoError(t, SaveFileConfig(in))

	out, err := LoadFileConfig()
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.APIKey, out.APIKey)
	assert.Equal(t, in.Model, out.Model)

	// The file holds the key, so it must not be world readable.
	info, err := os.Stat(ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadFileConfigMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	fc, err := LoadFileConfig()
	require.NoError(t, err)
	assert.Nil(t, fc)
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "***...wxyz", MaskAPIKey("sk-abcdefghijklmnopqrstuvwxyz"))
	assert.Equal(t, "***", MaskAPIKey("sk"))
	assert.Equal(t, "***", MaskAPIKey(""))
}
