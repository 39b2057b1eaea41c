package cmd

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazycommit/cli/internal/client"
	"github.com/lazycommit/cli/internal/errs"
	"github.com/lazycommit/cli/internal/message"
)

// Flag state on rootCmd is package-global, so the precedence checks run as
// ordered sections of one test: config alone first, explicit flags on top,
// then the validation failures.
func TestResolveOptions(t *testing.T) {
	cfg := &client.Config{
		Model:         "file-model",
		MaxTokens:     512,
		MaxInputChars: 9000,
		Language:      "pt-br",
	}

	// Nothing set on the command line: the config decides.
	opts, err := resolveOptions(rootCmd, cfg)
	require.NoError(t, err)
	assert.Equal(t, "file-model", opts.Model)
	assert.Equal(t, 512, opts.MaxTokens)
	assert.Equal(t, 9000, opts.MaxInputChars)
	assert.Equal(t, message.LanguagePortugueseBR, opts.Language)
	assert.False(t, opts.DryRun)
	assert.False(t, opts.NoPush)

	// Flags set on the command line shadow the config.
	require.NoError(t, rootCmd.Flags().Set("model", "gpt-4o"))
	require.NoError(t, rootCmd.Flags().Set("max-tokens", "64"))
	require.NoError(t, rootCmd.Flags().Set("lang", "en"))
	require.NoError(t, rootCmd.Flags().Set("dry-run", "true"))

	opts, err = resolveOptions(rootCmd, cfg)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", opts.Model)
	assert.Equal(t, 64, opts.MaxTokens)
	assert.Equal(t, 9000, opts.MaxInputChars, "untouched flag keeps the config value")
	assert.Equal(t, message.LanguageEnglish, opts.Language)
	assert.True(t, opts.DryRun)

	// Broken values are configuration errors, wherever they came from.
	require.NoError(t, rootCmd.Flags().Set("max-tokens", "-5"))
	_, err = resolveOptions(rootCmd, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrConfiguration))

	require.NoError(t, rootCmd.Flags().Set("max-tokens", "64"))
	require.NoError(t, rootCmd.Flags().Set("max-input-chars", "-1"))
	_, err = resolveOptions(rootCmd, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrConfiguration))

	// A budget too small to carry the truncation marker is rejected too.
	require.NoError(t, rootCmd.Flags().Set("max-input-chars", "10"))
	_, err = resolveOptions(rootCmd, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrConfiguration))
	assert.Contains(t, err.Error(), "at least")

	require.NoError(t, rootCmd.Flags().Set("max-input-chars", "0"))
	require.NoError(t, rootCmd.Flags().Set("lang", "klingon"))
	_, err = resolveOptions(rootCmd, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrConfiguration))
	assert.Contains(t, err.Error(), "klingon")
}
