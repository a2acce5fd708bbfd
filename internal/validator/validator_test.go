package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBuiltInLocales(t *testing.T) {
	results, err := NewValidator(filepath.Join("..", "locale", "locales")).Validate()

	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidateMissingDirectory(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "missing")).Validate()

	assert.ErrorContains(t, err, "locale directory not found")
}

func TestValidateMissingFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.toml"), []byte("ace-long = \"Ass\"\n"), 0644))

	results, err := NewValidator(dir).Validate()

	require.NoError(t, err)
	require.Len(t, results.Errors, 1)
	assert.Contains(t, results.Errors[0], "fallback language")
	assert.Contains(t, results.Warnings[0], "core.toml not found")
}

func TestValidateIncompleteLocales(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join("..", "locale", "locales")
	for _, name := range []string{"en-US.toml", "core.toml"} {
		raw, err := os.ReadFile(filepath.Join(src, name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), raw, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.toml"), []byte("ace-long = \"As\"\n"), 0644))

	results, err := NewValidator(dir).Validate()

	require.NoError(t, err)
	assert.Empty(t, results.Errors, "english covers every key")
	assert.NotEmpty(t, results.Warnings)
	assert.Contains(t, results.Warnings, "missing king-long in fr, falls back to en-US")
	assert.NotContains(t, results.Warnings, "missing ace-long in fr, falls back to en-US")
}

func TestValidateMissingFallbackKeys(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en-US.toml"), []byte("ace-long = \"Ace\"\n"), 0644))

	results, err := NewValidator(dir).Validate()

	require.NoError(t, err)
	assert.Contains(t, results.Errors, "missing king-long in fallback language en-US")
	assert.Contains(t, results.Errors, "missing symbol for suit spades (spades-symbol)")
	assert.Contains(t, results.Warnings, "no default weight for rank ace (ace-weight)")
}
