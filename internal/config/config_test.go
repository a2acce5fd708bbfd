package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setHome(t *testing.T) (configHome, dataHome string) {
	t.Helper()
	configHome, dataHome = t.TempDir(), t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv(LanguageEnv, "")
	return configHome, dataHome
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	configHome, _ := setHome(t)

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "french", config.DefaultVariant)
	assert.Equal(t, "en-US", config.Language)

	assert.FileExists(t, filepath.Join(configHome, "cardpack", "config.toml"))
}

func TestSetters(t *testing.T) {
	setHome(t)

	require.NoError(t, SetDefaultVariant("tarot"))
	require.NoError(t, SetLanguage("de"))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "tarot", config.DefaultVariant)
	assert.Equal(t, "de", config.Language)
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	configHome, _ := setHome(t)
	path := filepath.Join(configHome, "cardpack", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("language = \"de\"\n"), 0644))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "french", config.DefaultVariant)
	assert.Equal(t, "de", config.Language)
}

func TestLoadConfigBadFile(t *testing.T) {
	configHome, _ := setHome(t)
	path := filepath.Join(configHome, "cardpack", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("language = \n"), 0644))

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "error decoding config file")
}

func TestGetLanguageEnvOverride(t *testing.T) {
	setHome(t)
	config := &Config{Language: "en-US"}

	assert.Equal(t, "en-US", config.GetLanguage())

	t.Setenv(LanguageEnv, "de-AT")
	assert.Equal(t, "de-AT", config.GetLanguage())
}

func TestGetLocaleDir(t *testing.T) {
	_, dataHome := setHome(t)
	config := &Config{}

	assert.Empty(t, config.GetLocaleDir())

	library := filepath.Join(dataHome, "cardpack", "locales")
	require.NoError(t, os.MkdirAll(library, 0755))
	assert.Empty(t, config.GetLocaleDir(), "empty library is ignored")

	require.NoError(t, os.WriteFile(filepath.Join(library, "en-US.toml"), nil, 0644))
	assert.Equal(t, library, config.GetLocaleDir())

	config.LocaleDir = "/opt/locales"
	assert.Equal(t, "/opt/locales", config.GetLocaleDir())
}
