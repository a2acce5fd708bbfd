package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LanguageEnv overrides the configured display language.
const LanguageEnv = "CARDPACK_LANG"

// Config represents the application configuration
type Config struct {
	DefaultVariant string `toml:"default_variant"`
	Language       string `toml:"language"`
	LocaleDir      string `toml:"locale_dir,omitempty"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetLocaleLibraryPath returns the path to the user's locale library
func GetLocaleLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "cardpack", "locales")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardpack", "config.toml")
}

func defaultConfig() *Config {
	return &Config{
		DefaultVariant: "french",
		Language:       "en-US",
	}
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := defaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := defaultConfig()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// Update loads the config, applies fn and writes it back
func Update(fn func(*Config)) (*Config, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	fn(config)

	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SetDefaultVariant sets the default deck variant in the config
func SetDefaultVariant(name string) error {
	_, err := Update(func(c *Config) { c.DefaultVariant = name })
	return err
}

// SetLanguage sets the display language in the config
func SetLanguage(tag string) error {
	_, err := Update(func(c *Config) { c.Language = tag })
	return err
}

// GetLanguage returns the display language, honoring CARDPACK_LANG
func (c *Config) GetLanguage() string {
	if lang := os.Getenv(LanguageEnv); lang != "" {
		return lang
	}
	return c.Language
}

// GetLocaleDir returns the locale directory to load, or "" for the
// built-in locales. An explicit locale_dir wins over the locale library.
func (c *Config) GetLocaleDir() string {
	if c.LocaleDir != "" {
		return c.LocaleDir
	}

	libraryPath := GetLocaleLibraryPath()
	if entries, err := os.ReadDir(libraryPath); err == nil && len(entries) > 0 {
		return libraryPath
	}

	return ""
}
