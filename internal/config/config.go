package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardforge/internal/editor"
)

// Defaults
const (
	DefaultEditor   = editor.DefaultCommand
	DefaultCardsDir = "cards"
)

// Environment variables that override the config file
const (
	EnvEditor    = "CARDFORGE_EDITOR"
	EnvCardsDir  = "CARDFORGE_CARDS_DIR"
	EnvEditorStd = "EDITOR"
)

// Config represents the application configuration
type Config struct {
	Editor    string `toml:"editor"`
	CardsDir  string `toml:"cards_dir"`
	Checklist string `toml:"checklist,omitempty"`
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

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardforge", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &config, nil
}

func createDefaultConfig() (*Config, error) {
	config := &Config{
		Editor:   DefaultEditor,
		CardsDir: DefaultCardsDir,
	}

	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	// Write the config
	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// update loads the config, applies fn and writes it back
func update(fn func(*Config)) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	fn(config)
	return writeConfig(config)
}

// SetEditor stores the editor command in the config file
func SetEditor(command string) error {
	return update(func(c *Config) { c.Editor = command })
}

// SetCardsDir stores the cards directory in the config file
func SetCardsDir(dir string) error {
	return update(func(c *Config) { c.CardsDir = dir })
}

// SetChecklist stores the keyword checklist path in the config file
func SetChecklist(path string) error {
	return update(func(c *Config) { c.Checklist = path })
}

// ResolveEditor picks the editor command: flag, CARDFORGE_EDITOR, EDITOR,
// config file, then the default.
func (c *Config) ResolveEditor(flag string) string {
	return firstNonEmpty(flag, os.Getenv(EnvEditor), os.Getenv(EnvEditorStd), c.Editor, DefaultEditor)
}

// ResolveCardsDir picks the cards directory: flag, CARDFORGE_CARDS_DIR,
// config file, then the default.
func (c *Config) ResolveCardsDir(flag string) string {
	return firstNonEmpty(flag, os.Getenv(EnvCardsDir), c.CardsDir, DefaultCardsDir)
}

// ResolveChecklist returns the checklist path, empty for the built-in one
func (c *Config) ResolveChecklist(flag string) string {
	return firstNonEmpty(flag, c.Checklist)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
