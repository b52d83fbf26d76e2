package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	TokensFile   string `toml:"tokens_file"`
	CardsFile    string `toml:"cards_file"`
	OutputDir    string `toml:"output_dir"`
	OutputFormat string `toml:"output_format"`
}

// Defaults used when no config file overrides them.
const (
	DefaultTokensFile   = "design_tokens.toml"
	DefaultCardsFile    = "cards.yaml"
	DefaultOutputDir    = "output/deck"
	DefaultOutputFormat = "png"
)

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
	return filepath.Join(GetXDGConfigHome(), "dealdeck", "config.toml")
}

// LoadConfig loads the config file, falling back to defaults when it does
// not exist.
func LoadConfig() (*Config, error) {
	config := &Config{
		TokensFile:   DefaultTokensFile,
		CardsFile:    DefaultCardsFile,
		OutputDir:    DefaultOutputDir,
		OutputFormat: DefaultOutputFormat,
	}

	configPath := GetConfigFilePath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	return config, nil
}

// WriteConfig persists the config to the XDG config path.
func WriteConfig(config *Config) error {
	configPath := GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}
	return nil
}
