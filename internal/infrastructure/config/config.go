// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for gamescope configuration.
	DefaultConfigDir = ".gamescope"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Data   DataConfig   `yaml:"data,omitempty"`
	RAWG   RAWGConfig   `yaml:"rawg,omitempty"`
	Places PlacesConfig `yaml:"places,omitempty"`
}

// DataConfig holds the paths of the two catalog sources.
type DataConfig struct {
	Games     string `yaml:"games,omitempty"`
	Locations string `yaml:"locations,omitempty"`
}

// RAWGConfig holds configuration for the RAWG game metadata API.
type RAWGConfig struct {
	BaseURL  string `yaml:"base_url,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
	PageSize int    `yaml:"page_size,omitempty"`
}

// PlacesConfig holds configuration for the places geocoding API.
type PlacesConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
	APIKey  string `yaml:"api_key,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Games:     filepath.Join("data", "unified_data.csv"),
			Locations: filepath.Join("data", "studios_geocode.csv"),
		},
		RAWG: RAWGConfig{
			BaseURL:  "https://api.rawg.io/api",
			PageSize: 1,
		},
		Places: PlacesConfig{
			BaseURL: "https://maps.googleapis.com/maps/api/place",
		},
	}
}

// Load loads configuration from the .gamescope directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'gamescope init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("RAWG_API_KEY"); key != "" && c.RAWG.APIKey == "" {
		c.RAWG.APIKey = key
	}
	if key := os.Getenv("GOOGLE_PLACES_API_KEY"); key != "" && c.Places.APIKey == "" {
		c.Places.APIKey = key
	}
}

// ConfigDir returns the path to the .gamescope config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
