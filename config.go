package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the user-level configuration file (~/.config/streak/config.yml)
type Config struct {
	ZoneOffsetMinutes *int     `yaml:"zone_offset_minutes,omitempty"`
	Data              string   `yaml:"data,omitempty"`
	Colors            []string `yaml:"colors,omitempty"`
}

// ResolvedConfig holds the fully resolved settings after applying flag and
// config-file overrides on top of defaults.
type ResolvedConfig struct {
	Zone    Zone     // display zone for day bucketing
	Data    string   // contributions file path
	Palette []string // five hex colors, empty through most intense
}

// ConfigPath returns the path to the user's config file.
var ConfigPath = defaultConfigPath

func defaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determining config directory: %w", err)
	}
	return filepath.Join(configDir, "streak", "config.yml"), nil
}

// LoadConfig reads the config file. Returns zero-value config if missing.
func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// SaveConfig writes the config file, creating directories as needed.
func SaveConfig(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// defaultPalette matches GitHub's light-mode contribution colors.
var defaultPalette = []string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"}

// ResolveConfig applies precedence: flag > config file > default.
// zoneFlag and dataFlag are the CLI values; nil/empty means unset.
func ResolveConfig(cfg *Config, zoneFlag *int, dataFlag string) (*ResolvedConfig, error) {
	resolved := &ResolvedConfig{Palette: defaultPalette}

	switch {
	case zoneFlag != nil:
		resolved.Zone = Zone(*zoneFlag)
	case cfg.ZoneOffsetMinutes != nil:
		resolved.Zone = Zone(*cfg.ZoneOffsetMinutes)
	default:
		resolved.Zone = UTC
	}

	switch {
	case dataFlag != "":
		resolved.Data = dataFlag
	case cfg.Data != "":
		resolved.Data = cfg.Data
	default:
		path, err := DefaultContributionsPath()
		if err != nil {
			return nil, err
		}
		resolved.Data = path
	}

	if len(cfg.Colors) > 0 {
		if len(cfg.Colors) != 5 {
			return nil, fmt.Errorf("colors must list exactly 5 values, got %d", len(cfg.Colors))
		}
		resolved.Palette = cfg.Colors
	}

	return resolved, nil
}
