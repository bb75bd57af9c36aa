package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"snapblocks/internal/stack"
)

// ZoneConfig sizes the connector zones of every block, in cells.
type ZoneConfig struct {
	MarginX float64 `toml:"margin_x"`
	MarginY float64 `toml:"margin_y"`
	Reach   float64 `toml:"reach"`
}

// TemplateConfig is one palette entry.
type TemplateConfig struct {
	Kind  string `toml:"kind"`
	Label string `toml:"label"`
}

type Config struct {
	SaveDirectory string           `toml:"save_directory"`
	Spacing       float64          `toml:"spacing"`
	Zone          ZoneConfig       `toml:"zone"`
	Palette       []TemplateConfig `toml:"palette"`
	Seed          []string         `toml:"seed"`

	// Undecoded lists keys in the file that matched no setting.
	Undecoded []string `toml:"-"`
}

func defaultConfig() *Config {
	return &Config{
		Spacing: -1,
		Zone:    ZoneConfig{MarginX: 2, MarginY: 0, Reach: 8},
		Palette: []TemplateConfig{
			{Kind: "motion", Label: "move 10 steps"},
			{Kind: "motion", Label: "turn 15 degrees"},
			{Kind: "looks", Label: "say hello"},
			{Kind: "control", Label: "wait 1 second"},
			{Kind: "control", Label: "repeat 10"},
		},
		Seed: []string{"a", "b", "c"},
	}
}

// defaultConfigPath returns ~/.config/snapblocks/config.toml, or "" when
// the home directory is unknown.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "snapblocks", "config.toml")
}

// loadConfig reads path over the defaults. An empty path means the default
// location; a missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		path = defaultConfigPath()
		if path == "" {
			return config, nil
		}
	}

	// Lists in the file replace the defaults instead of merging into them.
	config.Palette, config.Seed = nil, nil
	md, err := toml.DecodeFile(path, config)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	defaults := defaultConfig()
	if !md.IsDefined("palette") {
		config.Palette = defaults.Palette
	}
	if !md.IsDefined("seed") {
		config.Seed = defaults.Seed
	}
	for _, key := range md.Undecoded() {
		config.Undecoded = append(config.Undecoded, key.String())
	}

	if config.Zone.MarginX < 0 || config.Zone.MarginY < 0 || config.Zone.Reach < 0 {
		return nil, fmt.Errorf("config %s: zone sizes must not be negative", path)
	}
	for i, t := range config.Palette {
		if strings.TrimSpace(t.Label) == "" {
			return nil, fmt.Errorf("config %s: palette entry %d has no label", path, i+1)
		}
	}

	if config.SaveDirectory != "" {
		config.SaveDirectory, err = expandPath(config.SaveDirectory)
		if err != nil {
			return nil, fmt.Errorf("config %s: save_directory: %w", path, err)
		}
	}
	return config, nil
}

func expandPath(value string) (string, error) {
	if strings.HasPrefix(value, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	return filepath.Abs(value)
}

// BlockZone returns the configured connector zone.
func (c *Config) BlockZone() stack.Zone {
	return stack.Zone{MarginX: c.Zone.MarginX, MarginY: c.Zone.MarginY, Reach: c.Zone.Reach}
}

// GetSavePath places filename in the save directory, creating it on demand.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
