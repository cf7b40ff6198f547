// Package config loads the realmserver YAML configuration. Defaults are
// applied first, then the file overrides whatever it names; a missing
// file just means the defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the realmserver configuration.
type Config struct {
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`

	RateLimit struct {
		Requests      int `yaml:"requests"`
		WindowMinutes int `yaml:"window_minutes"`
	} `yaml:"rate_limit"`

	// Generation caps keep a single request from asking for an
	// unboundedly large map; generation is expected to finish in bounded
	// time for tens to low hundreds of territories.
	Generation struct {
		MaxTerritories int     `yaml:"max_territories"`
		MaxWidth       float64 `yaml:"max_width"`
		MaxHeight      float64 `yaml:"max_height"`
	} `yaml:"generation"`

	Log struct {
		File       string `yaml:"file"` // empty = stdout
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var c Config
	c.Port = 8080
	c.RateLimit.Requests = 120
	c.RateLimit.WindowMinutes = 1
	c.Generation.MaxTerritories = 500
	c.Generation.MaxWidth = 10000
	c.Generation.MaxHeight = 10000
	c.Log.MaxSizeMB = 20
	c.Log.MaxBackups = 5
	return c
}

// Load reads the YAML file at path over the defaults. A missing file is
// not an error: the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
