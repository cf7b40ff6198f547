package mapgen

import (
	"fmt"
	"math"
)

const defaultRelaxations = 3

// Config describes one generation request. Seed is always explicit: the
// library never falls back to wall-clock time, so equal configs produce
// equal maps. Callers that want a fresh map each run seed from the clock
// themselves at their own boundary.
type Config struct {
	Width          float64
	Height         float64
	TerritoryCount int
	Seed           int64

	// Relaxations is the number of Lloyd iterations applied to the
	// initial point set. Zero means the default of 3.
	Relaxations int

	// Margin insets the initial points from the rectangle edges. Zero
	// means the default of 5% of the shorter side.
	Margin float64
}

// ConfigError reports the config field that failed validation.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("mapgen: invalid config: %s %s", e.Field, e.Reason)
}

// Validate rejects malformed configs before any generation work starts.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return &ConfigError{Field: "width", Reason: "must be positive"}
	}
	if c.Height <= 0 {
		return &ConfigError{Field: "height", Reason: "must be positive"}
	}
	if c.TerritoryCount <= 0 {
		return &ConfigError{Field: "territoryCount", Reason: "must be a positive integer"}
	}
	if c.Relaxations < 0 {
		return &ConfigError{Field: "relaxations", Reason: "must not be negative"}
	}
	if c.Margin < 0 {
		return &ConfigError{Field: "margin", Reason: "must not be negative"}
	}
	if 2*c.Margin >= math.Min(c.Width, c.Height) {
		return &ConfigError{Field: "margin", Reason: "leaves no interior to sample"}
	}
	return nil
}

func (c Config) relaxations() int {
	if c.Relaxations > 0 {
		return c.Relaxations
	}
	return defaultRelaxations
}

func (c Config) margin() float64 {
	if c.Margin > 0 {
		return c.Margin
	}
	return 0.05 * math.Min(c.Width, c.Height)
}
