// Package config loads the sky map configuration from YAML, with defaults
// that produce a usable map without any file at all.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/litescript/ls-skymap/internal/astro"
)

// Config holds everything tunable about a sky map run.
type Config struct {
	Observer       ObserverConfig      `yaml:"observer"`
	Stars          StarConfig          `yaml:"stars"`
	Constellations ConstellationConfig `yaml:"constellations"`

	// Timezone names the zone used for displayed times. Internally all
	// computation stays in UTC.
	Timezone string `yaml:"timezone"`

	// SampleStepMinutes is the path sampling cadence for sun and moon arcs.
	SampleStepMinutes int `yaml:"sample_step_minutes"`

	// RefreshIntervalMinutes is how often the running scene is recomputed.
	RefreshIntervalMinutes int `yaml:"refresh_interval_minutes"`

	// VSOP87Dir points at the planetary theory data files. Empty falls
	// back to the VSOP87 environment variable; planets are skipped with a
	// logged reason when neither resolves.
	VSOP87Dir string `yaml:"vsop87_dir"`

	// StarCatalog is a JSON catalog path; empty uses the built-in catalog.
	StarCatalog string `yaml:"star_catalog"`

	// ConstellationLines is the GeoJSON line dataset path; empty disables
	// constellation figures.
	ConstellationLines string `yaml:"constellation_lines"`

	LogLevel string `yaml:"log_level"`
}

// ObserverConfig is the observing site.
type ObserverConfig struct {
	Name       string  `yaml:"name"`
	Latitude   float64 `yaml:"latitude"`
	Longitude  float64 `yaml:"longitude"`
	Elevation  float64 `yaml:"elevation_m"`
	HorizonDeg float64 `yaml:"horizon_offset_deg"`
}

// StarConfig controls star selection.
type StarConfig struct {
	NakedEyeMagLimit float64 `yaml:"naked_eye_mag_limit"`
	LabelMagLimit    float64 `yaml:"label_mag_limit"`
	MaxStarsToPlot   int     `yaml:"max_stars_to_plot"`
	ShowMagnitude    bool    `yaml:"show_magnitude"`
}

// ConstellationConfig controls constellation figures.
type ConstellationConfig struct {
	MaxToPlot int      `yaml:"max_constellations_to_plot"`
	ShowOnly  []string `yaml:"show_only_constellations"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Observer: ObserverConfig{
			Name:      "Brisbane",
			Latitude:  -27.47,
			Longitude: 153.02,
		},
		Stars: StarConfig{
			NakedEyeMagLimit: 6.5,
			LabelMagLimit:    1.5,
			MaxStarsToPlot:   300,
			ShowMagnitude:    true,
		},
		Timezone:               "Australia/Brisbane",
		SampleStepMinutes:      20,
		RefreshIntervalMinutes: 5,
		LogLevel:               "info",
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the pipeline cannot work with.
func (c Config) Validate() error {
	if c.Observer.Latitude < -90 || c.Observer.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", c.Observer.Latitude)
	}
	if c.Observer.Longitude < -180 || c.Observer.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", c.Observer.Longitude)
	}
	if c.SampleStepMinutes < 0 {
		return fmt.Errorf("sample_step_minutes %d must not be negative", c.SampleStepMinutes)
	}
	if c.RefreshIntervalMinutes < 0 {
		return fmt.Errorf("refresh_interval_minutes %d must not be negative", c.RefreshIntervalMinutes)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	return nil
}

// SiteObserver converts the configured site to a pipeline observer.
func (c Config) SiteObserver() astro.Observer {
	return astro.Observer{
		Name:       c.Observer.Name,
		LatDeg:     c.Observer.Latitude,
		LonDeg:     c.Observer.Longitude,
		ElevM:      c.Observer.Elevation,
		HorizonDeg: c.Observer.HorizonDeg,
	}
}

// SampleStep returns the configured path cadence.
func (c Config) SampleStep() time.Duration {
	return time.Duration(c.SampleStepMinutes) * time.Minute
}

// RefreshInterval returns the configured scene recompute cadence.
func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalMinutes) * time.Minute
}

// Location resolves the display timezone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
