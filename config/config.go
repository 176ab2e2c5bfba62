// Package config loads the optional ultraland.yaml and watches it for
// live edits.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the presentation-side configuration. Gameplay tuning is
// compiled in; only display and audio knobs live here.
type Config struct {
	// Scale is the integer upscaling factor for the 160x144 framebuffer.
	Scale int `yaml:"scale"`
	// Palette selects the shade colors: green, gray or pocket.
	Palette string `yaml:"palette"`
	// ShowFPS draws the frame-rate overlay.
	ShowFPS bool `yaml:"show_fps"`
	Muted   bool `yaml:"muted"`
	// Volume is the effect volume in [0,1].
	Volume float64 `yaml:"volume"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Scale:   4,
		Palette: "green",
		ShowFPS: true,
		Volume:  0.8,
	}
}

// Load reads path, filling unset fields from Default. A missing file is
// not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.sanitize()
	return cfg, nil
}

func (c *Config) sanitize() {
	if c.Scale < 1 {
		c.Scale = 1
	}
	if c.Scale > 10 {
		c.Scale = 10
	}
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.Volume > 1 {
		c.Volume = 1
	}
	if c.Palette == "" {
		c.Palette = "green"
	}
}
