// Package config loads the runtime configuration of the techcanvas viewer.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/techcanvas"
)

// Window configures the desktop window.
type Window struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

// Canvas holds the canvas feature flags and data sources.
type Canvas struct {
	// Data is a dataset file or directory. Empty means the bundled sample.
	Data           string `yaml:"data"`
	Watch          bool   `yaml:"watch"`
	Zoom           bool   `yaml:"zoom"`
	ParallaxLayers int    `yaml:"parallaxLayers"`
	Fit            bool   `yaml:"fit"`
	Debug          bool   `yaml:"debug"`
	ScreenshotDir  string `yaml:"screenshotDir"`
	// Script is a test script played back after startup.
	Script string `yaml:"script"`
}

// Config is the full runtime configuration.
type Config struct {
	Window Window
	Canvas Canvas
	// Params is nil unless the file sets at least one parameter. Use
	// ResolvedParams to get the effective values.
	Params *techcanvas.Params
}

type fileConfig struct {
	Window Window    `yaml:"window"`
	Canvas Canvas    `yaml:"canvas"`
	Params yaml.Node `yaml:"params"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: Window{Title: "Tech Canvas", Width: 1280, Height: 800, Resizable: true},
		Canvas: Canvas{Zoom: true, ParallaxLayers: 3, ScreenshotDir: "screenshots"},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error and yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults. Unset fields keep their
// default values; unset parameters default to the layout mode's constants.
func Parse(data []byte) (Config, error) {
	def := Default()
	raw := fileConfig{Window: def.Window, Canvas: def.Canvas}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg := Config{Window: raw.Window, Canvas: raw.Canvas}
	if raw.Params.Kind != 0 {
		p := baseParams(cfg.Canvas.Fit)
		if err := raw.Params.Decode(&p); err != nil {
			return Config{}, fmt.Errorf("config: unmarshal params: %w", err)
		}
		cfg.Params = &p
	}
	return cfg, nil
}

func baseParams(fit bool) techcanvas.Params {
	if fit {
		return techcanvas.FitParams()
	}
	return techcanvas.DefaultParams()
}

// ResolvedParams returns the configured parameters, or the defaults for
// the configured layout mode.
func (c Config) ResolvedParams() techcanvas.Params {
	if c.Params != nil {
		return *c.Params
	}
	return baseParams(c.Canvas.Fit)
}

// Options converts the configuration into canvas options. Logger and Bus
// are left for the caller.
func (c Config) Options() techcanvas.Options {
	return techcanvas.Options{
		Params:         c.ResolvedParams(),
		Zoom:           c.Canvas.Zoom,
		ParallaxLayers: c.Canvas.ParallaxLayers,
		Fit:            c.Canvas.Fit,
		Debug:          c.Canvas.Debug,
		ScreenshotDir:  c.Canvas.ScreenshotDir,
	}
}

// Validate reports every invalid value.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Canvas.ParallaxLayers < 0 || c.Canvas.ParallaxLayers > 4 {
		errs = append(errs, fmt.Errorf("canvas: parallaxLayers %d out of range [0, 4]", c.Canvas.ParallaxLayers))
	}

	p := c.ResolvedParams()
	positive := []struct {
		name string
		v    float64
	}{
		{"pointRadius", p.PointRadius},
		{"stageStep", p.StageStep},
		{"depthStep", p.DepthStep},
		{"minScale", p.MinScale},
	}
	for _, f := range positive {
		if f.v <= 0 {
			errs = append(errs, fmt.Errorf("params: %s %v must be positive", f.name, f.v))
		}
	}
	if p.EaseFactor <= 0 || p.EaseFactor > 1 {
		errs = append(errs, fmt.Errorf("params: easeFactor %v out of range (0, 1]", p.EaseFactor))
	}
	if p.MaxScale < p.MinScale {
		errs = append(errs, fmt.Errorf("params: maxScale %v below minScale %v", p.MaxScale, p.MinScale))
	}
	if p.ZoomStep <= 1 {
		errs = append(errs, fmt.Errorf("params: zoomStep %v must be greater than 1", p.ZoomStep))
	}
	return errors.Join(errs...)
}
