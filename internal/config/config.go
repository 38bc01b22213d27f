// Package config handles tool configuration loading and management.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds all render tool settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds interactive viewer settings.
type WindowConfig struct {
	Width   int  `yaml:"width"`
	Height  int  `yaml:"height"`
	ShowFPS bool `yaml:"show_fps"`
}

// RenderConfig holds offline render settings.
type RenderConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Supersample int     `yaml:"supersample"`
	Zoom        float64 `yaml:"zoom"`
	Workers     int     `yaml:"workers"`
}

// OutputConfig holds image output settings.
type OutputConfig struct {
	Dir     string `yaml:"dir"`
	Format  string `yaml:"format"`   // webp, png or tga
	DelayMS int    `yaml:"delay_ms"` // animation frame delay
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Config with sensible default values. Workers is left
// zero and resolved against the machine later.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:   960,
			Height:  720,
			ShowFPS: true,
		},
		Render: RenderConfig{
			Width:       640,
			Height:      480,
			Supersample: 2,
			Zoom:        1000,
		},
		Output: OutputConfig{
			Dir:     "renders",
			Format:  "webp",
			DelayMS: 40,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file over the defaults. Fields not set in the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width       int
	Height      int
	Supersample int
	OutputDir   string
	Format      string
	Workers     int
	LogLevel    string
}

// Resolve applies CLI flag overrides and fills remaining zero fields.
// Flags win over the file, the file over defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Render.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Render.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Render.Supersample = flags.Supersample
	}
	if flags.OutputDir != "" {
		c.Output.Dir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Output.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Render.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.Logging.Level = flags.LogLevel
	}

	if c.Render.Width <= 0 {
		c.Render.Width = 640
	}
	if c.Render.Height <= 0 {
		c.Render.Height = 480
	}
	if c.Render.Supersample < 1 {
		c.Render.Supersample = 1
	}
	if c.Render.Zoom <= 0 {
		c.Render.Zoom = 1000
	}
	if c.Render.Workers <= 0 {
		c.Render.Workers = runtime.NumCPU()
	}
	if c.Output.Format == "" {
		c.Output.Format = "webp"
	}
	if c.Output.DelayMS <= 0 {
		c.Output.DelayMS = 40
	}
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
