package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"colorbook/internal/fill"
	"colorbook/internal/page"
	"colorbook/internal/palette"
)

// Config holds fill defaults and batch output settings.
type Config struct {
	// Fill settings
	Tolerance *int   `json:"tolerance"` // nil means default; 0 is a valid tolerance
	Color     string `json:"color"`     // #RRGGBB

	// Output
	OutputDir    string `json:"output_dir"`
	OutputFormat string `json:"output_format"` // webp or png

	Workers int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Tolerance < 0 and empty strings mean "not given".
type Flags struct {
	Tolerance int
	Color     string
	OutputDir string
	Format    string
	Workers   int
}

// Resolve applies CLI overrides and fills in defaults for empty fields.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Tolerance >= 0 {
		t := flags.Tolerance
		c.Tolerance = &t
	}
	if flags.Color != "" {
		c.Color = flags.Color
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.OutputFormat = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	if c.Tolerance == nil {
		t := fill.DefaultTolerance
		c.Tolerance = &t
	}
	if c.Color == "" {
		c.Color = palette.DefaultColor.Hex()
	}
	if c.OutputDir == "" {
		c.OutputDir = "out"
	}
	if c.OutputFormat == "" {
		c.OutputFormat = string(page.WebP)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate checks a resolved config.
func (c *Config) Validate() error {
	if c.Tolerance != nil && *c.Tolerance < 0 {
		return fmt.Errorf("config: tolerance %d is negative", *c.Tolerance)
	}
	if _, err := palette.ParseHex(c.Color); err != nil {
		return fmt.Errorf("config: color: %w", err)
	}
	if _, err := page.FormatFor("x." + c.OutputFormat); err != nil {
		return fmt.Errorf("config: output_format: %w", err)
	}
	return nil
}

// ToleranceValue returns the resolved tolerance.
func (c *Config) ToleranceValue() int {
	if c.Tolerance == nil {
		return fill.DefaultTolerance
	}
	return *c.Tolerance
}

// FillColor returns the resolved default fill color.
func (c *Config) FillColor() palette.RGB {
	rgb, err := palette.ParseHex(c.Color)
	if err != nil {
		return palette.DefaultColor
	}
	return rgb
}

// OutputPath returns the output file for a named job.
func (c *Config) OutputPath(name string) string {
	return filepath.Join(c.OutputDir, name+"."+c.OutputFormat)
}
