// Package config loads lspace rendering settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	lspace "github.com/grindlemire/go-lspace"
)

// DefaultFile is the file Load reads when no path is given.
const DefaultFile = "lspace.toml"

// Measure modes.
const (
	MeasureFont = "font"
	MeasureMono = "mono"
)

// Config represents the lspace.toml configuration file
type Config struct {
	Render  RenderConfig  `toml:"render"`
	Text    TextConfig    `toml:"text"`
	Measure MeasureConfig `toml:"measure"`
	Debug   DebugConfig   `toml:"debug"`
}

type RenderConfig struct {
	// Viewport size in device units
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Hex colour painted behind the scene; empty leaves it transparent
	Background string `toml:"background"`
	// PNG output path
	Output string `toml:"output"`
}

// TextConfig is the body text style and paragraph layout.
type TextConfig struct {
	Family string  `toml:"family"`
	Size   float64 `toml:"size"`
	Bold   bool    `toml:"bold"`
	Italic bool    `toml:"italic"`
	Colour string  `toml:"colour"`
	// First line indent of each paragraph
	Indent float64 `toml:"indent"`
	// Gap between paragraphs
	ParagraphSpacing float64 `toml:"paragraph_spacing"`
}

type MeasureConfig struct {
	// "font" measures with the bundled Go fonts, "mono" with fixed cells
	Mode string `toml:"mode"`
	// Number of memoised text widths
	CacheSize int `toml:"cache_size"`
}

type DebugConfig struct {
	// Debug log path; empty disables logging unless LSPACE_DEBUG is set
	LogFile string `toml:"log_file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Width:      800,
			Height:     600,
			Background: "#ffffff",
			Output:     "lspace.png",
		},
		Text: TextConfig{
			Family:           lspace.DefaultFontFamily,
			Size:             lspace.DefaultFontSize,
			Colour:           "#000000",
			Indent:           20,
			ParagraphSpacing: 10,
		},
		Measure: MeasureConfig{
			Mode:      MeasureFont,
			CacheSize: 4096,
		},
	}
}

// Load reads the configuration at path over the defaults. An empty path
// reads DefaultFile and falls back to the defaults if it does not exist; an
// explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path.
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Validate checks every setting is in range.
func (c Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render size %dx%d must be positive", c.Render.Width, c.Render.Height)
	}
	if _, _, err := c.Background(); err != nil {
		return err
	}
	if _, err := c.TextStyle(); err != nil {
		return err
	}
	if c.Text.Indent < 0 {
		return fmt.Errorf("text indent %v must not be negative", c.Text.Indent)
	}
	if c.Text.ParagraphSpacing < 0 {
		return fmt.Errorf("paragraph spacing %v must not be negative", c.Text.ParagraphSpacing)
	}
	switch c.Measure.Mode {
	case MeasureFont, MeasureMono:
	default:
		return fmt.Errorf("measure mode %q must be %q or %q", c.Measure.Mode, MeasureFont, MeasureMono)
	}
	if c.Measure.CacheSize < 1 {
		return fmt.Errorf("measure cache size %d must be at least 1", c.Measure.CacheSize)
	}
	return nil
}

// TextStyle returns the configured body text style.
func (c Config) TextStyle() (lspace.TextStyle, error) {
	colour := lspace.Black
	if c.Text.Colour != "" {
		var err error
		if colour, err = lspace.HexColour(c.Text.Colour); err != nil {
			return lspace.TextStyle{}, fmt.Errorf("text colour: %w", err)
		}
	}
	return lspace.NewTextStyle(c.Text.Family, c.Text.Bold, c.Text.Italic, c.Text.Size, colour)
}

// Background returns the configured background colour and whether one is set.
func (c Config) Background() (lspace.Colour, bool, error) {
	if c.Render.Background == "" {
		return lspace.Colour{}, false, nil
	}
	bg, err := lspace.HexColour(c.Render.Background)
	if err != nil {
		return lspace.Colour{}, false, fmt.Errorf("background: %w", err)
	}
	return bg, true, nil
}

// Indent returns the paragraph indent policy.
func (c Config) Indent() (lspace.FlowIndent, error) {
	if c.Text.Indent == 0 {
		return lspace.NoIndent(), nil
	}
	return lspace.IndentFirstLine(c.Text.Indent)
}

// AreaOptions returns the Area options the configuration implies.
func (c Config) AreaOptions() ([]lspace.AreaOption, error) {
	opts := []lspace.AreaOption{lspace.WithMeasureCacheSize(c.Measure.CacheSize)}
	if c.Measure.Mode == MeasureMono {
		opts = append(opts, lspace.WithMeasurer(lspace.MonoMeasurer{}))
	}
	bg, ok, err := c.Background()
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, lspace.WithBackground(bg))
	}
	return opts, nil
}
