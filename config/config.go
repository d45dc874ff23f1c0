package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/isoengine/common"
	"github.com/milk9111/isoengine/iso"
)

// Config holds all engine configuration values.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Tiles  TileConfig   `yaml:"tiles"`
	Camera CameraConfig `yaml:"camera"`
	Map    MapConfig    `yaml:"map"`
	Level  LevelConfig  `yaml:"level"`
	Debug  DebugConfig  `yaml:"debug"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

type TileConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Types is the tile-type definition file, looked up on disk before the
	// embedded copy.
	Types string `yaml:"types"`
	// AssetDir is searched for tile images that are not embedded.
	AssetDir string `yaml:"asset_dir"`
}

type CameraConfig struct {
	MinZoom  float64 `yaml:"min_zoom"`
	MaxZoom  float64 `yaml:"max_zoom"`
	ZoomStep float64 `yaml:"zoom_step"`
	PanSpeed float64 `yaml:"pan_speed"`
}

type MapConfig struct {
	Background string `yaml:"background"`
}

type LevelConfig struct {
	Script string `yaml:"script"`
}

type DebugConfig struct {
	Panel bool `yaml:"panel"`
	Watch bool `yaml:"watch"`
}

// Default returns the configuration used for any field a file leaves out.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     common.BaseWidth,
			Height:    common.BaseHeight,
			Title:     "isoengine",
			Resizable: true,
		},
		Tiles: TileConfig{
			Width:  common.TileWidth,
			Height: common.TileHeight,
			Types:  "tiletypes.yaml",
		},
		Camera: CameraConfig{
			MinZoom:  common.MinZoom,
			MaxZoom:  common.MaxZoom,
			ZoomStep: 1.1,
			PanSpeed: 8,
		},
		Map:   MapConfig{Background: "black"},
		Level: LevelConfig{Script: "demo.tengo"},
		Debug: DebugConfig{Panel: true},
	}
}

// Validate reports the first invalid value.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Camera.MinZoom <= 0 || c.Camera.MaxZoom < c.Camera.MinZoom:
		return fmt.Errorf("config: zoom range [%v, %v] is invalid", c.Camera.MinZoom, c.Camera.MaxZoom)
	case c.Camera.ZoomStep <= 1:
		return fmt.Errorf("config: zoom step %v must be greater than 1", c.Camera.ZoomStep)
	}
	if err := iso.ValidTileSize(c.Tiles.Width, c.Tiles.Height); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := ParseColor(c.Map.Background); err != nil {
		return fmt.Errorf("config: map background: %w", err)
	}
	return nil
}

// BackgroundColor returns the parsed map background, black when invalid.
func (c *Config) BackgroundColor() color.Color {
	clr, err := ParseColor(c.Map.Background)
	if err != nil {
		return color.Black
	}
	return clr
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig loads the configuration from filename. A missing file yields
// the defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", filename, err)
	}
	return Parse(data)
}

// MustLoadConfig loads the configuration and panics on error.
func MustLoadConfig(filename string) *Config {
	cfg, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return cfg
}

// ParseColor accepts an X11 color name ("steelblue") or "#rrggbb".
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return nil, fmt.Errorf("color %q: want #rrggbb", s)
		}
		var r, g, b uint8
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("color %q: %w", s, err)
		}
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}
