// Package config loads the browser configuration from a TOML file,
// falling back to defaults when the file is absent. Out-of-range values
// are clamped rather than rejected so a hand-edited file cannot wedge
// the UI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	View   View   `toml:"view"`
	Timing Timing `toml:"timing"`
	Media  Media  `toml:"media"`
	Audio  Audio  `toml:"audio"`
}

type View struct {
	MinItemWidth int    `toml:"min_item_width"` // cells
	Gap          int    `toml:"gap"`
	CardHeight   int    `toml:"card_height"`
	ListRowH     int    `toml:"list_row_height"`
	PosterRows   int    `toml:"poster_rows"`
	BufferRows   int    `toml:"buffer_rows"`
	ColorMode    string `toml:"color_mode"` // "auto", "256", "truecolor"
}

type Timing struct {
	FrameMs          int `toml:"frame_ms"`
	HoverDelayMs     int `toml:"hover_delay_ms"`
	FilterDebounceMs int `toml:"filter_debounce_ms"`
	ResizeDebounceMs int `toml:"resize_debounce_ms"`
}

type Media struct {
	Margin  int `toml:"margin"` // rows beyond the viewport to preload
	Workers int `toml:"workers"`
}

type Audio struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		View: View{
			MinItemWidth: 25,
			Gap:          1,
			CardHeight:   8,
			ListRowH:     3,
			PosterRows:   4,
			BufferRows:   2,
			ColorMode:    "auto",
		},
		Timing: Timing{
			FrameMs:          33,
			HoverDelayMs:     350,
			FilterDebounceMs: 200,
			ResizeDebounceMs: 80,
		},
		Media: Media{
			Margin:  6,
			Workers: 4,
		},
		Audio: Audio{Enabled: true},
	}
}

// Load reads path, layering it over Default. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.clamp()
	return cfg, nil
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "robocoin.toml"
	}
	return filepath.Join(dir, "robocoin", "config.toml")
}

func (c *Config) clamp() {
	c.View.MinItemWidth = clampInt(c.View.MinItemWidth, 12, 80)
	c.View.Gap = clampInt(c.View.Gap, 0, 8)
	c.View.CardHeight = clampInt(c.View.CardHeight, 4, 24)
	c.View.ListRowH = clampInt(c.View.ListRowH, 1, 8)
	c.View.PosterRows = clampInt(c.View.PosterRows, 0, c.View.CardHeight-2)
	c.View.BufferRows = clampInt(c.View.BufferRows, 0, 16)
	switch c.View.ColorMode {
	case "auto", "256", "truecolor":
	default:
		c.View.ColorMode = "auto"
	}

	c.Timing.FrameMs = clampInt(c.Timing.FrameMs, 8, 250)
	c.Timing.HoverDelayMs = clampInt(c.Timing.HoverDelayMs, 0, 5000)
	c.Timing.FilterDebounceMs = clampInt(c.Timing.FilterDebounceMs, 0, 2000)
	c.Timing.ResizeDebounceMs = clampInt(c.Timing.ResizeDebounceMs, 0, 1000)

	c.Media.Margin = clampInt(c.Media.Margin, 0, 64)
	c.Media.Workers = clampInt(c.Media.Workers, 1, 16)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
