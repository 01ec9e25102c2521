// Package config provides YAML-based configuration for the sandbox front-ends.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Config is the complete runtime configuration.
type Config struct {
	Speed   int           `yaml:"speed"` // ms per generation, 0 = prompt
	View    ViewConfig    `yaml:"view"`
	Input   InputConfig   `yaml:"input"`
	Scatter ScatterConfig `yaml:"scatter"`
	Colors  ColorConfig   `yaml:"colors"`
	Keys    KeyConfig     `yaml:"keys"`
}

// ViewConfig defines the initial window and zoom parameters.
type ViewConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	TPS        int     `yaml:"tps"`
	Zoom       float64 `yaml:"zoom"`         // pixels per cell
	ZoomStep   float64 `yaml:"zoom_step"`    // added or removed per zoom key
	MinZoom    float64 `yaml:"min_zoom"`     // zoom-out never goes below this
	TUIZoom    float64 `yaml:"tui_zoom"`     // terminal pixels per cell
	TUIMinZoom float64 `yaml:"tui_min_zoom"` // terminal floor; a pixel there is half a character
}

// InputConfig defines key-repeat throttling.
type InputConfig struct {
	MarkerRepeatMS int `yaml:"marker_repeat_ms"`
	PanRepeatMS    int `yaml:"pan_repeat_ms"`
}

// ScatterConfig defines the random fill applied around the marker.
type ScatterConfig struct {
	Size    int     `yaml:"size"`
	Density float64 `yaml:"density"`
	Seed    int64   `yaml:"seed"` // 0 = time based
}

// ColorConfig holds hex colors shared by both front-ends.
type ColorConfig struct {
	Background string `yaml:"background"`
	Live       string `yaml:"live"`
	Grid       string `yaml:"grid"`
	Marker     string `yaml:"marker"`
	Selection  string `yaml:"selection"`
}

// KeyConfig maps logical roles to terminal key names.
type KeyConfig struct {
	PanLeft      []string `yaml:"pan_left"`
	PanRight     []string `yaml:"pan_right"`
	PanUp        []string `yaml:"pan_up"`
	PanDown      []string `yaml:"pan_down"`
	ToggleRun    []string `yaml:"toggle_run"`
	ToggleMarker []string `yaml:"toggle_marker"`
	MarkerAction []string `yaml:"marker_action"`
	ZoomIn       []string `yaml:"zoom_in"`
	ZoomOut      []string `yaml:"zoom_out"`
	Copy         []string `yaml:"copy"`
	Paste        []string `yaml:"paste"`
	Step         []string `yaml:"step"`
	Scatter      []string `yaml:"scatter"`
	Clear        []string `yaml:"clear"`
	NextPattern  []string `yaml:"next_pattern"`
	Quit         []string `yaml:"quit"`
}

// Validate reports every invalid field, joined into one error.
func (c Config) Validate() error {
	var errs []error
	if c.Speed < 0 {
		errs = append(errs, fmt.Errorf("speed must not be negative, got %d", c.Speed))
	}
	if c.View.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("view.zoom must be positive, got %g", c.View.Zoom))
	}
	if c.View.ZoomStep <= 0 {
		errs = append(errs, fmt.Errorf("view.zoom_step must be positive, got %g", c.View.ZoomStep))
	}
	if c.View.MinZoom <= 0 {
		errs = append(errs, fmt.Errorf("view.min_zoom must be positive, got %g", c.View.MinZoom))
	}
	if c.View.Zoom < c.View.MinZoom {
		errs = append(errs, fmt.Errorf("view.zoom %g is below view.min_zoom %g", c.View.Zoom, c.View.MinZoom))
	}
	if c.View.TUIMinZoom <= 0 {
		errs = append(errs, fmt.Errorf("view.tui_min_zoom must be positive, got %g", c.View.TUIMinZoom))
	}
	if c.View.TUIZoom < c.View.TUIMinZoom {
		errs = append(errs, fmt.Errorf("view.tui_zoom %g is below view.tui_min_zoom %g", c.View.TUIZoom, c.View.TUIMinZoom))
	}
	if c.View.TPS <= 0 {
		errs = append(errs, fmt.Errorf("view.tps must be positive, got %d", c.View.TPS))
	}
	if c.Scatter.Density < 0 || c.Scatter.Density > 1 {
		errs = append(errs, fmt.Errorf("scatter.density must be within [0,1], got %g", c.Scatter.Density))
	}
	for name, hex := range map[string]string{
		"background": c.Colors.Background,
		"live":       c.Colors.Live,
		"grid":       c.Colors.Grid,
		"marker":     c.Colors.Marker,
		"selection":  c.Colors.Selection,
	} {
		if _, err := ParseHex(hex); err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// ParseHex parses "#rrggbb" or "#rrggbbaa" into an RGBA color.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustHex is ParseHex for values already checked by Validate.
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}
