// Package config loads the optional pathed.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/pathkit/pkg/editor"
	"github.com/go-drift/pathkit/pkg/text"
)

// Config represents the optional pathed.yaml configuration.
type Config struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Text   TextConfig   `yaml:"text"`
}

// CanvasConfig contains viewport settings.
type CanvasConfig struct {
	Width   float64 `yaml:"width,omitempty"`
	Height  float64 `yaml:"height,omitempty"`
	Padding float64 `yaml:"padding,omitempty"`
}

// TextConfig contains text-on-path defaults.
type TextConfig struct {
	Content       string  `yaml:"content,omitempty"`
	FontSize      float64 `yaml:"font_size,omitempty"`
	Color         string  `yaml:"color,omitempty"`
	LetterSpacing int     `yaml:"letter_spacing,omitempty"`
	StartOffset   float64 `yaml:"start_offset,omitempty"`
	// Duration is the animation period in seconds.
	Duration float64 `yaml:"duration,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Width   float64
	Height  float64
	Padding float64
	Text    text.Config
}

// LoadOptional reads pathed.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "pathed.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read pathed.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse pathed.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads pathed.yaml (if present) and fills in editor defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Width:   cfg.Canvas.Width,
		Height:  cfg.Canvas.Height,
		Padding: cfg.Canvas.Padding,
		Text:    text.DefaultConfig(),
	}
	if r.Width <= 0 {
		r.Width = editor.CanvasWidth
	}
	if r.Height <= 0 {
		r.Height = editor.CanvasHeight
	}
	if r.Padding < 0 || cfg.Canvas.Padding == 0 {
		r.Padding = editor.FitPadding
	}

	if cfg.Text.Content != "" {
		r.Text.Content = cfg.Text.Content
	}
	if cfg.Text.FontSize > 0 {
		r.Text.FontSize = cfg.Text.FontSize
	}
	if cfg.Text.Color != "" {
		r.Text.Color = cfg.Text.Color
	}
	r.Text.LetterSpacing = cfg.Text.LetterSpacing
	if cfg.Text.StartOffset != 0 {
		r.Text.StartOffset = cfg.Text.StartOffset
	}
	if cfg.Text.Duration > 0 {
		r.Text.Duration = time.Duration(cfg.Text.Duration * float64(time.Second))
	}
	r.Text = r.Text.Normalize()

	return r, nil
}
