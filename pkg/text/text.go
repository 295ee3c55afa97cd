// Package text lays glyphs along a sampled path polyline.
package text

import (
	"time"

	"golang.org/x/image/font"

	"github.com/go-drift/pathkit/pkg/geometry"
)

const (
	// fallbackAdvanceFactor approximates a glyph advance as a fraction of
	// the font size when no font face is available.
	fallbackAdvanceFactor = 0.6

	// DefaultDuration is the animation period used when none is configured.
	DefaultDuration = 5 * time.Second
)

// Config holds the text-on-path parameters. Values are clamped at the UI
// boundary via Normalize; the zero value is usable after normalization.
type Config struct {
	// Content is the text to place along the path.
	Content string
	// FontSize is the glyph size in pixels.
	FontSize float64
	// Color is the text color as written into the SVG document.
	Color string
	// LetterSpacing is extra advance per glyph in pixels; it may be
	// negative to tighten the text.
	LetterSpacing int
	// StartOffset is the starting position along the path as a
	// percentage, 0 to 100.
	StartOffset float64
	// Duration is the period of one animation loop.
	Duration time.Duration
}

// DefaultConfig returns the editor's initial text settings.
func DefaultConfig() Config {
	return Config{
		FontSize:    20,
		Color:       "black",
		StartOffset: 0,
		Duration:    DefaultDuration,
	}
}

// Normalize clamps out-of-range values: StartOffset into [0, 100],
// FontSize to at least 1, and a non-positive Duration to DefaultDuration.
func (c Config) Normalize() Config {
	if c.StartOffset < 0 {
		c.StartOffset = 0
	}
	if c.StartOffset > 100 {
		c.StartOffset = 100
	}
	if c.FontSize < 1 {
		c.FontSize = 1
	}
	if c.Duration <= 0 {
		c.Duration = DefaultDuration
	}
	return c
}

// Glyph is one positioned character of the laid-out text.
type Glyph struct {
	Char rune
	Pos  geometry.Point
}

// advance returns the horizontal step for r in sample-point units: the face
// advance when a face is supplied, otherwise the fallback fraction of the
// font size. Letter spacing is applied on top in both cases.
func (c Config) advance(face font.Face, r rune) int {
	if face != nil {
		if a, ok := face.GlyphAdvance(r); ok {
			return a.Round() + c.LetterSpacing
		}
	}
	return int(c.FontSize*fallbackAdvanceFactor) + c.LetterSpacing
}

// Place positions cfg.Content along points starting at the configured
// StartOffset percentage. The run is truncated as soon as it walks off
// either end of the polyline; a negative net advance walks backwards.
// face may be nil.
func Place(points []geometry.Point, cfg Config, face font.Face) []Glyph {
	if len(points) == 0 || cfg.Content == "" {
		return nil
	}
	cfg = cfg.Normalize()

	start := int(float64(len(points)) * cfg.StartOffset / 100)
	if start > len(points)-1 {
		start = len(points) - 1
	}
	if start < 0 {
		start = 0
	}

	glyphs := make([]Glyph, 0, len(cfg.Content))
	pos := start
	for _, r := range cfg.Content {
		if pos < 0 || pos >= len(points) {
			break
		}
		glyphs = append(glyphs, Glyph{Char: r, Pos: points[pos]})
		pos += cfg.advance(face, r)
	}
	return glyphs
}

// PlaceAt positions cfg.Content starting at an explicit sample index, used
// by the animation loop where the start scrolls with progress. Characters
// outside the polyline are skipped rather than truncating the run, so text
// entering from either edge appears glyph by glyph. face may be nil.
func PlaceAt(points []geometry.Point, cfg Config, face font.Face, start int) []Glyph {
	if len(points) == 0 || cfg.Content == "" {
		return nil
	}
	cfg = cfg.Normalize()

	glyphs := make([]Glyph, 0, len(cfg.Content))
	pos := start
	for _, r := range cfg.Content {
		if pos >= 0 && pos < len(points) {
			glyphs = append(glyphs, Glyph{Char: r, Pos: points[pos]})
		}
		pos += cfg.advance(face, r)
	}
	return glyphs
}

// AnimationStart returns the sample index where the text run begins for the
// given loop progress in [0, 1). The run scrolls from the end of the path
// back toward the start, matching the exported document's startOffset
// animation from 100% to -100%.
func AnimationStart(sampleCount int, progress float64) int {
	return int(float64(sampleCount) * (1 - progress))
}
