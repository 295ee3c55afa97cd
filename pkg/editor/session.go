// Package editor ties the path model, history, codec, and text layout into
// an editing session.
//
// A Session is one independent editor instance: it owns a Path, its undo
// history, and the text-on-path settings, and exposes the event-level
// operations the interactive surface calls. All mutations are synchronous;
// there is no shared state across sessions.
package editor

import (
	"strings"

	"golang.org/x/image/font"

	"github.com/go-drift/pathkit/pkg/animation"
	"github.com/go-drift/pathkit/pkg/errors"
	"github.com/go-drift/pathkit/pkg/geometry"
	"github.com/go-drift/pathkit/pkg/history"
	"github.com/go-drift/pathkit/pkg/path"
	"github.com/go-drift/pathkit/pkg/svg"
	"github.com/go-drift/pathkit/pkg/text"
)

// Nominal canvas dimensions. The model itself is resolution-independent;
// these bound pointer input and viewport fitting.
const (
	CanvasWidth  = 800
	CanvasHeight = 600
	FitPadding   = 50
)

// Sample densities: the preview density matches interactive rendering and
// text placement; the animation loop samples finer for smoother motion.
const (
	previewSamples   = 100
	animationSamples = 200
)

// Renderer receives the model and its latest sample polyline after every
// state change. The core supplies data, never pixels.
type Renderer interface {
	DrawPath(p path.Path, samples []geometry.Point)
	DrawText(glyphs []text.Glyph)
}

// PathSource supplies raw path text from a file or clipboard boundary.
type PathSource interface {
	ReadPathText() (string, error)
}

// PathSink receives the serialized document at the file or clipboard
// boundary.
type PathSink interface {
	WritePathText(doc string) error
}

// Session is a single editor instance.
type Session struct {
	width  float64
	height float64

	path     path.Path
	history  *history.History
	textCfg  text.Config
	face     font.Face
	loop     *animation.Loop
	renderer Renderer

	dragging bool
	dragHit  path.Hit
}

// NewSession creates a session over the nominal 800x600 canvas.
func NewSession() *Session {
	return NewSessionWithCanvas(CanvasWidth, CanvasHeight)
}

// NewSessionWithCanvas creates a session over a custom canvas size.
func NewSessionWithCanvas(width, height float64) *Session {
	s := &Session{
		width:   width,
		height:  height,
		history: history.New(),
		textCfg: text.DefaultConfig(),
		loop:    animation.NewLoop(text.DefaultDuration),
	}
	s.loop.OnFrame(func(progress float64) {
		defer errors.Recover("editor.animateFrame")
		if s.renderer != nil {
			s.renderer.DrawText(s.AnimatedText(progress))
		}
	})
	return s
}

// Canvas returns the canvas dimensions.
func (s *Session) Canvas() geometry.Size {
	return geometry.Size{Width: s.width, Height: s.height}
}

// Path returns the live path. Callers must treat it as read-only; all
// edits go through the session so history stays coherent.
func (s *Session) Path() path.Path {
	return s.path
}

// SetRenderer attaches the drawing collaborator. Pass nil to detach.
func (s *Session) SetRenderer(r Renderer) {
	s.renderer = r
	s.redraw()
}

// SetFontFace supplies a font face for glyph advance measurement. Without
// one, layout falls back to a fraction of the font size per glyph.
func (s *Session) SetFontFace(f font.Face) {
	s.face = f
	s.redraw()
}

func (s *Session) redraw() {
	if s.renderer == nil {
		return
	}
	samples := path.Sample(s.path, previewSamples)
	s.renderer.DrawPath(s.path, samples)
	s.renderer.DrawText(text.Place(samples, s.textCfg, s.face))
}

// AppendPoint extends the path toward pt as one undoable step. The point
// is clamped to the canvas before it is applied.
func (s *Session) AppendPoint(pt geometry.Point) {
	pt = pt.Clamp(s.width, s.height)
	s.history.Snapshot(s.path)
	s.path = s.path.AppendPoint(pt)
	s.redraw()
}

// Clear resets the path. The pre-clear state is kept as an undo step when
// there was anything to clear. The animation stops; history survives so
// the clear itself can be undone.
func (s *Session) Clear() {
	if !s.path.Empty() {
		s.history.Snapshot(s.path)
	}
	s.path = nil
	s.loop.Stop()
	s.redraw()
}

// Undo reverts the last mutation. Returns false when there is nothing to
// undo.
func (s *Session) Undo() bool {
	restored, ok := s.history.Undo(s.path)
	if !ok {
		return false
	}
	s.path = restored
	s.redraw()
	return true
}

// Redo restores the last undone mutation. Returns false when there is
// nothing to redo.
func (s *Session) Redo() bool {
	restored, ok := s.history.Redo(s.path)
	if !ok {
		return false
	}
	s.path = restored
	s.redraw()
	return true
}

// CanUndo reports whether an undo step is available.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether a redo step is available.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// BeginDrag starts a drag gesture on the handle nearest to at, if any is
// within the pick radius. The single history snapshot for the whole
// gesture is taken here: a continuous drag is one undoable step, no matter
// how many intermediate moves follow.
func (s *Session) BeginDrag(at geometry.Point) bool {
	if s.dragging {
		return false
	}
	hit, ok := s.path.HitTest(at.Clamp(s.width, s.height), path.DefaultHitRadius)
	if !ok {
		return false
	}
	s.history.Snapshot(s.path)
	s.dragging = true
	s.dragHit = hit
	return true
}

// DragTo moves the grabbed handle to pt, clamped to the canvas. No-op
// outside an active gesture.
func (s *Session) DragTo(pt geometry.Point) {
	if !s.dragging {
		return
	}
	moved, err := s.path.SetPointAt(s.dragHit.Index, s.dragHit.Role, pt.Clamp(s.width, s.height))
	if err != nil {
		return
	}
	s.path = moved
	s.redraw()
}

// EndDrag finishes the gesture.
func (s *Session) EndDrag() {
	s.dragging = false
	s.redraw()
}

// Dragging reports whether a drag gesture is in flight.
func (s *Session) Dragging() bool {
	return s.dragging
}

// LoadPathData parses path text and replaces the live path with the result,
// fitted to the canvas, as one undoable step. On failure the live path is
// left untouched and the error is returned to the caller.
func (s *Session) LoadPathData(input string) error {
	parsed, err := svg.Parse(strings.TrimSpace(input))
	if err != nil {
		return err
	}
	fitted := path.FitToBounds(parsed, s.width, s.height, FitPadding)
	s.history.Snapshot(s.path)
	s.path = fitted
	s.redraw()
	return nil
}

// FitToCanvas rescales the path to the padded viewport as one undoable
// step.
func (s *Session) FitToCanvas() error {
	if s.path.Empty() {
		return errors.Validationf("editor.FitToCanvas", "path is empty")
	}
	s.history.Snapshot(s.path)
	s.path = path.FitToBounds(s.path, s.width, s.height, FitPadding)
	s.redraw()
	return nil
}

// Import reads path text from the boundary and loads it. A whole SVG
// document is accepted: the first path element's data is extracted.
// Collaborator failures surface as KindIO, as-is.
func (s *Session) Import(src PathSource) error {
	raw, err := src.ReadPathText()
	if err != nil {
		return errors.IO("editor.Import", err)
	}
	if strings.Contains(raw, "<path") {
		raw, err = svg.ExtractPathData(raw)
		if err != nil {
			return err
		}
	}
	return s.LoadPathData(raw)
}

// Export writes the full SVG document to the boundary.
func (s *Session) Export(sink PathSink) error {
	doc, err := s.Document()
	if err != nil {
		return err
	}
	if err := sink.WritePathText(doc); err != nil {
		return errors.IO("editor.Export", err)
	}
	return nil
}

// PathData returns the serialized d string for the live path.
func (s *Session) PathData() string {
	return svg.Serialize(s.path)
}

// Document renders the full SVG document for the live path and text
// settings.
func (s *Session) Document() (string, error) {
	return svg.Document(s.path, s.textCfg)
}

// SamplePoints samples the live path at the given density.
func (s *Session) SamplePoints(n int) []geometry.Point {
	return path.Sample(s.path, n)
}

// SetText updates the text settings, normalizing out-of-range values, and
// re-periods the animation loop.
func (s *Session) SetText(cfg text.Config) {
	s.textCfg = cfg.Normalize()
	s.loop.SetPeriod(s.textCfg.Duration)
	s.redraw()
}

// Text returns the current text settings.
func (s *Session) Text() text.Config {
	return s.textCfg
}

// PreviewText lays the text out at the configured start offset.
func (s *Session) PreviewText() []text.Glyph {
	return text.Place(path.Sample(s.path, previewSamples), s.textCfg, s.face)
}

// AnimatedText lays the text out for the given loop progress, with the run
// scrolling from the end of the path toward the start.
func (s *Session) AnimatedText(progress float64) []text.Glyph {
	points := path.Sample(s.path, animationSamples)
	return text.PlaceAt(points, s.textCfg, s.face, text.AnimationStart(len(points), progress))
}

// Loop exposes the animation loop for the display surface to start, stop,
// and step.
func (s *Session) Loop() *animation.Loop {
	return s.loop
}

// ToggleAnimation flips the animation on or off and returns the new state.
func (s *Session) ToggleAnimation() bool {
	return s.loop.Toggle()
}
