package editor

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/go-drift/pathkit/pkg/errors"
	"github.com/go-drift/pathkit/pkg/geometry"
	"github.com/go-drift/pathkit/pkg/path"
	"github.com/go-drift/pathkit/pkg/text"
)

func TestAppendPointBuildsChain(t *testing.T) {
	s := NewSession()
	s.AppendPoint(geometry.Pt(100, 100))
	s.AppendPoint(geometry.Pt(200, 150))
	s.AppendPoint(geometry.Pt(300, 100))

	p := s.Path()
	if len(p) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(p))
	}
	if err := p.Validate(); err != nil {
		t.Errorf("session built an invalid chain: %v", err)
	}
}

func TestAppendPointClampsToCanvas(t *testing.T) {
	s := NewSession()
	s.AppendPoint(geometry.Pt(-50, 900))
	m := s.Path()[0].(path.MoveTo)
	if m.Point != geometry.Pt(0, 600) {
		t.Errorf("point = %v, want clamped (0,600)", m.Point)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	s := NewSession()
	s.AppendPoint(geometry.Pt(10, 10))
	before := s.Path().Clone()
	s.AppendPoint(geometry.Pt(20, 20))
	after := s.Path().Clone()

	if !s.Undo() {
		t.Fatal("undo failed")
	}
	if !s.Path().Equal(before) {
		t.Error("undo did not restore the pre-mutation path")
	}
	if !s.Redo() {
		t.Fatal("redo failed")
	}
	if !s.Path().Equal(after) {
		t.Error("redo did not restore the mutated path")
	}
}

func TestUndoOnFreshSessionReportsNothing(t *testing.T) {
	s := NewSession()
	if s.Undo() {
		t.Error("undo on a fresh session should report nothing to undo")
	}
	if s.Redo() {
		t.Error("redo on a fresh session should report nothing to redo")
	}
}

func TestDragGestureIsOneUndoStep(t *testing.T) {
	s := NewSession()
	s.AppendPoint(geometry.Pt(100, 100))
	s.AppendPoint(geometry.Pt(300, 300))
	beforeDrag := s.Path().Clone()

	if !s.BeginDrag(geometry.Pt(300, 300)) {
		t.Fatal("expected to grab the endpoint handle")
	}
	// Many intermediate moves; the whole gesture must stay one step.
	for x := 300.0; x <= 400; x += 10 {
		s.DragTo(geometry.Pt(x, 300))
	}
	s.EndDrag()

	end, _ := s.Path().EndPoint()
	if end != geometry.Pt(400, 300) {
		t.Fatalf("endpoint after drag = %v, want (400,300)", end)
	}

	if !s.Undo() {
		t.Fatal("undo failed")
	}
	if !s.Path().Equal(beforeDrag) {
		t.Error("one undo should revert the entire drag gesture")
	}
}

func TestBeginDragMissesEmptySpace(t *testing.T) {
	s := NewSession()
	s.AppendPoint(geometry.Pt(100, 100))
	if s.BeginDrag(geometry.Pt(500, 500)) {
		t.Error("drag should not start away from every handle")
	}
	if s.Dragging() {
		t.Error("session should not report an active gesture")
	}
	// A missed grab must not burn an undo snapshot.
	s.DragTo(geometry.Pt(500, 500))
	if !s.Undo() {
		t.Fatal("the append snapshot should still be on top")
	}
	if !s.Path().Empty() {
		t.Error("undo should revert to the empty path")
	}
}

func TestDragSecondGestureWhileActiveIsRejected(t *testing.T) {
	s := NewSession()
	s.AppendPoint(geometry.Pt(100, 100))
	if !s.BeginDrag(geometry.Pt(100, 100)) {
		t.Fatal("expected to grab the moveto handle")
	}
	if s.BeginDrag(geometry.Pt(100, 100)) {
		t.Error("a second gesture must not start while one is in flight")
	}
	s.EndDrag()
}

func TestLoadPathDataReplacesAndFits(t *testing.T) {
	s := NewSession()
	s.AppendPoint(geometry.Pt(1, 1))

	err := s.LoadPathData("M0,0 C1000,0 2000,3000 4000,1000")
	if err != nil {
		t.Fatalf("LoadPathData: %v", err)
	}
	p := s.Path()
	if len(p) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(p))
	}
	box, _ := p.Bounds()
	if box.Left < FitPadding-0.01 || box.Right > CanvasWidth-FitPadding+0.01 ||
		box.Top < FitPadding-0.01 || box.Bottom > CanvasHeight-FitPadding+0.01 {
		t.Errorf("imported path %+v was not fitted to the viewport", box)
	}

	// One undo step back to the pre-import path.
	if !s.Undo() {
		t.Fatal("undo failed")
	}
	if len(s.Path()) != 1 {
		t.Error("undo should restore the pre-import path")
	}
}

func TestLoadPathDataFailureLeavesPathUntouched(t *testing.T) {
	s := NewSession()
	s.AppendPoint(geometry.Pt(10, 10))
	before := s.Path().Clone()

	err := s.LoadPathData("M1,1 Q5,5 9,9")
	if !errors.IsKind(err, errors.KindSyntax) {
		t.Fatalf("error = %v, want syntax kind", err)
	}
	if !s.Path().Equal(before) {
		t.Error("failed parse must leave the live path unchanged")
	}
	// And it must not have burned an undo snapshot either.
	s.Undo()
	if !s.Path().Empty() {
		t.Error("failed parse left a stray history entry")
	}
}

func TestFitToCanvasEmptyPath(t *testing.T) {
	s := NewSession()
	err := s.FitToCanvas()
	if !errors.IsKind(err, errors.KindValidation) {
		t.Errorf("error = %v, want validation kind", err)
	}
}

func TestClearIsUndoable(t *testing.T) {
	s := NewSession()
	s.AppendPoint(geometry.Pt(10, 10))
	s.Clear()
	if !s.Path().Empty() {
		t.Fatal("clear should empty the path")
	}
	if !s.Undo() {
		t.Fatal("clear should be undoable")
	}
	if s.Path().Empty() {
		t.Error("undo after clear should restore the path")
	}

	// Clearing an already empty path takes no snapshot.
	s2 := NewSession()
	s2.Clear()
	if s2.CanUndo() {
		t.Error("clearing an empty path should not create an undo step")
	}
}

// stubBoundary implements both PathSource and PathSink.
type stubBoundary struct {
	text    string
	readErr error
	wrote   string
	written bool
}

func (b *stubBoundary) ReadPathText() (string, error) {
	return b.text, b.readErr
}

func (b *stubBoundary) WritePathText(doc string) error {
	b.wrote = doc
	b.written = true
	return nil
}

func TestImportRawPathData(t *testing.T) {
	s := NewSession()
	err := s.Import(&stubBoundary{text: "M0,0 C10,0 20,10 20,20"})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(s.Path()) != 2 {
		t.Errorf("expected 2 segments, got %d", len(s.Path()))
	}
}

func TestImportWholeDocumentExtractsPathData(t *testing.T) {
	s := NewSession()
	doc := `<svg><path id="curve" d="M0,0 C10,0 20,10 20,20" fill="none"/></svg>`
	if err := s.Import(&stubBoundary{text: doc}); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(s.Path()) != 2 {
		t.Errorf("expected 2 segments, got %d", len(s.Path()))
	}
}

func TestImportSurfacesCollaboratorErrorAsIO(t *testing.T) {
	s := NewSession()
	readErr := stderrors.New("file vanished")
	err := s.Import(&stubBoundary{readErr: readErr})
	if !errors.IsKind(err, errors.KindIO) {
		t.Fatalf("error = %v, want io kind", err)
	}
	if !stderrors.Is(err, readErr) {
		t.Error("collaborator error should surface as-is via Unwrap")
	}
}

func TestExportWritesDocument(t *testing.T) {
	s := NewSession()
	s.AppendPoint(geometry.Pt(10, 10))
	s.AppendPoint(geometry.Pt(200, 200))
	cfg := s.Text()
	cfg.Content = "along the path"
	s.SetText(cfg)

	sink := &stubBoundary{}
	if err := s.Export(sink); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !sink.written || !strings.Contains(sink.wrote, "along the path") {
		t.Error("exported document missing the text content")
	}
}

func TestExportEmptyPathFails(t *testing.T) {
	s := NewSession()
	err := s.Export(&stubBoundary{})
	if !errors.IsKind(err, errors.KindValidation) {
		t.Errorf("error = %v, want validation kind", err)
	}
}

// recordingRenderer captures redraw calls.
type recordingRenderer struct {
	pathDraws int
	textDraws int
	lastPath  path.Path
	lastText  []text.Glyph
}

func (r *recordingRenderer) DrawPath(p path.Path, samples []geometry.Point) {
	r.pathDraws++
	r.lastPath = p
}

func (r *recordingRenderer) DrawText(glyphs []text.Glyph) {
	r.textDraws++
	r.lastText = glyphs
}

func TestRendererIsNotifiedOnMutation(t *testing.T) {
	s := NewSession()
	r := &recordingRenderer{}
	s.SetRenderer(r)

	draws := r.pathDraws
	s.AppendPoint(geometry.Pt(50, 50))
	if r.pathDraws != draws+1 {
		t.Error("append should trigger a redraw")
	}
	if len(r.lastPath) != 1 {
		t.Error("renderer received a stale path")
	}
}

func TestPreviewTextFollowsConfig(t *testing.T) {
	s := NewSession()
	s.AppendPoint(geometry.Pt(0, 0))
	s.AppendPoint(geometry.Pt(700, 0))

	cfg := s.Text()
	cfg.Content = "abc"
	cfg.FontSize = 10
	s.SetText(cfg)

	glyphs := s.PreviewText()
	if len(glyphs) != 3 {
		t.Fatalf("expected 3 glyphs, got %d", len(glyphs))
	}
}

func TestAnimatedTextScrollsWithProgress(t *testing.T) {
	s := NewSession()
	s.AppendPoint(geometry.Pt(0, 0))
	s.AppendPoint(geometry.Pt(700, 0))

	cfg := s.Text()
	cfg.Content = "x"
	s.SetText(cfg)

	early := s.AnimatedText(0.95)
	late := s.AnimatedText(0.05)
	if len(early) != 1 || len(late) != 1 {
		t.Fatalf("expected a single visible glyph at both ends")
	}
	// Higher progress means a start nearer the path's beginning.
	if early[0].Pos.X >= late[0].Pos.X {
		t.Errorf("glyph did not scroll: early %v, late %v", early[0].Pos, late[0].Pos)
	}
}

func TestToggleAnimation(t *testing.T) {
	s := NewSession()
	if !s.ToggleAnimation() {
		t.Error("first toggle should start the loop")
	}
	if s.ToggleAnimation() {
		t.Error("second toggle should stop the loop")
	}
}

func TestClearStopsAnimation(t *testing.T) {
	s := NewSession()
	s.AppendPoint(geometry.Pt(10, 10))
	s.ToggleAnimation()
	s.Clear()
	if s.Loop().Running() {
		t.Error("clear should stop the animation loop")
	}
}

func TestSetTextNormalizes(t *testing.T) {
	s := NewSession()
	s.SetText(text.Config{Content: "t", FontSize: 12, StartOffset: 250})
	if got := s.Text().StartOffset; got != 100 {
		t.Errorf("start offset = %v, want clamped 100", got)
	}
	if s.Text().Duration != text.DefaultDuration {
		t.Error("zero duration should normalize to the default")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	a := NewSession()
	b := NewSession()
	a.AppendPoint(geometry.Pt(10, 10))
	if !b.Path().Empty() {
		t.Error("sessions share path state")
	}
	if b.CanUndo() {
		t.Error("sessions share history state")
	}
}
