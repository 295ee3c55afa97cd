package svg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/go-drift/pathkit/pkg/errors"
	"github.com/go-drift/pathkit/pkg/geometry"
	"github.com/go-drift/pathkit/pkg/path"
)

var approx = []cmp.Option{
	cmpopts.EquateApprox(0, 0.01),
}

func TestParseMoveAndCubic(t *testing.T) {
	p, err := Parse("M0,0 C10,0 20,10 20,20")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := path.Path{
		path.MoveTo{Point: geometry.Pt(0, 0)},
		path.CubicTo{
			Control1: geometry.Pt(10, 0),
			Control2: geometry.Pt(20, 10),
			To:       geometry.Pt(20, 20),
		},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("parsed path mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSeparators(t *testing.T) {
	// Commas and whitespace are interchangeable, and optional after a
	// command letter.
	inputs := []string{
		"M63,766 C55,25 776,782 775,38",
		"M 63 766 C 55 25 776 782 775 38",
		"M63 766C55,25,776,782,775,38",
		"  M63,766\n\tC55,25 776,782 775,38  ",
	}
	want, err := Parse(inputs[0])
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, in := range inputs[1:] {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			continue
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestParseRelativeCommands(t *testing.T) {
	p, err := Parse("m10,10 c5,0 10,5 10,10")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := path.Path{
		path.MoveTo{Point: geometry.Pt(10, 10)},
		path.CubicTo{
			Control1: geometry.Pt(15, 10),
			Control2: geometry.Pt(20, 15),
			To:       geometry.Pt(20, 20),
		},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("relative path mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRepeatedCubicTuplesWithoutLetter(t *testing.T) {
	p, err := Parse("M0,0 C1,1 2,2 3,3 4,4 5,5 6,6")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(p) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(p))
	}
	second := p[2].(path.CubicTo)
	if second.To != geometry.Pt(6, 6) {
		t.Errorf("second cubic ends at %v, want (6,6)", second.To)
	}
}

func TestParseImplicitLineToAfterMove(t *testing.T) {
	// Extra pairs after M become straight cubics via the thirds rule.
	p, err := Parse("M0,0 30,30")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := path.Path{
		path.MoveTo{Point: geometry.Pt(0, 0)},
		path.CubicTo{
			Control1: geometry.Pt(10, 10),
			Control2: geometry.Pt(20, 20),
			To:       geometry.Pt(30, 30),
		},
	}
	if diff := cmp.Diff(want, p, approx...); diff != "" {
		t.Errorf("implicit line-to mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRelativeImplicitLineTo(t *testing.T) {
	// Each relative pair is resolved against the updated current point.
	p, err := Parse("m10,10 10,0 10,0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(p) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(p))
	}
	if end, _ := p.EndPoint(); end != geometry.Pt(30, 10) {
		t.Errorf("endpoint = %v, want (30,10)", end)
	}
}

func TestParseIgnoresClosePath(t *testing.T) {
	p, err := Parse("M0,0 C10,0 20,10 20,20 Z")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(p) != 2 {
		t.Errorf("Z must not emit a segment; got %d segments", len(p))
	}
}

func TestParseScientificNotation(t *testing.T) {
	p, err := Parse("M1e2,-2.5e-1 C0,0 1,1 2,2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m := p[0].(path.MoveTo)
	if !geometry.Equal(m.Point.X, 100) || !geometry.Equal(m.Point.Y, -0.25) {
		t.Errorf("moveto = %v, want (100, -0.25)", m.Point)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  errors.Kind
	}{
		{"unsupported quadratic command", "M1,1 Q5,5 9,9", errors.KindSyntax},
		{"unsupported lowercase command", "M1,1 l5,5", errors.KindSyntax},
		{"invalid character", "M1,1 C2,2 3,3 4,4 #", errors.KindSyntax},
		{"incomplete moveto", "M5", errors.KindSyntax},
		{"incomplete cubic tuple", "M0,0 C1,1 2,2", errors.KindSyntax},
		{"bare cubic command", "M0,0 C", errors.KindSyntax},
		{"cubic before moveto", "C1,1 2,2 3,3", errors.KindSyntax},
		{"second moveto", "M0,0 C1,1 2,2 3,3 M5,5", errors.KindSyntax},
		{"number outside command", "5,5 M0,0", errors.KindSyntax},
		{"lone dot", "M1,1 . C2,2 3,3 4,4", errors.KindSyntax},
		{"empty input", "", errors.KindValidation},
		{"only close", "Z", errors.KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want %v error", tt.input, tt.kind)
			}
			if !errors.IsKind(err, tt.kind) {
				t.Errorf("Parse(%q) error = %v, want kind %v", tt.input, err, tt.kind)
			}
		})
	}
}

func TestParseChainInvariantHolds(t *testing.T) {
	p, err := Parse("M0,0 10,10 C20,20 30,30 40,40 50,50 60,60 70,70 Z")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("parsed path violates chain invariant: %v", err)
	}
}
