package path

import (
	"math"

	"github.com/go-drift/pathkit/pkg/geometry"
)

// FitToBounds returns a copy of p uniformly scaled and translated so its
// bounding box is centered within a width x height viewport, inset by
// padding on every side. The original path is untouched.
//
// Box extents are floored at 1 so degenerate paths (a single point, or all
// points collinear along one axis) do not divide by zero. The X and Y scale
// factors are computed independently and the smaller one is applied to both
// axes, preserving aspect ratio.
func FitToBounds(p Path, width, height, padding float64) Path {
	box, ok := p.Bounds()
	if !ok {
		return nil
	}

	w := math.Max(box.Width(), 1)
	h := math.Max(box.Height(), 1)

	scale := math.Min((width-2*padding)/w, (height-2*padding)/h)
	offset := geometry.Point{
		X: (width-w*scale)/2 - box.Left*scale,
		Y: (height-h*scale)/2 - box.Top*scale,
	}

	apply := func(pt geometry.Point) geometry.Point {
		return pt.Mul(scale).Add(offset)
	}

	out := make(Path, len(p))
	for i, seg := range p {
		switch s := seg.(type) {
		case MoveTo:
			out[i] = MoveTo{Point: apply(s.Point)}
		case CubicTo:
			out[i] = CubicTo{
				Control1: apply(s.Control1),
				Control2: apply(s.Control2),
				To:       apply(s.To),
			}
		}
	}
	return out
}
